// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package stats aggregates catalog figures for the landing page.

The numbers are computed live from the catalog tables; only the visit
counter is kept in Redis, incremented on every stats request.
*/
package stats

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/giftwell/giftwell/internal/catalog/brand"
	"github.com/giftwell/giftwell/internal/catalog/gift"
	"github.com/giftwell/giftwell/internal/catalog/instance"
	"github.com/giftwell/giftwell/internal/platform/constants"
)

// Overview is the landing-page statistics block.
type Overview struct {
	Gifts              int   `json:"gifts"`
	Instances          int   `json:"instances"`
	AvailableInstances int   `json:"available_instances"`
	Brands             int   `json:"brands"`
	PerfumeGifts       int   `json:"perfume_gifts"`
	HeritageBrands     int   `json:"heritage_brands"`
	Visits             int64 `json:"visits"`
}

// HeritageBrandCutoffYear bounds the "long-established brands" figure.
const HeritageBrandCutoffYear = 1999

type Service struct {
	gifts     *gift.Service
	brands    *brand.Service
	instances *instance.Service
	redis     *redis.Client
	logger    *slog.Logger
}

func NewService(
	gifts *gift.Service,
	brands *brand.Service,
	instances *instance.Service,
	redisClient *redis.Client,
	logger *slog.Logger,
) *Service {
	return &Service{
		gifts:     gifts,
		brands:    brands,
		instances: instances,
		redis:     redisClient,
		logger:    logger,
	}
}

// Overview assembles the landing-page figures and bumps the visit counter.
//
// A Redis outage degrades gracefully: the counter reports zero and the rest
// of the block is still served.
func (service *Service) Overview(context context.Context) (*Overview, error) {
	overview := &Overview{}

	var err error
	if overview.Gifts, err = service.gifts.CountGifts(context); err != nil {
		return nil, err
	}
	if overview.Instances, err = service.instances.CountInstances(context); err != nil {
		return nil, err
	}
	if overview.AvailableInstances, err = service.instances.CountAvailable(context); err != nil {
		return nil, err
	}

	brands, err := service.brands.ListBrands(context)
	if err != nil {
		return nil, err
	}
	overview.Brands = len(brands)

	if overview.PerfumeGifts, err = service.gifts.CountDescriptionContains(context, "Perfume"); err != nil {
		return nil, err
	}
	if overview.HeritageBrands, err = service.brands.CountEstablishedBy(context, HeritageBrandCutoffYear); err != nil {
		return nil, err
	}

	overview.Visits = service.bumpVisits(context)

	return overview, nil
}

// bumpVisits increments and returns the landing-page visit counter.
func (service *Service) bumpVisits(context context.Context) int64 {
	visits, err := service.redis.Incr(context, constants.RedisKeyIndexVisits).Result()
	if err != nil {
		service.logger.Warn("stats_visit_counter_unavailable",
			slog.String("error", err.Error()),
		)
		return 0
	}
	return visits
}

// Visits returns the current visit counter without incrementing it.
func (service *Service) Visits(context context.Context) (int64, error) {
	visits, err := service.redis.Get(context, constants.RedisKeyIndexVisits).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, err
	}
	return visits, nil
}

// ResetVisits clears the visit counter. Admin maintenance only.
func (service *Service) ResetVisits(context context.Context) error {
	if err := service.redis.Del(context, constants.RedisKeyIndexVisits).Err(); err != nil {
		return err
	}

	service.logger.Info("stats_visits_reset")
	return nil
}
