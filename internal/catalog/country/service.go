// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package country

import (
	"context"
	"log/slog"
	"strings"

	"github.com/giftwell/giftwell/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCountries returns all countries ordered by name ascending.
func (service *Service) ListCountries(context context.Context) ([]*Country, error) {
	return service.repo.ListCountries(context)
}

// GetCountry returns a single country by its numeric identifier.
func (service *Service) GetCountry(context context.Context, id int) (*Country, error) {
	return service.repo.GetCountryByID(context, id)
}

// CreateCountry registers a new country.
//
// Name matching is case-sensitive exact: "usa" and "USA" are distinct rows.
// A colliding name surfaces as a Conflict from the unique index.
func (service *Service) CreateCountry(context context.Context, name string) (*Country, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Country{Name: name}
	if err := service.repo.CreateCountry(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("country_created",
		slog.Int("country_id", record.ID),
		slog.String("name", record.Name),
	)

	return record, nil
}

// DeleteCountry removes a country that no gift references.
//
// The RESTRICT foreign key on catalog.gift rejects the delete otherwise;
// the repository maps that to [apperr.InUse].
func (service *Service) DeleteCountry(context context.Context, id int) error {
	if err := service.repo.DeleteCountry(context, id); err != nil {
		return err
	}

	service.logger.Info("country_deleted", slog.Int("country_id", id))
	return nil
}
