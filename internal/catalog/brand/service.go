// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package brand

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/giftwell/giftwell/internal/platform/validate"
	"github.com/giftwell/giftwell/pkg/slug"
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

// CreateBrandInput carries the fields accepted on brand creation.
type CreateBrandInput struct {
	Name string
	Est  *int
}

// UpdateBrandInput carries the fields accepted on brand update.
//
// Nil pointers mean "leave unchanged"; EstSet distinguishes clearing the
// establishment year from not touching it.
type UpdateBrandInput struct {
	Name   *string
	Est    *int
	EstSet bool
}

// ListBrands returns all brands ordered by name ascending.
func (service *Service) ListBrands(context context.Context) ([]*Brand, error) {
	return service.repo.ListBrands(context)
}

// GetBrand returns a single brand by its numeric identifier.
func (service *Service) GetBrand(context context.Context, id int) (*Brand, error) {
	return service.repo.GetBrandByID(context, id)
}

// GetBrandBySlug resolves a brand via its URL slug.
func (service *Service) GetBrandBySlug(context context.Context, slugValue string) (*Brand, error) {
	return service.repo.GetBrandBySlug(context, slugValue)
}

// CreateBrand registers a new manufacturer.
//
// The establishment year, when given, must fall between year 1 and the
// current calendar year.
func (service *Service) CreateBrand(context context.Context, input CreateBrandInput) (*Brand, error) {
	input.Name = strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	if input.Est != nil {
		validator.Range(FieldEst, *input.Est, 1, time.Now().Year())
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Brand{
		Name: input.Name,
		Slug: slug.From(input.Name),
		Est:  input.Est,
	}

	if err := service.repo.CreateBrand(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("brand_created",
		slog.Int("brand_id", record.ID),
		slog.String("name", record.Name),
	)

	return record, nil
}

// UpdateBrand applies a partial update to an existing brand.
//
// Renaming regenerates the slug. Concurrency is last-writer-wins.
func (service *Service) UpdateBrand(context context.Context, id int, input UpdateBrandInput) (*Brand, error) {
	record, err := service.repo.GetBrandByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
		record.Name = name
		record.Slug = slug.From(name)
	}
	if input.EstSet {
		if input.Est != nil {
			validator.Range(FieldEst, *input.Est, 1, time.Now().Year())
		}
		record.Est = input.Est
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateBrand(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("brand_updated", slog.Int("brand_id", record.ID))
	return record, nil
}

// DeleteBrand removes a brand that no gift references.
//
// The RESTRICT foreign key on gifts rejects the delete otherwise; the
// repository maps that to [apperr.InUse].
func (service *Service) DeleteBrand(context context.Context, id int) error {
	if err := service.repo.DeleteBrand(context, id); err != nil {
		return err
	}

	service.logger.Info("brand_deleted", slog.Int("brand_id", id))
	return nil
}

// CountEstablishedBy counts brands established in or before the given year.
func (service *Service) CountEstablishedBy(context context.Context, year int) (int, error) {
	return service.repo.CountEstablishedBy(context, year)
}
