// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package category

import (
	"context"
	"log/slog"
	"strings"

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

// ListCategories returns all categories ordered by name ascending.
func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

// GetCategory returns a single category by its numeric identifier.
func (service *Service) GetCategory(context context.Context, id int) (*Category, error) {
	return service.repo.GetCategoryByID(context, id)
}

// GetCategoryBySlug resolves a category via its URL slug.
func (service *Service) GetCategoryBySlug(context context.Context, slugValue string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, slugValue)
}

// CreateCategory registers a new category with a derived URL slug.
//
// Name matching is case-sensitive exact; a colliding name surfaces as a
// Conflict from the unique index.
func (service *Service) CreateCategory(context context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Category{
		Name: name,
		Slug: slug.From(name),
	}

	if err := service.repo.CreateCategory(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.Int("category_id", record.ID),
		slog.String("name", record.Name),
	)

	return record, nil
}

// DeleteCategory removes a category that no gift is tagged with.
//
// The junction table's RESTRICT policy rejects the delete otherwise; the
// repository maps that to [apperr.InUse].
func (service *Service) DeleteCategory(context context.Context, id int) error {
	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.Int("category_id", id))
	return nil
}
