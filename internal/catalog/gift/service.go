// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift

import (
	"context"
	"log/slog"
	"strings"

	"github.com/giftwell/giftwell/internal/platform/validate"
	"github.com/giftwell/giftwell/pkg/pagination"
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

// CreateGiftInput carries the fields accepted on gift creation.
type CreateGiftInput struct {
	Name        string
	Ref         string
	BrandID     *int
	Description string
	MadeInID    *int
	CategoryIDs []int
}

// UpdateGiftInput carries the fields accepted on gift update.
//
// Nil pointers leave the field unchanged. BrandSet and MadeInSet distinguish
// clearing the optional reference from not touching it; the ref can be
// changed but never cleared. CategoryIDs, when non-nil, replaces the full
// tag set.
type UpdateGiftInput struct {
	Name        *string
	Ref         *string
	BrandID     *int
	BrandSet    bool
	Description *string
	MadeInID    *int
	MadeInSet   bool
	CategoryIDs []int
}

// ListGifts returns one page of gifts ordered by id ascending, each with
// its aggregated category names, plus the total row count.
//
// A non-empty categoryIDs filter keeps only gifts tagged with at least one
// of the given categories.
func (service *Service) ListGifts(context context.Context, params pagination.Params, categoryIDs []int) ([]*Gift, pagination.Meta, error) {
	gifts, total, err := service.repo.ListGifts(context, params, categoryIDs)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return gifts, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// GetGift returns a single gift with brand, country and category names
// resolved.
func (service *Service) GetGift(context context.Context, id int) (*Gift, error) {
	return service.repo.GetGiftByID(context, id)
}

// CreateGift registers a new product definition.
//
// The reference code is mandatory and must be unique across the catalog; a
// collision surfaces as a Conflict. Unknown brand, country or category ids
// are rejected by their foreign keys.
func (service *Service) CreateGift(context context.Context, input CreateGiftInput) (*Gift, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Ref = strings.TrimSpace(input.Ref)

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 200)
	validator.Required(FieldRef, input.Ref).MaxLen(FieldRef, input.Ref, 20)
	if input.BrandID != nil {
		validator.Custom(FieldBrandID, *input.BrandID <= 0, "Must reference an existing brand")
	}
	validator.MaxLen(FieldDescription, input.Description, 2000)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Gift{
		Name:        input.Name,
		Ref:         input.Ref,
		BrandID:     input.BrandID,
		Description: input.Description,
		MadeInID:    input.MadeInID,
	}

	if err := service.repo.CreateGift(context, record, input.CategoryIDs); err != nil {
		return nil, err
	}

	service.logger.Info("gift_created",
		slog.Int("gift_id", record.ID),
		slog.String("name", record.Name),
		slog.String("ref", record.Ref),
	)

	return service.repo.GetGiftByID(context, record.ID)
}

// UpdateGift applies a partial update to an existing gift.
//
// Passing category ids replaces the entire tag set atomically with the row
// update. Concurrency is last-writer-wins.
func (service *Service) UpdateGift(context context.Context, id int, input UpdateGiftInput) (*Gift, error) {
	record, err := service.repo.GetGiftByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		validator.Required(FieldName, name).MaxLen(FieldName, name, 200)
		record.Name = name
	}
	if input.Ref != nil {
		ref := strings.TrimSpace(*input.Ref)
		validator.Required(FieldRef, ref).MaxLen(FieldRef, ref, 20)
		record.Ref = ref
	}
	if input.BrandSet {
		if input.BrandID != nil {
			validator.Custom(FieldBrandID, *input.BrandID <= 0, "Must reference an existing brand")
		}
		record.BrandID = input.BrandID
	}
	if input.Description != nil {
		validator.MaxLen(FieldDescription, *input.Description, 2000)
		record.Description = *input.Description
	}
	if input.MadeInSet {
		record.MadeInID = input.MadeInID
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	categoryIDs := input.CategoryIDs
	if err := service.repo.UpdateGift(context, record, categoryIDs); err != nil {
		return nil, err
	}

	service.logger.Info("gift_updated", slog.Int("gift_id", record.ID))
	return service.repo.GetGiftByID(context, record.ID)
}

// DeleteGift removes a gift that has no instances.
//
// The RESTRICT foreign key on instances rejects the delete otherwise.
func (service *Service) DeleteGift(context context.Context, id int) error {
	if err := service.repo.DeleteGift(context, id); err != nil {
		return err
	}

	service.logger.Info("gift_deleted", slog.Int("gift_id", id))
	return nil
}

// CategoriesOf returns the category names a gift is tagged with, ordered
// alphabetically.
func (service *Service) CategoriesOf(context context.Context, giftID int) ([]string, error) {
	return service.repo.CategoriesOf(context, giftID)
}

// CountGifts returns the total number of product definitions.
func (service *Service) CountGifts(context context.Context) (int, error) {
	return service.repo.CountGifts(context)
}

// CountDescriptionContains counts gifts whose description contains the
// needle, case-insensitively.
func (service *Service) CountDescriptionContains(context context.Context, needle string) (int, error) {
	return service.repo.CountDescriptionContains(context, needle)
}
