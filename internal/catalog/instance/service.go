// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance

import (
	"context"
	"log/slog"
	"time"

	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/sec"
	"github.com/giftwell/giftwell/internal/platform/validate"
	"github.com/giftwell/giftwell/pkg/pagination"
	"github.com/giftwell/giftwell/pkg/pointer"
	"github.com/giftwell/giftwell/pkg/uuidgen"
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

// CreateInstanceInput carries the fields accepted when adding a copy of a
// gift to the catalog.
type CreateInstanceInput struct {
	GiftID    int
	EventDate *time.Time
	Size      *string
	Colour    *string
	Price     *float64
	URL       *string
}

// ClaimInput carries the event details a member fills in while claiming.
//
// Nil pointers leave the stored value unchanged.
type ClaimInput struct {
	EventDate *time.Time
	Size      *string
	Colour    *string
	Price     *float64
	URL       *string
}

// ListInstances returns one admin page of all instances ordered by creation
// time, plus the total count.
func (service *Service) ListInstances(context context.Context, params pagination.Params) ([]*Instance, pagination.Meta, error) {
	instances, total, err := service.repo.ListInstances(context, params)
	if err != nil {
		return nil, pagination.Meta{}, err
	}
	return instances, pagination.NewMeta(params.Page, params.Limit, total), nil
}

// ListMine returns the instances the member has claimed, soonest event
// first; instances without an event date sort last.
func (service *Service) ListMine(context context.Context, userID string) ([]*Instance, error) {
	return service.repo.ListByRequester(context, userID)
}

// GetInstance returns a single instance by its UUID.
func (service *Service) GetInstance(context context.Context, id string) (*Instance, error) {
	return service.repo.GetInstanceByID(context, id)
}

// CreateInstance adds a claimable copy of a gift.
//
// The id is a random UUID and the status starts as available. An unknown
// gift id is rejected by the foreign key.
func (service *Service) CreateInstance(context context.Context, input CreateInstanceInput) (*Instance, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldGiftID, input.GiftID <= 0, "Must reference an existing gift")
	if input.Price != nil {
		validator.NonNegative(FieldPrice, *input.Price)
	}
	if input.URL != nil {
		validator.URL(FieldURL, *input.URL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	record := &Instance{
		ID:        uuidgen.NewRandom(),
		GiftID:    input.GiftID,
		EventDate: input.EventDate,
		Size:      input.Size,
		Colour:    input.Colour,
		Price:     input.Price,
		URL:       input.URL,
		Status:    StatusAvailable,
	}

	if err := service.repo.CreateInstance(context, record); err != nil {
		return nil, err
	}

	service.logger.Info("instance_created",
		slog.String("instance_id", record.ID),
		slog.Int("gift_id", record.GiftID),
	)

	return service.repo.GetInstanceByID(context, record.ID)
}

// Claim puts the instance on the member's list and records the event
// details.
//
// Claiming is idempotent for the current holder: re-claiming refreshes the
// details. An instance held by someone else yields a Conflict. The stock
// status is not touched; that is a separate admin operation.
func (service *Service) Claim(context context.Context, id string, userID string, input ClaimInput) (*Instance, error) {
	record, err := service.repo.GetInstanceByID(context, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	if input.Price != nil {
		validator.NonNegative(FieldPrice, *input.Price)
	}
	if input.URL != nil {
		validator.URL(FieldURL, *input.URL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.EventDate != nil {
		record.EventDate = input.EventDate
	}
	if input.Size != nil {
		record.Size = input.Size
	}
	if input.Colour != nil {
		record.Colour = input.Colour
	}
	if input.Price != nil {
		record.Price = input.Price
	}
	if input.URL != nil {
		record.URL = input.URL
	}
	record.RequesterID = pointer.To(userID)

	claimed, err := service.repo.ClaimInstance(context, record, userID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Zero rows means the guard lost: either another member claimed
		// the instance in the meantime or it was deleted. Re-read to tell
		// the two apart.
		if _, err := service.repo.GetInstanceByID(context, id); err != nil {
			return nil, err
		}
		return nil, apperr.Conflict("Gift instance is already claimed")
	}

	service.logger.Info("instance_claimed",
		slog.String("instance_id", id),
		slog.String("user_id", userID),
	)

	return service.repo.GetInstanceByID(context, id)
}

// Release takes the instance off a member's list.
//
// Only the current holder or an admin may release; releasing an unclaimed
// instance is a no-op.
func (service *Service) Release(context context.Context, id string, claims *sec.AuthClaims) (*Instance, error) {
	record, err := service.repo.GetInstanceByID(context, id)
	if err != nil {
		return nil, err
	}

	if !record.IsClaimed() {
		return record, nil
	}

	if !record.ClaimedBy(claims.UserID) && !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		return nil, apperr.Forbidden("Only the current holder can release this gift instance")
	}

	holder := *record.RequesterID
	released, err := service.repo.ReleaseInstance(context, id, holder)
	if err != nil {
		return nil, err
	}
	if !released {
		// Holder changed or the instance vanished between read and write.
		if _, err := service.repo.GetInstanceByID(context, id); err != nil {
			return nil, err
		}
		return nil, apperr.Conflict("Gift instance was claimed by another member")
	}

	service.logger.Info("instance_released",
		slog.String("instance_id", id),
		slog.String("user_id", claims.UserID),
	)

	return service.repo.GetInstanceByID(context, id)
}

// SetStatus flips the stock status between available and taken.
func (service *Service) SetStatus(context context.Context, id string, status string) (*Instance, error) {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, status, StatusAvailable, StatusTaken)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.SetStatus(context, id, status); err != nil {
		return nil, err
	}

	service.logger.Info("instance_status_set",
		slog.String("instance_id", id),
		slog.String("status", status),
	)

	return service.repo.GetInstanceByID(context, id)
}

// DeleteInstance removes a copy from the catalog entirely.
func (service *Service) DeleteInstance(context context.Context, id string) error {
	if err := service.repo.DeleteInstance(context, id); err != nil {
		return err
	}

	service.logger.Info("instance_deleted", slog.String("instance_id", id))
	return nil
}

// CountInstances returns the total number of instances.
func (service *Service) CountInstances(context context.Context) (int, error) {
	return service.repo.CountInstances(context)
}

// CountAvailable returns the number of instances still in stock.
func (service *Service) CountAvailable(context context.Context) (int, error) {
	return service.repo.CountByStatus(context, StatusAvailable)
}
