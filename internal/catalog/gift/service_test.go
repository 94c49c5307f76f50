// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/internal/catalog/gift"
	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/dberr"
	"github.com/giftwell/giftwell/pkg/pagination"
	"github.com/giftwell/giftwell/pkg/pointer"
)

// fakeRepo is an in-memory Repository for service-level tests.
type fakeRepo struct {
	gifts  map[int]*gift.Gift
	nextID int

	// createErr, when set, is returned from CreateGift as a storage failure.
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{gifts: map[int]*gift.Gift{}, nextID: 1}
}

func (f *fakeRepo) ListGifts(_ context.Context, params pagination.Params, _ []int) ([]*gift.Gift, int, error) {
	var all []*gift.Gift
	for _, g := range f.gifts {
		all = append(all, g)
	}
	return all, len(all), nil
}

func (f *fakeRepo) GetGiftByID(_ context.Context, id int) (*gift.Gift, error) {
	g, ok := f.gifts[id]
	if !ok {
		return nil, apperr.NotFound("Gift")
	}
	clone := *g
	return &clone, nil
}

func (f *fakeRepo) CreateGift(_ context.Context, g *gift.Gift, categoryIDs []int) error {
	if f.createErr != nil {
		return dberr.Wrap(f.createErr, "Gift")
	}
	g.ID = f.nextID
	f.nextID++
	stored := *g
	f.gifts[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateGift(_ context.Context, g *gift.Gift, categoryIDs []int) error {
	if _, ok := f.gifts[g.ID]; !ok {
		return apperr.NotFound("Gift")
	}
	stored := *g
	f.gifts[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteGift(_ context.Context, id int) error {
	if _, ok := f.gifts[id]; !ok {
		return apperr.NotFound("Gift")
	}
	delete(f.gifts, id)
	return nil
}

func (f *fakeRepo) CategoriesOf(_ context.Context, giftID int) ([]string, error) {
	g, ok := f.gifts[giftID]
	if !ok {
		return nil, apperr.NotFound("Gift")
	}
	return g.Categories, nil
}

func (f *fakeRepo) CountGifts(_ context.Context) (int, error) {
	return len(f.gifts), nil
}

func (f *fakeRepo) CountDescriptionContains(_ context.Context, needle string) (int, error) {
	count := 0
	for _, g := range f.gifts {
		if strings.Contains(strings.ToLower(g.Description), strings.ToLower(needle)) {
			count++
		}
	}
	return count, nil
}

func newTestService(repo gift.Repository) *gift.Service {
	return gift.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateGift covers the happy path with trimming.
*/
func TestService_CreateGift(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	record, err := service.CreateGift(context.Background(), gift.CreateGiftInput{
		Name:        "  Leather Notebook  ",
		Ref:         " GW-001 ",
		BrandID:     pointer.To(3),
		Description: "A5 dotted",
	})

	require.NoError(t, err)
	assert.Equal(t, "Leather Notebook", record.Name)
	assert.Equal(t, "GW-001", record.Ref)
	require.NotNil(t, record.BrandID)
	assert.Equal(t, 3, *record.BrandID)
	assert.NotZero(t, record.ID)
}

/*
TestService_CreateGift_NoBrand verifies the brand reference is optional.
*/
func TestService_CreateGift_NoBrand(t *testing.T) {
	service := newTestService(newFakeRepo())

	record, err := service.CreateGift(context.Background(), gift.CreateGiftInput{
		Name: "Candle", Ref: "GW-002",
	})

	require.NoError(t, err)
	assert.Nil(t, record.BrandID)
}

/*
TestService_CreateGift_Validation rejects structurally invalid input before
any storage call.
*/
func TestService_CreateGift_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     gift.CreateGiftInput
		wantField string
	}{
		{"missing_name", gift.CreateGiftInput{Ref: "GW-001"}, "name"},
		{"missing_ref", gift.CreateGiftInput{Name: "Candle"}, "ref"},
		{"blank_ref", gift.CreateGiftInput{Name: "Candle", Ref: "   "}, "ref"},
		{"ref_too_long", gift.CreateGiftInput{Name: "Candle", Ref: "REF-0123456789-0123456789"}, "ref"},
		{"bad_brand", gift.CreateGiftInput{Name: "Candle", Ref: "GW-001", BrandID: pointer.To(0)}, "brand_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			service := newTestService(repo)

			_, err := service.CreateGift(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.wantField, ae.Details[0].Field)
			assert.Empty(t, repo.gifts)
		})
	}
}

/*
TestService_CreateGift_DuplicateRef surfaces a unique violation on the
reference code as a Conflict.
*/
func TestService_CreateGift_DuplicateRef(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	service := newTestService(repo)

	_, err := service.CreateGift(context.Background(), gift.CreateGiftInput{
		Name: "Candle", Ref: "GW-001",
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_UpdateGift verifies partial update semantics: nil pointers leave
fields alone, set optionals overwrite or clear.
*/
func TestService_UpdateGift(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateGift(context.Background(), gift.CreateGiftInput{
		Name: "Candle", Ref: "GW-001", BrandID: pointer.To(1), Description: "Scented",
	})
	require.NoError(t, err)

	updated, err := service.UpdateGift(context.Background(), created.ID, gift.UpdateGiftInput{
		Name:     pointer.To("Beeswax Candle"),
		Ref:      pointer.To("GW-010"),
		BrandSet: true, BrandID: nil, // explicit null clears the brand
	})

	require.NoError(t, err)
	assert.Equal(t, "Beeswax Candle", updated.Name)
	assert.Equal(t, "GW-010", updated.Ref)
	assert.Equal(t, "Scented", updated.Description)
	assert.Nil(t, updated.BrandID)
}

/*
TestService_UpdateGift_NotFound propagates a missing id.
*/
func TestService_UpdateGift_NotFound(t *testing.T) {
	service := newTestService(newFakeRepo())

	_, err := service.UpdateGift(context.Background(), 42, gift.UpdateGiftInput{})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_CountDescriptionContains checks the case-insensitive needle
count used by the stats overview.
*/
func TestService_CountDescriptionContains(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	for i, desc := range []string{"A floral perfume", "Eau de PERFUME", "Scented candle"} {
		_, err := service.CreateGift(context.Background(), gift.CreateGiftInput{
			Name: "G", Ref: "GW-00" + string(rune('1'+i)), Description: desc,
		})
		require.NoError(t, err)
	}

	count, err := service.CountDescriptionContains(context.Background(), "Perfume")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
