// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package brand_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/internal/catalog/brand"
	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/dberr"
	"github.com/giftwell/giftwell/pkg/pointer"
)

// fakeRepo is an in-memory Repository for service-level tests.
type fakeRepo struct {
	brands map[int]*brand.Brand
	nextID int

	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{brands: map[int]*brand.Brand{}, nextID: 1}
}

func (f *fakeRepo) ListBrands(_ context.Context) ([]*brand.Brand, error) {
	var all []*brand.Brand
	for _, b := range f.brands {
		all = append(all, b)
	}

	// Name ascending, as the store lists reference data
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all, nil
}

func (f *fakeRepo) GetBrandByID(_ context.Context, id int) (*brand.Brand, error) {
	b, ok := f.brands[id]
	if !ok {
		return nil, apperr.NotFound("Brand")
	}
	clone := *b
	return &clone, nil
}

func (f *fakeRepo) GetBrandBySlug(_ context.Context, slug string) (*brand.Brand, error) {
	for _, b := range f.brands {
		if b.Slug == slug {
			clone := *b
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("Brand")
}

func (f *fakeRepo) CreateBrand(_ context.Context, b *brand.Brand) error {
	b.ID = f.nextID
	f.nextID++
	stored := *b
	f.brands[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateBrand(_ context.Context, b *brand.Brand) error {
	if _, ok := f.brands[b.ID]; !ok {
		return apperr.NotFound("Brand")
	}
	stored := *b
	f.brands[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteBrand(_ context.Context, id int) error {
	if f.deleteErr != nil {
		return dberr.Wrap(f.deleteErr, "Brand")
	}
	if _, ok := f.brands[id]; !ok {
		return apperr.NotFound("Brand")
	}
	delete(f.brands, id)
	return nil
}

func (f *fakeRepo) CountEstablishedBy(_ context.Context, year int) (int, error) {
	count := 0
	for _, b := range f.brands {
		if b.Est != nil && *b.Est <= year {
			count++
		}
	}
	return count, nil
}

func newTestService(repo brand.Repository) *brand.Service {
	return brand.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

/*
TestService_CreateBrand derives the slug from the trimmed name.
*/
func TestService_CreateBrand(t *testing.T) {
	service := newTestService(newFakeRepo())

	record, err := service.CreateBrand(context.Background(), brand.CreateBrandInput{
		Name: "  Hermès Éditeur  ",
		Est:  pointer.To(1837),
	})

	require.NoError(t, err)
	assert.Equal(t, "Hermès Éditeur", record.Name)
	assert.Equal(t, "hermes-editeur", record.Slug)
	assert.Equal(t, 1837, *record.Est)
}

/*
TestService_CreateBrand_EstValidation bounds the establishment year between
year 1 and the current year.
*/
func TestService_CreateBrand_EstValidation(t *testing.T) {
	tests := []struct {
		name    string
		est     *int
		isValid bool
	}{
		{"no_year", nil, true},
		{"historic", pointer.To(1837), true},
		{"current_year", pointer.To(time.Now().Year()), true},
		{"year_zero", pointer.To(0), false},
		{"future", pointer.To(time.Now().Year() + 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepo())

			_, err := service.CreateBrand(context.Background(), brand.CreateBrandInput{
				Name: "Atelier", Est: tt.est,
			})

			if tt.isValid {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
			}
		})
	}
}

/*
TestService_ListBrands_Ordering lists brands alphabetically regardless of
insertion order.
*/
func TestService_ListBrands_Ordering(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	for _, name := range []string{"Zephyr", "Atelier", "Maison"} {
		_, err := service.CreateBrand(context.Background(), brand.CreateBrandInput{Name: name})
		require.NoError(t, err)
	}

	list, err := service.ListBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "Atelier", list[0].Name)
	assert.Equal(t, "Maison", list[1].Name)
	assert.Equal(t, "Zephyr", list[2].Name)
}

/*
TestService_UpdateBrand regenerates the slug on rename and clears the year
only when explicitly set to null.
*/
func TestService_UpdateBrand(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateBrand(context.Background(), brand.CreateBrandInput{
		Name: "Old House", Est: pointer.To(1912),
	})
	require.NoError(t, err)

	// Rename without touching the year
	renamed, err := service.UpdateBrand(context.Background(), created.ID, brand.UpdateBrandInput{
		Name: pointer.To("New House"),
	})
	require.NoError(t, err)
	assert.Equal(t, "new-house", renamed.Slug)
	require.NotNil(t, renamed.Est)
	assert.Equal(t, 1912, *renamed.Est)

	// Explicit null clears the year
	cleared, err := service.UpdateBrand(context.Background(), created.ID, brand.UpdateBrandInput{
		EstSet: true, Est: nil,
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.Est)
}

/*
TestService_DeleteBrand_InUse surfaces a restrict violation as
RESOURCE_IN_USE when gifts still reference the brand.
*/
func TestService_DeleteBrand_InUse(t *testing.T) {
	repo := newFakeRepo()
	repo.deleteErr = &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	service := newTestService(repo)

	err := service.DeleteBrand(context.Background(), 1)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "RESOURCE_IN_USE", ae.Code)
	assert.Equal(t, 409, ae.HTTPStatus)
}

/*
TestService_CountEstablishedBy counts heritage brands for the stats page.
*/
func TestService_CountEstablishedBy(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	for i, est := range []*int{pointer.To(1837), pointer.To(1999), pointer.To(2015), nil} {
		_, err := service.CreateBrand(context.Background(), brand.CreateBrandInput{
			Name: "House " + string(rune('A'+i)), Est: est,
		})
		require.NoError(t, err)
	}

	count, err := service.CountEstablishedBy(context.Background(), 1999)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
