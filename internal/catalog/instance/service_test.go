// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/internal/catalog/instance"
	"github.com/giftwell/giftwell/internal/platform/apperr"
	"github.com/giftwell/giftwell/internal/platform/sec"
	"github.com/giftwell/giftwell/pkg/pagination"
	"github.com/giftwell/giftwell/pkg/pointer"
)

// fakeRepo is an in-memory Repository mirroring the guarded-update claim
// semantics and the list orderings of the real store.
type fakeRepo struct {
	instances map[string]*instance.Instance
	seq       int

	// vanishOnClaim simulates a concurrent delete: the row disappears
	// before the guarded update runs, which reports zero rows.
	vanishOnClaim bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{instances: map[string]*instance.Instance{}}
}

func (f *fakeRepo) ListInstances(_ context.Context, _ pagination.Params) ([]*instance.Instance, int, error) {
	var all []*instance.Instance
	for _, inst := range f.instances {
		all = append(all, inst)
	}
	return all, len(all), nil
}

func (f *fakeRepo) ListByRequester(_ context.Context, userID string) ([]*instance.Instance, error) {
	var mine []*instance.Instance
	for _, inst := range f.instances {
		if inst.ClaimedBy(userID) {
			mine = append(mine, inst)
		}
	}

	// Soonest event first, undated last, creation order as tie-break
	sort.Slice(mine, func(i, j int) bool {
		a, b := mine[i], mine[j]
		switch {
		case a.EventDate == nil && b.EventDate == nil:
			return a.CreatedAt.Before(b.CreatedAt)
		case a.EventDate == nil:
			return false
		case b.EventDate == nil:
			return true
		case a.EventDate.Equal(*b.EventDate):
			return a.CreatedAt.Before(b.CreatedAt)
		default:
			return a.EventDate.Before(*b.EventDate)
		}
	})
	return mine, nil
}

func (f *fakeRepo) GetInstanceByID(_ context.Context, id string) (*instance.Instance, error) {
	inst, ok := f.instances[id]
	if !ok {
		return nil, apperr.NotFound("Gift instance")
	}
	clone := *inst
	return &clone, nil
}

func (f *fakeRepo) CreateInstance(_ context.Context, inst *instance.Instance) error {
	f.seq++
	inst.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(f.seq) * time.Minute)
	stored := *inst
	f.instances[stored.ID] = &stored
	return nil
}

func (f *fakeRepo) ClaimInstance(_ context.Context, inst *instance.Instance, userID string) (bool, error) {
	if f.vanishOnClaim {
		delete(f.instances, inst.ID)
		return false, nil
	}
	stored, ok := f.instances[inst.ID]
	if !ok {
		return false, nil
	}
	// Guard: free, or already held by the same member
	if stored.RequesterID != nil && *stored.RequesterID != userID {
		return false, nil
	}
	clone := *inst
	f.instances[clone.ID] = &clone
	return true, nil
}

func (f *fakeRepo) ReleaseInstance(_ context.Context, id string, userID string) (bool, error) {
	stored, ok := f.instances[id]
	if !ok {
		return false, apperr.NotFound("Gift instance")
	}
	if stored.RequesterID == nil || *stored.RequesterID != userID {
		return false, nil
	}
	stored.RequesterID = nil
	return true, nil
}

func (f *fakeRepo) SetStatus(_ context.Context, id string, status string) error {
	stored, ok := f.instances[id]
	if !ok {
		return apperr.NotFound("Gift instance")
	}
	stored.Status = status
	return nil
}

func (f *fakeRepo) DeleteInstance(_ context.Context, id string) error {
	if _, ok := f.instances[id]; !ok {
		return apperr.NotFound("Gift instance")
	}
	delete(f.instances, id)
	return nil
}

func (f *fakeRepo) CountInstances(_ context.Context) (int, error) {
	return len(f.instances), nil
}

func (f *fakeRepo) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, inst := range f.instances {
		if inst.Status == status {
			count++
		}
	}
	return count, nil
}

func newTestService(repo instance.Repository) *instance.Service {
	return instance.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func memberClaims(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Role: string(sec.RoleMember)}
}

/*
TestService_CreateInstance verifies defaults: a fresh random id and the
available status.
*/
func TestService_CreateInstance(t *testing.T) {
	service := newTestService(newFakeRepo())

	record, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{
		GiftID: 7,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, instance.StatusAvailable, record.Status)
	assert.Nil(t, record.RequesterID)
}

/*
TestService_CreateInstance_Validation rejects bad prices and URLs.
*/
func TestService_CreateInstance_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input instance.CreateInstanceInput
	}{
		{"missing_gift", instance.CreateInstanceInput{}},
		{"negative_price", instance.CreateInstanceInput{GiftID: 1, Price: pointer.To(-5.0)}},
		{"bad_url", instance.CreateInstanceInput{GiftID: 1, URL: pointer.To("notaurl")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(newFakeRepo())

			_, err := service.CreateInstance(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
		})
	}
}

/*
TestService_Claim puts an available instance on a member's list and records
the event details.
*/
func TestService_Claim(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
	require.NoError(t, err)

	eventDate := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	claimed, err := service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{
		EventDate: &eventDate,
		Size:      pointer.To("M"),
	})

	require.NoError(t, err)
	assert.True(t, claimed.ClaimedBy("user-1"))
	require.NotNil(t, claimed.EventDate)
	assert.Equal(t, eventDate, *claimed.EventDate)

	// Claiming does not flip the stock status
	assert.Equal(t, instance.StatusAvailable, claimed.Status)
}

/*
TestService_Claim_HeldByOther yields a Conflict when another member already
holds the instance.
*/
func TestService_Claim_HeldByOther(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{})
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), created.ID, "user-2", instance.ClaimInput{})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestService_Claim_Idempotent lets the current holder re-claim to refresh the
event details.
*/
func TestService_Claim_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{
		Size: pointer.To("M"),
	})
	require.NoError(t, err)

	updated, err := service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{
		Size: pointer.To("L"),
	})
	require.NoError(t, err)
	assert.Equal(t, "L", *updated.Size)
	assert.True(t, updated.ClaimedBy("user-1"))
}

/*
TestService_Release covers holder release, the unclaimed no-op, non-holder
rejection, and the admin override.
*/
func TestService_Release(t *testing.T) {
	t.Run("holder_releases", func(t *testing.T) {
		repo := newFakeRepo()
		service := newTestService(repo)

		created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
		require.NoError(t, err)
		_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{})
		require.NoError(t, err)

		released, err := service.Release(context.Background(), created.ID, memberClaims("user-1"))
		require.NoError(t, err)
		assert.False(t, released.IsClaimed())
	})

	t.Run("unclaimed_is_noop", func(t *testing.T) {
		repo := newFakeRepo()
		service := newTestService(repo)

		created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
		require.NoError(t, err)

		released, err := service.Release(context.Background(), created.ID, memberClaims("user-1"))
		require.NoError(t, err)
		assert.False(t, released.IsClaimed())
	})

	t.Run("non_holder_forbidden", func(t *testing.T) {
		repo := newFakeRepo()
		service := newTestService(repo)

		created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
		require.NoError(t, err)
		_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{})
		require.NoError(t, err)

		_, err = service.Release(context.Background(), created.ID, memberClaims("user-2"))
		require.Error(t, err)
		assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)
	})

	t.Run("admin_override", func(t *testing.T) {
		repo := newFakeRepo()
		service := newTestService(repo)

		created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
		require.NoError(t, err)
		_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{})
		require.NoError(t, err)

		admin := &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)}
		released, err := service.Release(context.Background(), created.ID, admin)
		require.NoError(t, err)
		assert.False(t, released.IsClaimed())
	})
}

/*
TestService_Claim_DeletedConcurrently reports NotFound, not Conflict, when
the instance disappears between the read and the guarded update.
*/
func TestService_Claim_DeletedConcurrently(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
	require.NoError(t, err)

	repo.vanishOnClaim = true
	_, err = service.Claim(context.Background(), created.ID, "user-1", instance.ClaimInput{})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_ListMine returns only the caller's claimed instances.
*/
func TestService_ListMine(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	mine, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 1})
	require.NoError(t, err)
	other, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 2})
	require.NoError(t, err)

	_, err = service.Claim(context.Background(), mine.ID, "user-1", instance.ClaimInput{})
	require.NoError(t, err)
	_, err = service.Claim(context.Background(), other.ID, "user-2", instance.ClaimInput{})
	require.NoError(t, err)

	list, err := service.ListMine(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)
}

/*
TestService_ListMine_Ordering returns claims soonest event first, with
undated claims last in creation order.
*/
func TestService_ListMine_Ordering(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	december := time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC)
	october := time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC)

	claimWith := func(input instance.ClaimInput) string {
		created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 1})
		require.NoError(t, err)
		_, err = service.Claim(context.Background(), created.ID, "user-1", input)
		require.NoError(t, err)
		return created.ID
	}

	undatedFirst := claimWith(instance.ClaimInput{})
	late := claimWith(instance.ClaimInput{EventDate: &december})
	undatedSecond := claimWith(instance.ClaimInput{})
	soon := claimWith(instance.ClaimInput{EventDate: &october})

	list, err := service.ListMine(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list, 4)

	assert.Equal(t, soon, list[0].ID)
	assert.Equal(t, late, list[1].ID)
	assert.Equal(t, undatedFirst, list[2].ID)
	assert.Equal(t, undatedSecond, list[3].ID)
}

/*
TestService_SetStatus validates the admin stock-status flip.
*/
func TestService_SetStatus(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	created, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 7})
	require.NoError(t, err)

	updated, err := service.SetStatus(context.Background(), created.ID, instance.StatusTaken)
	require.NoError(t, err)
	assert.Equal(t, instance.StatusTaken, updated.Status)

	_, err = service.SetStatus(context.Background(), created.ID, "sold-out")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestService_CountAvailable counts only instances still in stock.
*/
func TestService_CountAvailable(t *testing.T) {
	repo := newFakeRepo()
	service := newTestService(repo)

	first, err := service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 1})
	require.NoError(t, err)
	_, err = service.CreateInstance(context.Background(), instance.CreateInstanceInput{GiftID: 2})
	require.NoError(t, err)

	_, err = service.SetStatus(context.Background(), first.ID, instance.StatusTaken)
	require.NoError(t, err)

	count, err := service.CountAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
