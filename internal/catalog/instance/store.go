// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance

import (
	"context"

	"github.com/giftwell/giftwell/pkg/pagination"
)

// Repository defines the data access contract.
type Repository interface {
	ListInstances(context context.Context, params pagination.Params) ([]*Instance, int, error)
	ListByRequester(context context.Context, userID string) ([]*Instance, error)
	GetInstanceByID(context context.Context, id string) (*Instance, error)
	CreateInstance(context context.Context, instance *Instance) error
	// ClaimInstance atomically assigns the requester and applies the event
	// details, guarded so a concurrently claimed instance is not stolen.
	// Returns false when the guard rejected the write.
	ClaimInstance(context context.Context, instance *Instance, userID string) (bool, error)
	ReleaseInstance(context context.Context, id string, userID string) (bool, error)
	SetStatus(context context.Context, id string, status string) error
	DeleteInstance(context context.Context, id string) error
	CountInstances(context context.Context) (int, error)
	CountByStatus(context context.Context, status string) (int, error)
}
