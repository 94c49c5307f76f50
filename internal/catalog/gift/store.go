// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift

import (
	"context"

	"github.com/giftwell/giftwell/pkg/pagination"
)

// Repository defines the data access contract.
//
// CreateGift and UpdateGift write the gift row and its category junction
// rows inside a single transaction.
type Repository interface {
	ListGifts(context context.Context, params pagination.Params, categoryIDs []int) ([]*Gift, int, error)
	GetGiftByID(context context.Context, id int) (*Gift, error)
	CreateGift(context context.Context, gift *Gift, categoryIDs []int) error
	UpdateGift(context context.Context, gift *Gift, categoryIDs []int) error
	DeleteGift(context context.Context, id int) error
	CategoriesOf(context context.Context, giftID int) ([]string, error)
	CountGifts(context context.Context) (int, error)
	CountDescriptionContains(context context.Context, needle string) (int, error)
}
