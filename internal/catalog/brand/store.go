// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package brand

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListBrands(context context.Context) ([]*Brand, error)
	GetBrandByID(context context.Context, id int) (*Brand, error)
	GetBrandBySlug(context context.Context, slug string) (*Brand, error)
	CreateBrand(context context.Context, brand *Brand) error
	UpdateBrand(context context.Context, brand *Brand) error
	DeleteBrand(context context.Context, id int) error
	CountEstablishedBy(context context.Context, year int) (int, error)
}
