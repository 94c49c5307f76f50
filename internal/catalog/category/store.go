// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package category

import "context"

// Repository defines the data access contract.
type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryByID(context context.Context, id int) (*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, category *Category) error
	DeleteCategory(context context.Context, id int) error
}
