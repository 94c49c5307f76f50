// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package gift manages the catalog's central entity.

A gift is a product definition: it carries a mandatory unique reference
code, may point at a brand and a country of origin, and is tagged with any
number of categories through a junction table. Concrete claimable copies of
a gift live in the instance package.

Brand and country references are RESTRICT, so deleting either while a gift
points at it fails with a conflict. Deleting a gift is itself blocked while
instances of it exist.
*/
package gift

import (
	"sort"
	"strings"
	"time"
)

// Gift represents a product definition in the catalog.
//
// Ref is the external-facing product code, at most 20 characters and unique
// across the whole catalog. Brand and country are optional references.
type Gift struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Ref         string    `json:"ref"`
	BrandID     *int      `json:"brand_id,omitempty"`
	BrandName   *string   `json:"brand_name,omitempty"`
	Description string    `json:"description,omitempty"`
	MadeInID    *int      `json:"made_in_id,omitempty"`
	MadeInName  *string   `json:"made_in_name,omitempty"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DisplayCategories returns a short label for listings: the first three
// category names in alphabetical order, comma separated.
//
// A gift tagged fragrance, eau-de-parfum, eau-de-cologne and vintage renders
// as "Eau de cologne, Eau de parfum, Fragrance".
func (gift *Gift) DisplayCategories() string {
	names := make([]string, len(gift.Categories))
	copy(names, gift.Categories)
	sort.Strings(names)

	if len(names) > 3 {
		names = names[:3]
	}
	return strings.Join(names, ", ")
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldBrandID     = "brand_id"
	FieldDescription = "description"
	FieldRef         = "ref"
	FieldMadeInID    = "made_in_id"
	FieldCategoryIDs = "category_ids"
)
