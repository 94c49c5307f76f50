// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package category manages the gift-category reference data.

Categories tag gifts through a many-to-many junction. Like the other lookup
entities they are read-mostly: created once, listed alphabetically, and
protected from deletion while any gift still carries the tag.
*/
package category

// Category represents a gift category (e.g. "electronics", "Perfume").
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// # Field Identifiers

const (
	FieldName = "name"
)
