// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package brand manages gift manufacturers.

A brand carries a name, a URL slug, and an optional establishment year.
Every gift references exactly one brand, and the foreign key is RESTRICT:
a brand cannot be removed while any gift still points at it.
*/
package brand

// Brand represents a gift manufacturer (e.g. "Apple", est 1976).
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	Est  *int   `json:"est,omitempty"`
}

// # Field Identifiers

const (
	FieldName = "name"
	FieldEst  = "est"
)
