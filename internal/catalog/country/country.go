// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package country manages the country-of-origin reference data.

Countries are flat lookup records: created ad hoc via the API or admin
tooling, listed alphabetically, and never deleted while a gift still points
at them. The "made in" relation on gifts carries a RESTRICT policy, so the
delete path surfaces [apperr.InUse] instead of cascading.
*/
package country

// Country represents a country a gift can be made in.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// # Field Identifiers

const (
	FieldName = "name"
)
