// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/pkg/pagination"
)

/*
TestParams_Offset verifies the SQL offset derivation.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 20}, 0},
		{"second_page", pagination.Params{Page: 2, Limit: 20}, 20},
		{"deep_page", pagination.Params{Page: 5, Limit: 10}, 40},
		{"zero_page", pagination.Params{Page: 0, Limit: 20}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

/*
TestNewMeta checks the total-pages rounding.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		limit          int
		total          int
		wantTotalPages int
	}{
		{"exact_fit", 20, 40, 2},
		{"partial_last_page", 20, 41, 3},
		{"empty", 20, 0, 0},
		{"single_item", 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(1, tt.limit, tt.total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

/*
TestFromRequest verifies query parsing and clamping of abusive values.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 20},
		{"explicit", "page=3&limit=50", 3, 50},
		{"negative_page", "page=-1", 1, 20},
		{"zero_limit", "limit=0", 1, 20},
		{"over_max_limit", "limit=9999", 1, 20},
		{"garbage", "page=abc&limit=xyz", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/gifts?"+tt.query, nil)
			params := pagination.FromRequest(r)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}
