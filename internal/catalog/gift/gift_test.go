// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package gift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/internal/catalog/gift"
)

/*
TestGift_DisplayCategories verifies the short listing label: first three
category names alphabetically, comma separated.
*/
func TestGift_DisplayCategories(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		want       string
	}{
		{
			"truncates_to_three_sorted",
			[]string{"Fragrance", "Eau de parfum", "Eau de cologne", "Vintage"},
			"Eau de cologne, Eau de parfum, Fragrance",
		},
		{"fewer_than_three", []string{"Vintage", "Fragrance"}, "Fragrance, Vintage"},
		{"single", []string{"Fragrance"}, "Fragrance"},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &gift.Gift{Categories: tt.categories}
			assert.Equal(t, tt.want, g.DisplayCategories())
		})
	}
}

/*
TestGift_DisplayCategories_DoesNotMutate checks that building the label
leaves the stored tag order intact.
*/
func TestGift_DisplayCategories_DoesNotMutate(t *testing.T) {
	g := &gift.Gift{Categories: []string{"Vintage", "Fragrance"}}
	_ = g.DisplayCategories()

	assert.Equal(t, []string{"Vintage", "Fragrance"}, g.Categories)
}
