// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/pkg/slug"
)

/*
TestFrom covers the slug transformation pipeline, including accent folding
for brand names.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Fragrance", "fragrance"},
		{"spaces", "Eau de Parfum", "eau-de-parfum"},
		{"accents", "Hermès Éditeur", "hermes-editeur"},
		{"punctuation", "Dolce & Gabbana", "dolce-gabbana"},
		{"numbers", "No 5", "no-5"},
		{"multi_hyphen_collapse", "a  --  b", "a-b"},
		{"leading_trailing", "  -vintage-  ", "vintage"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
