// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/pkg/query"
)

/*
TestCommaInts parses the ?categories=1,2,3 filter format.
*/
func TestCommaInts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"empty", "", nil},
		{"single", "7", []int{7}},
		{"multiple", "1,2,3", []int{1, 2, 3}},
		{"skips_garbage", "1,x,3", []int{1, 3}},
		{"all_garbage", "a,b", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.CommaInts(tt.input))
		})
	}
}

/*
TestStringSlice trims and drops empty entries.
*/
func TestStringSlice(t *testing.T) {
	assert.Nil(t, query.StringSlice(""))
	assert.Equal(t, []string{"a", "b"}, query.StringSlice(" a , b ,"))
}
