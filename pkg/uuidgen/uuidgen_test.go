// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package uuidgen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/pkg/uuidgen"
)

/*
TestNewV7 verifies version and uniqueness of ordered identifiers.
*/
func TestNewV7(t *testing.T) {
	first := uuidgen.NewV7()
	second := uuidgen.NewV7()

	assert.True(t, uuidgen.IsValid(first))
	assert.NotEqual(t, first, second)

	// The version nibble sits at index 14 of the canonical form
	assert.Equal(t, byte('7'), first[14])
}

/*
TestNewRandom verifies version and uniqueness of claim-token identifiers.
*/
func TestNewRandom(t *testing.T) {
	first := uuidgen.NewRandom()
	second := uuidgen.NewRandom()

	assert.True(t, uuidgen.IsValid(first))
	assert.NotEqual(t, first, second)
	assert.Equal(t, byte('4'), first[14])
}

/*
TestIsValid checks parse acceptance and rejection.
*/
func TestIsValid(t *testing.T) {
	assert.True(t, uuidgen.IsValid("018f4e6c-2f3a-7b54-9c1d-0a2b3c4d5e6f"))
	assert.False(t, uuidgen.IsValid("not-a-uuid"))
	assert.False(t, uuidgen.IsValid(""))
}
