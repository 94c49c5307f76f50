// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/internal/platform/sec"
)

/*
TestUserRole_AtLeast verifies the role hierarchy comparisons.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_member", sec.RoleAdmin, sec.RoleMember, true},
		{"member_meets_member", sec.RoleMember, sec.RoleMember, true},
		{"member_below_admin", sec.RoleMember, sec.RoleAdmin, false},
		{"unknown_below_member", sec.UserRole("ghost"), sec.RoleMember, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

/*
TestGenerateSecureToken checks length and uniqueness of opaque tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	// 32 raw bytes encode to 43 base64url chars without padding
	assert.Len(t, first, 43)

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

/*
TestHashToken verifies the digest is deterministic and hex-encoded.
*/
func TestHashToken(t *testing.T) {
	hash := sec.HashToken("my-refresh-token")

	// SHA-256 hex digest is always 64 chars
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, sec.HashToken("my-refresh-token"))
	assert.NotEqual(t, hash, sec.HashToken("my-refresh-token2"))
	assert.NotContains(t, hash, "my-refresh-token")
}

/*
TestPasswordHashing verifies the bcrypt round trip.
*/
func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("s3cret-passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passphrase", hash)

	assert.True(t, sec.CheckPasswordHash("s3cret-passphrase", hash))
	assert.False(t, sec.CheckPasswordHash("wrong-passphrase", hash))
	assert.False(t, sec.CheckPasswordHash("s3cret-passphrase", "not-a-bcrypt-hash"))
}
