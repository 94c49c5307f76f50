// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package instance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/giftwell/giftwell/internal/catalog/instance"
	"github.com/giftwell/giftwell/pkg/pointer"
)

/*
TestInstance_IsExpired verifies event-date expiry at day granularity.
Instances without a date never expire, and an event happening today is not
yet expired even though its stored midnight timestamp is behind the clock.
*/
func TestInstance_IsExpired(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		eventDate *time.Time
		want      bool
	}{
		{"no_date", nil, false},
		{"future_date", pointer.To(now.AddDate(0, 1, 0)), false},
		{"past_date", pointer.To(now.AddDate(0, -1, 0)), true},
		{"today_midnight", pointer.To(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)), false},
		{"yesterday_midnight", pointer.To(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)), true},
		{"tomorrow_midnight", pointer.To(time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := &instance.Instance{EventDate: tt.eventDate}
			assert.Equal(t, tt.want, inst.IsExpired(now))
		})
	}
}

/*
TestInstance_ClaimHelpers checks IsClaimed and ClaimedBy.
*/
func TestInstance_ClaimHelpers(t *testing.T) {
	unclaimed := &instance.Instance{}
	assert.False(t, unclaimed.IsClaimed())
	assert.False(t, unclaimed.ClaimedBy("user-1"))

	claimed := &instance.Instance{RequesterID: pointer.To("user-1")}
	assert.True(t, claimed.IsClaimed())
	assert.True(t, claimed.ClaimedBy("user-1"))
	assert.False(t, claimed.ClaimedBy("user-2"))
}
