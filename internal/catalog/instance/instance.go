// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package instance manages claimable copies of catalog gifts.

A gift instance is one concrete wish: "this gift, in this size and colour,
for this event". Members claim instances onto their own list, fill in the
event details, and release them again if plans change. An admin can flip an
instance's stock status independently of who claimed it.

# Identifiers

Instances are keyed by random UUIDs rather than sequence numbers so that a
claim link cannot be guessed by walking ids.
*/
package instance

import "time"

// Instance status values.
const (
	StatusAvailable = "available"
	StatusTaken     = "taken"
)

// Instance represents one claimable copy of a gift.
type Instance struct {
	ID          string     `json:"id"`
	GiftID      int        `json:"gift_id"`
	GiftName    string     `json:"gift_name,omitempty"`
	EventDate   *time.Time `json:"event_date,omitempty"`
	Size        *string    `json:"size,omitempty"`
	Colour      *string    `json:"colour,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	URL         *string    `json:"url,omitempty"`
	RequesterID *string    `json:"requester_id,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsExpired reports whether the instance's event date is strictly before
// the current date. The comparison is at day granularity: an event
// happening today is not yet expired. Instances without an event date
// never expire.
func (instance *Instance) IsExpired(now time.Time) bool {
	if instance.EventDate == nil {
		return false
	}
	eventY, eventM, eventD := instance.EventDate.UTC().Date()
	nowY, nowM, nowD := now.UTC().Date()
	event := time.Date(eventY, eventM, eventD, 0, 0, 0, 0, time.UTC)
	today := time.Date(nowY, nowM, nowD, 0, 0, 0, 0, time.UTC)
	return event.Before(today)
}

// IsClaimed reports whether any member currently holds the instance.
func (instance *Instance) IsClaimed() bool {
	return instance.RequesterID != nil
}

// ClaimedBy reports whether the given member currently holds the instance.
func (instance *Instance) ClaimedBy(userID string) bool {
	return instance.RequesterID != nil && *instance.RequesterID == userID
}

// # Field Identifiers

const (
	FieldGiftID    = "gift_id"
	FieldEventDate = "event_date"
	FieldSize      = "size"
	FieldColour    = "colour"
	FieldPrice     = "price"
	FieldURL       = "url"
	FieldStatus    = "status"
)
