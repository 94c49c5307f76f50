// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

/*
Package uuidgen provides the two identifier flavours used by the platform.

Flavours:

  - NewV7: time-ordered UUIDv7 for internal primary keys (accounts, sessions).
    Sortable by creation time, B-tree friendly in PostgreSQL.
  - NewRandom: fully random UUIDv4 for gift-instance claim tokens. These IDs
    appear verbatim in URLs, so they must carry no temporal ordering an
    outsider could use to enumerate other users' claims.

Never swap one for the other: instance IDs must stay unguessable, primary
keys must stay index-friendly.
*/
package uuidgen

import "github.com/google/uuid"

// # Generators

// NewV7 generates a new time-ordered UUIDv7 string.
func NewV7() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuidgen: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// NewRandom generates a fully random UUIDv4 string (122 bits of entropy).
func NewRandom() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as any RFC 4122 UUID.
func IsValid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
