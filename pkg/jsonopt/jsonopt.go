// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

// Package jsonopt distinguishes absent JSON fields from explicit nulls.
//
// Plain pointer fields cannot tell "field omitted" apart from "field: null",
// which PATCH handlers need for clearing optional columns.
package jsonopt

import "encoding/json"

// Optional wraps a value that may be absent, null, or set.
//
// Set is true whenever the field appeared in the payload; Value is nil for
// an explicit null.
type Optional[T any] struct {
	Value *T
	Set   bool
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
