// Copyright (c) 2026 Giftwell. All rights reserved.
// Author: dev@giftwell.app

package jsonopt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftwell/giftwell/pkg/jsonopt"
)

type patchPayload struct {
	Ref jsonopt.Optional[string] `json:"ref"`
	Est jsonopt.Optional[int]    `json:"est"`
}

/*
TestOptional_Unmarshal distinguishes absent, null, and set fields.
*/
func TestOptional_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantSet   bool
		wantValue *string
	}{
		{"absent", `{}`, false, nil},
		{"explicit_null", `{"ref": null}`, true, nil},
		{"set", `{"ref": "GW-001"}`, true, strPtr("GW-001")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patchPayload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.wantSet, p.Ref.Set)
			if tt.wantValue == nil {
				assert.Nil(t, p.Ref.Value)
			} else {
				require.NotNil(t, p.Ref.Value)
				assert.Equal(t, *tt.wantValue, *p.Ref.Value)
			}
		})
	}
}

/*
TestOptional_Unmarshal_TypeMismatch verifies that wrong types surface an error.
*/
func TestOptional_Unmarshal_TypeMismatch(t *testing.T) {
	var p patchPayload
	err := json.Unmarshal([]byte(`{"est": "nineteen-twelve"}`), &p)
	assert.Error(t, err)
}

/*
TestOptional_Marshal round-trips set and null values.
*/
func TestOptional_Marshal(t *testing.T) {
	est := 1912
	p := patchPayload{
		Est: jsonopt.Optional[int]{Value: &est, Set: true},
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ref": null, "est": 1912}`, string(out))
}

func strPtr(s string) *string { return &s }
