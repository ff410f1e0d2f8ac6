// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Unmarshal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var r Response
		err := json.Unmarshal([]byte(`{"ok":true,"result":{"id":42}}`), &r)
		require.NoError(t, err)
		assert.True(t, r.OK)
		assert.JSONEq(t, `{"id":42}`, string(r.Result))
		assert.Zero(t, r.ErrorCode)
	})
	t.Run("failure", func(t *testing.T) {
		var r Response
		err := json.Unmarshal([]byte(`{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 13","parameters":{"retry_after":13}}`), &r)
		require.NoError(t, err)
		assert.False(t, r.OK)
		assert.Equal(t, 429, r.ErrorCode)
		assert.Equal(t, "Too Many Requests: retry after 13", r.Description)
		assert.JSONEq(t, `{"retry_after":13}`, string(r.Parameters))
	})
}

func TestResponse_RetryAfter(t *testing.T) {
	testCases := []struct {
		name       string
		parameters string
		expectWait time.Duration
		expectOK   bool
	}{
		{"integer seconds", `{"retry_after":13}`, 13 * time.Second, true},
		{"fractional seconds", `{"retry_after":0.5}`, 500 * time.Millisecond, true},
		{"zero", `{"retry_after":0}`, 0, true},
		{"negative", `{"retry_after":-1}`, 0, false},
		{"string typed", `{"retry_after":"13"}`, 0, false},
		{"boolean typed", `{"retry_after":true}`, 0, false},
		{"null", `{"retry_after":null}`, 0, false},
		{"missing field", `{"migrate_to_chat_id":77}`, 0, false},
		{"empty object", `{}`, 0, false},
		{"alongside other fields", `{"migrate_to_chat_id":77,"retry_after":2}`, 2 * time.Second, true},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := &Response{ErrorCode: 429, Parameters: json.RawMessage(testCase.parameters)}
			wait, ok := r.RetryAfter()
			assert.Equal(t, testCase.expectOK, ok)
			assert.Equal(t, testCase.expectWait, wait)
		})
	}
	t.Run("nil receiver", func(t *testing.T) {
		var r *Response
		wait, ok := r.RetryAfter()
		assert.False(t, ok)
		assert.Zero(t, wait)
	})
	t.Run("no parameters", func(t *testing.T) {
		wait, ok := (&Response{ErrorCode: 420}).RetryAfter()
		assert.False(t, ok)
		assert.Zero(t, wait)
	})
}
