// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"time"

	"github.com/tidwall/gjson"
)

// A Response is the structured outcome of a single transport attempt.
//
// A response is either a success (OK is true) carrying opaque result
// data, or a failure (OK is false) carrying a numeric error code and,
// optionally, a structured parameters block. A failure response is a
// normal, non-exceptional value: the transport obtained a well-formed
// answer from the remote API, the answer just happens to be negative.
// Contrast this with a transport error, where no response could be
// obtained at all.
//
// Response field names and JSON tags follow the envelope format used
// by common method/payload style APIs, so a Response can usually be
// unmarshalled directly from the remote API's reply body.
type Response struct {
	// OK indicates whether the call succeeded.
	OK bool `json:"ok"`

	// Result contains the opaque result data of a successful call. It
	// is nil on a failure response.
	Result json.RawMessage `json:"result,omitempty"`

	// ErrorCode contains the numeric error code of a failure response.
	// It is zero on a success response.
	ErrorCode int `json:"error_code,omitempty"`

	// Description optionally contains a human-readable explanation of
	// a failure response.
	Description string `json:"description,omitempty"`

	// Parameters optionally contains a structured block of additional
	// failure information. Its schema is defined by the remote API;
	// the only field this library interprets is retry_after.
	Parameters json.RawMessage `json:"parameters,omitempty"`
}

// RetryAfter extracts the retry_after hint, if any, from the failure
// response's parameters block. The hint is the number of seconds,
// sub-second precision permitted, the remote API asks the caller to
// wait before resubmitting.
//
// The second return value reports whether a usable hint was present.
// A missing parameters block, a missing or non-numeric retry_after
// field, and a negative value all report false.
func (r *Response) RetryAfter() (time.Duration, bool) {
	if r == nil || len(r.Parameters) == 0 {
		return 0, false
	}

	v := gjson.GetBytes(r.Parameters, "retry_after")
	if v.Type != gjson.Number {
		return 0, false
	}

	seconds := v.Float()
	if seconds < 0 {
		return 0, false
	}

	return time.Duration(seconds * float64(time.Second)), true
}
