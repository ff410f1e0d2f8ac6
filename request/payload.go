// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"errors"
	"io"
)

const badPayloadTypeMsg = "callx/request: invalid type (for payload use nil, " +
	"string, []byte, io.Reader or io.ReadCloser)"

// PayloadBytes converts a generic payload parameter to a byte slice
// for use as a call plan payload.
//
// The payload parameter may be nil, or it may be a string, []byte,
// io.Reader, or io.ReadCloser. The conversion logic is:
//
// • If payload is nil, a nil byte slice and no error is returned.
//
// • If payload is a []byte, payload itself and no error is returned.
//
// • If payload is a string, the built-in conversion from string to
// byte slice, and no error, is returned.
//
// • If payload is an io.Reader or io.ReadCloser, the result of reading
// the whole contents of the reader (and closing it if it implements
// Closer) is returned. If reading from the reader (and closing it if
// applicable) causes an error, the return value is a nil byte slice
// and the error. Otherwise, the result is the entire contents read
// from the reader and no error.
//
// • If payload is any other type than those listed above, a nil byte
// slice and an error is returned.
func PayloadBytes(payload interface{}) ([]byte, error) {
	switch x := payload.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		err = x.Close()
		if err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return PayloadBytes(io.NopCloser(x))
	default:
		return nil, errors.New(badPayloadTypeMsg)
	}
}

// JSONPayload serializes v to JSON for use as a call plan payload.
// It is a convenience for the common case of APIs whose methods take
// JSON argument blocks.
func JSONPayload(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
