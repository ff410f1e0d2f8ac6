// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaitReason_String(t *testing.T) {
	assert.Equal(t, "NoWait", NoWait.String())
	assert.Equal(t, "RateLimited", RateLimited.String())
	assert.Equal(t, "ServerError", ServerError.String())
	assert.Equal(t, "TransportError", TransportError.String())
	assert.Equal(t, "Unknown", WaitReason(99).String())
}
