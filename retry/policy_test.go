// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"syscall"
	"testing"
	"time"

	"github.com/mbarge/callx/request"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	t.Run("success is final", func(t *testing.T) {
		assert.False(t, DefaultPolicy.Decide(&request.Execution{
			Plan:     plan(t, "getMe"),
			Response: &request.Response{OK: true},
		}))
	})
	t.Run("rate limit honored without bound", func(t *testing.T) {
		e := &request.Execution{
			Plan:     plan(t, "default.rateLimit"),
			Response: failure(t, 429, 7200),
		}
		assert.True(t, DefaultPolicy.Decide(e))
		assert.Equal(t, request.RateLimited, e.Reason)
		assert.InDelta(t, float64(7200*time.Second), float64(DefaultPolicy.Wait(e)), float64(50*time.Millisecond))
	})
	t.Run("server errors are final", func(t *testing.T) {
		assert.False(t, DefaultPolicy.Decide(&request.Execution{
			Plan:     plan(t, "default.serverErr"),
			Response: failure(t, 502, -1),
		}))
	})
	t.Run("transport errors are final", func(t *testing.T) {
		assert.False(t, DefaultPolicy.Decide(&request.Execution{
			Plan: plan(t, "default.transportErr"),
			Err:  syscall.ECONNRESET,
		}))
	})
}

func TestNever(t *testing.T) {
	assert.False(t, Never.Decide(&request.Execution{}))
	assert.False(t, Never.Decide(&request.Execution{
		Plan:     plan(t, "never"),
		Response: failure(t, 429, 1),
	}))
	assert.False(t, Never.Decide(&request.Execution{Attempt: 3, Err: syscall.ETIMEDOUT}))
}

func TestNewPolicy(t *testing.T) {
	p := &testPolicy{}
	t.Run("Bad Args", func(t *testing.T) {
		assert.PanicsWithValue(t, "callx/retry: nil decider", func() { NewPolicy(nil, p) })
		assert.PanicsWithValue(t, "callx/retry: nil waiter", func() { NewPolicy(p, nil) })
	})
	t.Run("Normal", func(t *testing.T) {
		P := NewPolicy(p, p)
		assert.True(t, P.Decide(&request.Execution{}))
		assert.Equal(t, 1, p.d)
		assert.Equal(t, time.Second, P.Wait(&request.Execution{}))
		assert.Equal(t, 1, p.w)
	})
}

type testPolicy struct {
	d int
	w int
}

func (p *testPolicy) Decide(_ *request.Execution) bool {
	p.d++
	return true
}

func (p *testPolicy) Wait(_ *request.Execution) time.Duration {
	p.w++
	return time.Second
}
