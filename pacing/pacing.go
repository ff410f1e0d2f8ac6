// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package pacing

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/mbarge/callx"
	"github.com/mbarge/callx/request"
)

// A Transport paces requests through a client-side rate limiter before
// delegating them to the next transport.
//
// Pacing happens per attempt, so retries are paced too. If the rate
// limiter cannot grant a slot before the attempt's context is
// cancelled or its deadline passes, Send returns the limiter's error
// as a transport error without invoking the next transport.
//
// A pacing Transport is safe for concurrent use by multiple goroutines
// and may be shared between several callers to enforce one global
// request rate.
type Transport struct {
	next    callx.Transport
	limiter *rate.Limiter
}

// NewTransport decorates next with the given rate limiter.
func NewTransport(next callx.Transport, limiter *rate.Limiter) *Transport {
	if next == nil {
		panic("callx/pacing: nil transport")
	}
	if limiter == nil {
		panic("callx/pacing: nil limiter")
	}
	return &Transport{next: next, limiter: limiter}
}

// Send waits for the rate limiter to grant a slot, then delegates to
// the next transport.
func (t *Transport) Send(ctx context.Context, method string, payload []byte) (*request.Response, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return t.next.Send(ctx, method, payload)
}
