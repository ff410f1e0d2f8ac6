// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package pacing spreads outgoing call attempts over time with a
// client-side rate limiter, complementing the reactive retry_after
// handling in package retry with proactive smoothing:
//
//	limiter := rate.NewLimiter(rate.Limit(25), 5)
//	caller := &callx.Caller{
//		Transport: pacing.NewTransport(transport, limiter),
//	}
package pacing
