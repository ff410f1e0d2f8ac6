// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides flexible policies for retrying failed
// attempts during a call plan execution, and for deciding how long to
// wait before retrying.
//
// The interface Policy defines a retry Policy. For the common case of
// a remote API that signals rate limits through retry_after hints, use
// New with a Config:
//
//	policy := retry.New(retry.Config{
//	    MaxDelay:          30 * time.Second,
//	    MaxAttempts:       5,
//	    RetryServerErrors: true,
//	})
//
// Alternatively a Policy instance can be assembled using NewPolicy by
// providing a decision-maker, Decider, and a wait time calculator,
// Waiter. Both Decider and Waiter have constructors for common use
// cases:
//
//	decider := retry.Times(3).
//	               And(retry.Before(5 * time.Second)).
//	               And(retry.ErrorCode(420).Or(retry.ServerErr).Or(retry.TransientErr))
//	waiter := retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, time.Now())
//	policy := retry.NewPolicy(decider, waiter)
//
// If the built-in functionality is insufficient, fully custom retry
// policies can be created via custom implementations of Decider,
// Waiter, or Policy.
package retry
