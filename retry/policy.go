// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/mbarge/callx/request"
)

// A Policy controls if and how retries are done in a call plan
// execution. In particular, after every attempt during the plan
// execution, a Policy decides whether a retry should be done and, if
// so, how long the wait period should be before retrying the attempt.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines. The caller consults the policy exactly once per
// attempt: first Decide, then, only if Decide returned true, Wait.
// Policies may therefore keep per-execution state on the Execution
// itself (the Wait, Reason, and Backoff fields exist for this).
//
// A Policy is composed of the Decider and Waiter interfaces. While you
// can implement Policy yourself, it may be more convenient to use the
// throttling policy returned by New, or to construct your policy using
// the NewPolicy constructor from existing Decider and Waiter
// implementations.
type Policy interface {
	Decider
	Waiter
}

// DefaultPolicy is the default retry policy. It is the throttling
// policy produced by New with a zero Config: any rate-limit signal is
// honored, with no bound on the acceptable wait or on the number of
// resubmissions, and server and transport errors are not retried.
var DefaultPolicy Policy = New(Config{})

// Never is a policy that never retries. It is useful if you want to
// use the other features of callx.Caller but do not want retries.
var Never Policy = policy{Times(0), NewFixedWaiter(0)}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a retry Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	if d == nil {
		panic("callx/retry: nil decider")
	}
	if w == nil {
		panic("callx/retry: nil waiter")
	}
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
