// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/mbarge/callx/request"
	"github.com/mbarge/callx/throttle"
)

const (
	// DefaultBackoffInitial is the first exponential backoff delay
	// scheduled after a server or transport error, used when Config
	// does not specify one.
	DefaultBackoffInitial = 5 * time.Second
	// DefaultBackoffMax caps the exponential backoff delay, used when
	// Config does not specify a cap.
	DefaultBackoffMax = time.Hour
)

// Config configures the throttling retry policy constructed by New.
// The zero value is valid: it honors any rate-limit signal, with no
// bound on the acceptable wait or on the number of resubmissions, and
// retries neither server errors nor transport errors.
type Config struct {
	// MaxDelay is the upper bound on an acceptable rate-limit wait.
	// If the effective wait demanded by a retry_after hint or by the
	// cohort's pending resume time exceeds MaxDelay, the failure is
	// not retried on the rate-limit path. Zero means no bound.
	MaxDelay time.Duration

	// MaxAttempts is the upper bound on the number of resubmissions
	// driven by failure responses. When the budget is exhausted, the
	// next failure is returned as final even if it would otherwise be
	// retryable. Transport-error retries are exempt from the budget.
	// Zero means no bound.
	MaxAttempts int

	// RetryServerErrors enables exponential backoff retries of failure
	// responses whose error code is at or above 500.
	RetryServerErrors bool

	// RetryTransportErrors enables exponential backoff retries of
	// transport-level errors. Cancellation is never retried regardless
	// of this setting.
	RetryTransportErrors bool

	// WaitKey maps a call plan to its rate-limit cohort. If nil,
	// throttle.MethodKey is used, so all calls to the same method
	// share one cohort.
	WaitKey throttle.KeyFunc

	// Throttle is the cohort map shared by calls going through this
	// policy. If nil, the policy creates a private map, so two
	// policies built from separate Configs never interfere. Supply an
	// explicit map to share rate-limit state between several policies
	// or callers.
	Throttle *throttle.Map

	// BackoffInitial is the first exponential backoff delay. If zero,
	// DefaultBackoffInitial is used.
	BackoffInitial time.Duration

	// BackoffMax caps the exponential backoff delay. If zero,
	// DefaultBackoffMax is used.
	BackoffMax time.Duration
}

// New constructs the throttling retry policy described by cfg.
//
// After each attempt the policy runs the following checks, in order,
// stopping at the first that applies:
//
// 1. A success response is never retried.
//
// 2. A transport error is retried with exponential backoff if
// RetryTransportErrors is set and the plan has not been cancelled.
//
// 3. If the failure carries a retry_after hint, the cohort's "resume
// not before" timestamp is advanced to now plus the hint. If the
// failure carries a hint or the cohort timestamp is pending, the
// effective wait is the time remaining until the cohort timestamp;
// when the effective wait is within MaxDelay and the resubmission
// budget is not exhausted, the failure is retried after the effective
// wait. A rate-limit retry resets the exponential backoff sequence.
//
// 4. A failure with error code at or above 500 is retried with
// exponential backoff if RetryServerErrors is set and the resubmission
// budget is not exhausted. The backoff delay starts at BackoffInitial
// and doubles on each consecutive backoff retry, up to BackoffMax.
//
// 5. Anything else is final.
//
// When both a qualifying rate-limit wait and a server error code are
// present on the same failure, the rate-limit path wins and the
// backoff sequence resets.
//
// The returned policy records the scheduled wait and its reason on the
// execution; its Wait method returns the recorded wait. It is safe for
// concurrent use by multiple goroutines, but must be consulted exactly
// once per attempt, as Decide advances the cohort map and the backoff
// sequence.
func New(cfg Config) Policy {
	if cfg.WaitKey == nil {
		cfg.WaitKey = throttle.MethodKey
	}
	if cfg.Throttle == nil {
		cfg.Throttle = throttle.NewMap()
	}
	if cfg.BackoffInitial <= 0 {
		cfg.BackoffInitial = DefaultBackoffInitial
	}
	if cfg.BackoffMax <= 0 {
		cfg.BackoffMax = DefaultBackoffMax
	}
	if cfg.BackoffMax < cfg.BackoffInitial {
		panic("callx/retry: BackoffMax must be at least BackoffInitial")
	}
	return &throttlePolicy{cfg: cfg}
}

type throttlePolicy struct {
	cfg Config
}

func (p *throttlePolicy) Decide(e *request.Execution) bool {
	e.Wait = 0
	e.Reason = request.NoWait

	if e.Err != nil {
		if !p.cfg.RetryTransportErrors {
			return false
		}
		if e.Plan.Context().Err() != nil {
			return false
		}
		p.backoff(e, request.TransportError)
		return true
	}

	r := e.Response
	if r == nil || r.OK {
		return false
	}

	key := p.cfg.WaitKey(e.Plan)
	now := time.Now()
	hint, hasHint := r.RetryAfter()
	if hasHint {
		p.cfg.Throttle.Set(key, now.Add(hint))
	}

	// The effective wait is read back from the cohort, not taken from
	// the hint, so a pending wait recorded by a sibling call is
	// honored even when this failure carried no hint of its own.
	wait := p.cfg.Throttle.Wait(key, now)
	if hasHint || wait > 0 {
		if p.cfg.MaxDelay == 0 || wait <= p.cfg.MaxDelay {
			if !p.budget(e) {
				return false
			}
			e.Wait = wait
			e.Reason = request.RateLimited
			e.Backoff = 0
			return true
		}
	}

	if r.ErrorCode >= 500 && p.cfg.RetryServerErrors {
		if !p.budget(e) {
			return false
		}
		p.backoff(e, request.ServerError)
		return true
	}

	return false
}

func (p *throttlePolicy) Wait(e *request.Execution) time.Duration {
	return e.Wait
}

func (p *throttlePolicy) budget(e *request.Execution) bool {
	return p.cfg.MaxAttempts == 0 || e.Resubmissions < p.cfg.MaxAttempts
}

func (p *throttlePolicy) backoff(e *request.Execution, reason request.WaitReason) {
	if e.Backoff == 0 {
		e.Backoff = p.cfg.BackoffInitial
	} else {
		e.Backoff *= 2
		if e.Backoff > p.cfg.BackoffMax {
			e.Backoff = p.cfg.BackoffMax
		}
	}
	e.Wait = e.Backoff
	e.Reason = reason
}
