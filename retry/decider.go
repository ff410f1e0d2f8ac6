// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/mbarge/callx/request"
	"github.com/mbarge/callx/transient"
)

// A Decider decides if a retry should be done.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the built-in constructors Times, ErrorCode, and Before, and the
// built-in deciders ServerErr and TransientErr; or implement your own
// Decider. Use DeciderFunc to convert an ordinary function into a
// Decider, and to compose deciders logically using DeciderFunc.And and
// DeciderFunc.Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements the Decider interface,
// and also provides the logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
//
// Simple DeciderFunc functions can be composed into complex decision
// trees using the logical composition functions DeciderFunc.And and
// DeciderFunc.Or. Because of this composition ability, it will often
// be convenient to work directly with DeciderFunc rather than with
// Decider.
type DeciderFunc func(e *request.Execution) bool

// ServerErr is a decider that indicates a retry if the current
// response is a failure whose error code is at or above 500.
//
// ServerErr only looks at the response, so it will always return false
// after a transport error. Compose it with other deciders, for example
// TransientErr, to get more complex functionality.
var ServerErr DeciderFunc = serverErr

// TransientErr is a decider that indicates a retry if the current
// transport error is transient according to transient.Categorize.
//
// TransientErr only looks at the error, so it will always return false
// if a response was received. Compose it with other deciders, for
// example an error code decider constructed with ErrorCode, to get
// more complex functionality.
var TransientErr DeciderFunc = transientErr

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current call plan execution state.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two retry deciders into a new decider which returns
// true if both sub-deciders return true, and false otherwise.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two retry deciders into a new decider which returns
// true if either of the two sub-deciders returns true, but false if
// they both return false.
//
// Short-circuit logic is used, so g will not be evaluated if f returns
// true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a retry decider which allows up to n retries. The
// returned decider returns true while the execution attempt index
// e.Attempt is less than n, and false otherwise.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a retry decider allowing retries until a certain
// amount of time has elapsed since the start of the logical call plan
// execution. The returned decider returns true while the execution
// duration is less than d, and false afterward.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// ErrorCode constructs a retry decider allowing retries based on the
// failure response's error code. If the most recent call attempt
// within the plan execution received a failure response, and the
// response error code is contained in the list cs, the decider returns
// true. Otherwise, it returns false.
func ErrorCode(cs ...int) DeciderFunc {
	cs2 := make([]int, len(cs))
	copy(cs2, cs)
	return func(e *request.Execution) bool {
		if e.Response == nil || e.Response.OK {
			return false
		}
		for _, c := range cs2 {
			if e.ErrorCode() == c {
				return true
			}
		}
		return false
	}
}

func serverErr(e *request.Execution) bool {
	return e.Response != nil && !e.Response.OK && e.ErrorCode() >= 500
}

func transientErr(e *request.Execution) bool {
	return transient.Categorize(e.Err) != transient.Not
}
