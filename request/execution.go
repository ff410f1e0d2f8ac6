// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mbarge/callx/transient"
)

// An Execution represents the state of a single Plan execution.
//
// When a logical API call is requested, an Execution is created for
// it. The Execution is updated as the plan execution progresses (for
// example when a response becomes available, or when a retry is
// needed) and is ultimately returned as the return value of the plan
// execution.
//
// Timeout and retry policies and event handlers may set values on an
// Execution using its SetValue method and read them back using the
// Value method. However, apart from the fields documented as policy
// state (Wait, Reason, and Backoff), they should treat the structure's
// exported field values as immutable and leave them unmodified, as the
// execution state is vital to the correct functioning of the plan
// execution logic.
type Execution struct {
	// Plan specifies the call plan being executed. It is never nil.
	Plan *Plan

	// ID is a unique correlation identifier assigned to the execution
	// when it starts. It ties together diagnostic events emitted for
	// the same logical call.
	ID uuid.UUID

	// Start is the start time of the plan execution. It is assigned a
	// non-zero value when the plan execution starts, and this value
	// remains constant thereafter.
	Start time.Time

	// End is the end time of the plan execution. It contains the zero
	// value until the plan execution ends, when it is set to the
	// current time.
	End time.Time

	// Attempt is the zero-based number of the current call attempt
	// during the plan execution. It is set to zero on the initial
	// attempt, one on the first retry, and so on.
	//
	// When the execution has ended, Attempt contains the zero-based
	// number of the last attempt made during the execution.
	Attempt int

	// Resubmissions is the count of retries driven by a failure
	// response, as opposed to a transport error. Only resubmissions
	// consume the retry policy's attempt budget: a transport-error
	// retry obtained no response, so it is exempt.
	Resubmissions int

	// AttemptTimeouts is the count of the number of times a call
	// attempt timed out during the execution.
	//
	// Plan timeouts (when the plan's own context deadline is exceeded)
	// do not contribute to the attempt timeout counter, but if an
	// attempt timeout and a plan timeout coincide, the attempt timeout
	// counter will be incremented by one due to the attempt timeout.
	AttemptTimeouts int

	// Response specifies the response received in the most recent call
	// attempt, whether success or failure. It will be nil if the most
	// recent attempt ended in a transport error, or if a current
	// attempt is underway, or before the execution starts.
	Response *Response

	// Err indicates the transport error received while making the most
	// recent call attempt. It will be nil if the most recent attempt
	// produced a response, or if a current attempt is underway, or
	// before the execution starts.
	//
	// While an execution is in-flight, Err may fluctuate between nil
	// and various non-nil error values. Once the execution has ended,
	// Err will not change and has the same value as the error value
	// returned by the caller's executing method.
	Err error

	// Wait is the duration of the wait scheduled before the next call
	// attempt. It is policy state: the retry policy records it when
	// deciding to retry, and the plan execution logic clears it before
	// the next attempt. It is meaningful during the BeforeWait event.
	Wait time.Duration

	// Reason records why Wait was scheduled. Like Wait, it is policy
	// state, meaningful during the BeforeWait event.
	Reason WaitReason

	// Backoff is the current exponential backoff delay for server and
	// transport errors. It is policy state: the retry policy doubles
	// it on each consecutive backoff retry and resets it to zero on a
	// rate-limit retry.
	Backoff time.Duration

	// data contains arbitrary user data attached via SetValue.
	data context.Context
}

// ErrorCode returns the numeric error code of the failure response
// from the most recent call attempt in the execution. If there is no
// response, or the response is a success, 0 is returned.
func (e *Execution) ErrorCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.ErrorCode
}

// OK indicates whether the most recent call attempt in the execution
// produced a success response.
func (e *Execution) OK() bool {
	return e.Response != nil && e.Response.OK
}

// Duration returns the duration of the execution.
//
// If the execution has not yet started, the duration is zero. If the
// execution has ended, the duration returned is equal to End minus
// Start. Otherwise, it is equal to the current time minus Start. The
// return value is thus monotonically increasing over the life of the
// execution, and becomes static when the execution has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
//
// If the return value is false, the execution has not started yet. If
// the return value is true, then the execution has started, and Start
// is a non-zero time, indicating the execution start time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the execution has ended.
//
// If the return value is false, the execution is still in-flight. If
// the return value is true, then the execution is over, End is a
// non-zero time, and there will be no further changes to the
// execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value
// which indicates a timeout. The timeout may have been caused by a
// call attempt timeout, or by a plan timeout detected after the most
// recent call attempt.
//
// Note that Timeout may return false even if AttemptTimeouts > 0 (if
// the most recent attempt did not end in a timeout, or a current
// attempt is underway); and it may return true even if AttemptTimeouts
// is zero (if a plan timeout is detected after the end of the most
// recent call attempt).
func (e *Execution) Timeout() bool {
	cat := transient.Categorize(e.Err)
	return cat == transient.Timeout
}

// SetValue allows event handlers to store arbitrary data in the plan
// execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue, namely:
//
// • it may not be nil;
//
// • it must be comparable;
//
// • it should not be of type string or any other built-in type to
// avoid collisions between different event handlers putting data into
// the same execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}
