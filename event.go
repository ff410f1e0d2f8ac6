// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package callx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Caller to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// plan execution starts.
	//
	// When Caller fires BeforeExecutionStart, the execution is non-nil
	// but the only fields that have been set are the plan and the
	// execution ID.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual call attempt during the plan execution.
	//
	// When Caller fires BeforeAttempt, the execution's attempt number
	// identifies the attempt that WILL BE made after all BeforeAttempt
	// handlers have finished. The plan's method and payload must be
	// treated as immutable: every attempt resubmits the identical
	// pair.
	BeforeAttempt
	// AfterAttemptTimeout identifies the event that occurs after a
	// call attempt failed because of a timeout error.
	//
	// When Caller fires AfterAttemptTimeout, the execution's error
	// field is set to the timeout error, and its attempt timeout
	// counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after a call
	// attempt is concluded, regardless of whether it concluded
	// successfully or not.
	//
	// When Caller fires AfterAttempt, either the execution's response
	// field or its error field is set to a non-nil value, but never
	// both. Note that AfterAttempt always fires on every call attempt,
	// and that it runs before the retry policy is consulted for a
	// retry decision.
	AfterAttempt
	// BeforeWait identifies the event that occurs after the retry
	// policy has scheduled a retry, immediately before the caller
	// sleeps out the retry wait period.
	//
	// When Caller fires BeforeWait, the execution's Wait field is set
	// to the scheduled wait duration and its Reason field records why
	// the wait was scheduled (rate limit, server error, or transport
	// error). These events are informational only: handlers must not
	// attempt to affect control flow.
	BeforeWait
	// AfterCancel identifies the event that occurs when cancellation
	// or expiry of the plan's context terminates the plan execution,
	// whether detected after a call attempt or during a retry wait.
	//
	// When Caller fires AfterCancel, the execution's error field is
	// set to a non-nil value identifying the cancellation.
	AfterCancel
	// AfterExecutionEnd identifies the event that occurs after the
	// plan execution ends.
	//
	// When Caller fires AfterExecutionEnd, the execution is in the
	// same state it was in after the final call attempt EXCEPT that
	// the end time is set to the time the execution ended.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"BeforeWait",
	"AfterCancel",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// call plan execution by Caller, in the order in which they would
// occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		AfterAttemptTimeout,
		AfterAttempt,
		BeforeWait,
		AfterCancel,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
