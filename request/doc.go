// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (describes a logical API
call), Response (the structured result of an attempt), and Execution
(describes a Plan execution). These types are fundamental to making
reliable API calls.

The first core type is Plan, which represents a logical API call.

A Plan describes how to make a logical call, potentially involving
repeated transport attempts if retry is necessary after a failure. It
is nothing more than an opaque (method, payload) pair plus a context:
the same pair can be resubmitted as often as the retry policy demands,
so the payload must be pre-buffered and immutable.

Create a plan to make a reliable API call:

	p, err := request.NewPlan("sendMessage", payload)
	...
	e, err := caller.Call(p)
	...

A plan may be assigned a context to allow the plan execution to be
cancelled, including during any retry wait:

	p, err := request.NewPlanWithContext(ctx, "sendMessage", payload)
	...

If a deadline is set on the plan context, it is separate from the
deadlines set on individual call attempts within the plan execution,
which are dictated by the caller's timeout.Policy. The effect is that
an individual call attempt may fail due either to an attempt timeout or
a plan timeout. The former is potentially retryable, the latter is not.

The second core type is Response, the structured outcome of one
transport attempt: either a success carrying opaque result data, or a
failure carrying a numeric error code and an optional parameters block
which may include a retry_after hint.

The third core type is Execution, which represents the state of the
execution of a call plan. Execution is both the output type of
callx.Caller's plan executing methods, and the input type for callbacks
invoked during plan execution: timeout policies, retry policies, and
event handlers. You will typically not allocate Execution instances
yourself, but will instead work with the ones handed out by the
caller's plan execution logic.
*/
package request
