// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package callx

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mbarge/callx/request"
	"github.com/mbarge/callx/retry"
	"github.com/mbarge/callx/timeout"
)

var emptyHandlers = HandlerGroup{}

// A Caller is a retrying caller for method/payload style APIs. It
// wraps a Transport, which sends one request and produces one response
// or transport error, in a call of identical shape that transparently
// retries rate-limited and transiently failing attempts.
//
// The Transport field is required. All other fields are optional: the
// default retry policy is retry.DefaultPolicy, the default timeout
// policy is timeout.DefaultPolicy, and an empty handler group means no
// event handlers/plug-ins are run.
//
// A Caller holds no per-call state of its own, so Caller instances may
// be reused freely. A Caller is safe for concurrent use by multiple
// goroutines; concurrent logical calls each run their own retry loop,
// and the only state shared between them is the retry policy's cohort
// map.
//
// A Caller is higher-level than a Transport. The Transport is
// responsible for all details of sending a request and receiving the
// response, including serialization and the wire protocol, while
// Caller builds on top of the Transport's feature set. On top of the
// call features provided by the Transport, Caller adds the following:
//
// • Caller retries failed call attempts using a customizable retry
// policy, honoring rate-limit hints reported by the remote API and
// coordinating backoff between concurrent calls in the same cohort;
//
// • Caller sets individual attempt timeouts using a customizable
// timeout policy;
//
// • Caller invokes user-provided handler functions at designated
// plug-in points within the attempt/retry loop, allowing new features
// to be mixed in from outside libraries; and
//
// • Caller implements the callx.Invoker interface.
type Caller struct {
	// Transport specifies the mechanics of sending requests and
	// receiving responses. It may not be nil.
	Transport Transport
	// RetryPolicy decides when to retry failed attempts and how long
	// to wait after a failed attempt before retrying.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy specifies how to set timeouts on individual call
	// attempts.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during execution of a call plan.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// Call executes a call plan and returns the results, following retry
// and timeout policy set on Caller.
//
// The result returned is the result after the final call attempt made
// during the plan execution, as determined by the retry policy.
//
// A failure response is a normal value, not an error: when the retry
// budget or delay threshold is exhausted, the most recent failure
// response is returned in the Execution with a nil error. An error is
// returned only if the final attempt ended in a transport error which
// the retry policy declined to retry (the error is propagated
// unmodified), or if the plan's context was cancelled or expired (the
// context's error is returned, and any pending retry wait is
// abandoned).
//
// The returned Execution is never nil. If the returned error is nil,
// the Execution contains a non-nil Response, which is either a success
// or the final failure.
func (c *Caller) Call(p *request.Plan) (*request.Execution, error) {
	e := request.Execution{
		Plan: p,
		ID:   uuid.New(),
	}

	transport := c.transport()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		sendAndReceive(p, &e, transport, handlers, timeoutPolicy)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)
		if planCtxErr := p.Context().Err(); planCtxErr != nil {
			if e.Err == nil {
				e.Err = planCtxErr
			}
			handlers.run(AfterCancel, &e)
			break
		}
		if retryPolicy.Decide(&e) {
			e.Wait = retryPolicy.Wait(&e)
			handlers.run(BeforeWait, &e)
			timer := time.NewTimer(e.Wait)
			select {
			case <-timer.C:
			case <-p.Context().Done():
				timer.Stop()
				e.Err = p.Context().Err()
				handlers.run(AfterCancel, &e)
				break RetryLoop
			}
			if e.Response != nil {
				e.Resubmissions++
			}
			e.Wait = 0
			e.Reason = request.NoWait
			e.Attempt++
		} else {
			break
		}
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func sendAndReceive(p *request.Plan, e *request.Execution, transport Transport, handlers *HandlerGroup, timeoutPolicy timeout.Policy) {
	// The timeout policy is consulted before the previous attempt's
	// outcome is cleared, so adaptive policies can see whether that
	// attempt timed out.
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Response = nil
	e.Err = nil
	handlers.run(BeforeAttempt, e)
	e.Response, e.Err = transport.Send(ctx, p.Method, p.Payload)
}

// Invoke creates a call plan for the given method and payload,
// executes the plan, and returns the results, using the same policies
// followed by Call.
//
// The payload parameter may be nil for no payload, or may be any of
// the types supported by request.NewPlanWithContext and
// request.PayloadBytes, namely: string; []byte; io.Reader; and
// io.ReadCloser.
//
// To attach a context once and resubmit the same plan several times,
// use request.NewPlanWithContext and Caller.Call.
func (c *Caller) Invoke(ctx context.Context, method string, payload interface{}) (*request.Execution, error) {
	return Invoke(c, ctx, method, payload)
}

func (c *Caller) transport() Transport {
	if c.Transport == nil {
		panic("callx: nil transport")
	}

	return c.Transport
}
