// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package callx provides a robust retrying caller for method/payload
style APIs, with rate-limit aware retry support within a simple and
familiar interface.

Create a Caller around your transport to begin making calls.

	caller := &callx.Caller{Transport: transport}
	ex, err := caller.Invoke(ctx, "sendMessage", payload)
	...
	ex, err := caller.Invoke(ctx, "getUpdates", nil)

The Transport is anything that can send one (method, payload) request
and produce one response or transport error:

	type Transport interface {
		Send(ctx context.Context, method string, payload []byte) (*request.Response, error)
	}

For control over the caller's retry decisions and timing, configure a
retry policy using package retry. The throttling policy honors the
remote API's retry_after hints, shares the resulting backoff between
concurrent calls to the same method, and optionally retries server and
transport errors with exponential backoff:

	caller := &callx.Caller{
		Transport: transport,
		RetryPolicy: retry.New(retry.Config{
			MaxDelay:             30 * time.Second,
			MaxAttempts:          5,
			RetryServerErrors:    true,
			RetryTransportErrors: true,
		}),
	}

For control over the caller's individual attempt timeouts, set a
custom timeout policy using package timeout:

	caller := &callx.Caller{
		Transport:     transport,
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}

To hook into the fine-grained details of the caller's execution logic,
install a handler into the appropriate handler chain:

	handlers := &callx.HandlerGroup{}
	handlers.PushBack(callx.BeforeWait, callx.HandlerFunc(
		func(_ callx.Event, e *request.Execution) {
			log.Printf("waiting %s before retrying %s (%s)", e.Wait, e.Plan.Method, e.Reason)
		}))
	caller := &callx.Caller{
		Transport: transport,
		Handlers:  handlers,
	}

Subpackage diag provides a ready-made handler that emits structured
diagnostic events through a zap logger, and subpackage pacing provides
a Transport decorator that paces outgoing attempts through a client
side rate limiter.

Package callx provides the Invoker interface implemented by Caller,
and the utility function Invoke for working with any Invoker.
*/
package callx
