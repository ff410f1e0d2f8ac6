// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package callx

import (
	"context"

	"github.com/mbarge/callx/request"
)

// A Transport implements the mechanics of sending one request to a
// remote API and obtaining one response.
//
// Send submits the named method with the given serialized payload and
// returns either a Response (success or structured failure) or a
// transport error. A transport error means no well-formed answer could
// be obtained at all, for example because of a network connectivity
// problem. Send must honor cancellation and deadlines on ctx.
//
// Implementations of Transport must be safe for concurrent use by
// multiple goroutines, and must not retain or modify payload.
type Transport interface {
	Send(ctx context.Context, method string, payload []byte) (*request.Response, error)
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as transports. If f is a function with the appropriate
// signature, TransportFunc(f) is a Transport that calls f.
type TransportFunc func(ctx context.Context, method string, payload []byte) (*request.Response, error)

// Send calls f(ctx, method, payload).
func (f TransportFunc) Send(ctx context.Context, method string, payload []byte) (*request.Response, error) {
	return f(ctx, method, payload)
}

// Invoker is the interface that wraps the basic Call method.
//
// Call executes a call plan and returns the final execution state (and
// error, if any). Caller implements the Invoker interface, and any
// other Invoker implementation must behave substantially the same as
// Caller.Call.
type Invoker interface {
	Call(p *request.Plan) (*request.Execution, error)
}

// Invoke uses the specified Invoker to invoke the given method with
// the given payload, using the same policies as i.Call.
//
// The payload parameter may be nil for no payload, or may be any of
// the types supported by request.NewPlanWithContext and
// request.PayloadBytes, namely: string; []byte; io.Reader; and
// io.ReadCloser.
func Invoke(i Invoker, ctx context.Context, method string, payload interface{}) (*request.Execution, error) {
	p, err := request.NewPlanWithContext(ctx, method, payload)
	if err != nil {
		return nil, err
	}
	return i.Call(p)
}
