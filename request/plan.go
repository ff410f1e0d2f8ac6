// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	nilCtxMsg = "callx/request: nil context"
)

// A Plan contains a logical API call plan for execution by a caller.
//
// The logical call described by a Plan will typically result in a
// single lower-level transport attempt being made, but may result in
// multiple attempts, for example if a failed attempt needs to be
// retried.
//
// A Plan is an opaque (method, payload) pair. The method names the
// remote operation to invoke and the payload is its pre-buffered,
// serialized argument block. Both must be treated as immutable once
// the plan is executing: the plan execution logic resubmits the exact
// same pair on every retry.
//
// Like the http.Request structure from net/http, a Plan has a context
// which controls the overall plan execution and can be used to cancel
// the inflight execution of a Plan at any time, including during a
// retry wait.
type Plan struct {
	// Method specifies the name of the remote operation to invoke,
	// for example "sendMessage". It may not be empty.
	Method string

	// Payload is the pre-buffered, serialized argument block to send
	// with the call. A nil or empty payload indicates the operation
	// takes no arguments.
	Payload []byte

	// ctx allows the entire Plan execution to be cancelled. It should
	// only be modified by copying the whole Plan using WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
//
// Parameter payload may be nil (no payload), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If payload is an io.Reader, it
// is read to the end and buffered into a []byte. If payload is an
// io.ReadCloser, it is closed after buffering.
func NewPlan(method string, payload interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, payload)
}

// NewPlanWithContext returns a new Plan given a method name and an
// optional payload.
//
// Parameter payload may be nil (no payload), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If payload is an io.Reader, it
// is read to the end and buffered into a []byte. If payload is an
// io.ReadCloser, it is closed after buffering.
func NewPlanWithContext(ctx context.Context, method string, payload interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		return nil, errors.New("callx/request: empty method")
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("callx/request: invalid method %q", method)
	}
	b, err := PayloadBytes(payload)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:     ctx,
		Method:  method,
		Payload: b,
	}, nil
}

// Context returns the call plan's context. The context controls
// cancellation of the overall call plan. To change the context, use
// WithContext.
//
// The returned context is always non-nil; it defaults to the
// background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
//
// The context controls the entire lifetime of a logical call plan and
// its execution, including: making individual call attempts, running
// event handlers, and waiting for a retry wait period to expire.
//
// To create a new call plan with a context, use NewPlanWithContext.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// validMethod rejects method names containing whitespace or control
// characters. Remote APIs name their operations with printable tokens,
// so anything else indicates a programming error in the caller.
func validMethod(method string) bool {
	return strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}
