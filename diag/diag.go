// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package diag

import (
	"go.uber.org/zap"

	"github.com/mbarge/callx"
	"github.com/mbarge/callx/request"
)

// NewHandler returns an event handler that emits structured diagnostic
// log records through the given zap logger. The handler is
// informational only: it never affects control flow.
//
// The handler logs a record before every retry sleep (method, wait
// duration, reason, attempt number, and execution ID), a record when
// cancellation terminates a call, and a record when an execution ends.
// Install it with Register, or push it onto individual chains of a
// callx.HandlerGroup.
func NewHandler(logger *zap.Logger) callx.Handler {
	if logger == nil {
		panic("callx/diag: nil logger")
	}
	return &handler{logger: logger}
}

// Register installs a diagnostic handler built on logger into the
// handler group, on every chain the handler reports from.
func Register(g *callx.HandlerGroup, logger *zap.Logger) {
	h := NewHandler(logger)
	g.PushBack(callx.BeforeWait, h)
	g.PushBack(callx.AfterCancel, h)
	g.PushBack(callx.AfterExecutionEnd, h)
}

type handler struct {
	logger *zap.Logger
}

func (h *handler) Handle(evt callx.Event, e *request.Execution) {
	switch evt {
	case callx.BeforeWait:
		h.logger.Info("waiting before retry",
			zap.String("method", e.Plan.Method),
			zap.String("execution", e.ID.String()),
			zap.Int("attempt", e.Attempt),
			zap.Duration("wait", e.Wait),
			zap.Stringer("reason", e.Reason),
		)
	case callx.AfterCancel:
		h.logger.Warn("call cancelled",
			zap.String("method", e.Plan.Method),
			zap.String("execution", e.ID.String()),
			zap.Int("attempt", e.Attempt),
			zap.Error(e.Err),
		)
	case callx.AfterExecutionEnd:
		h.logger.Debug("call finished",
			zap.String("method", e.Plan.Method),
			zap.String("execution", e.ID.String()),
			zap.Int("attempts", e.Attempt+1),
			zap.Int("resubmissions", e.Resubmissions),
			zap.Duration("duration", e.Duration()),
			zap.Bool("ok", e.OK()),
			zap.Int("error_code", e.ErrorCode()),
			zap.Error(e.Err),
		)
	}
}
