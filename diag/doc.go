// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package diag emits structured diagnostic events from a call plan
// execution through a zap logger.
//
// The retrying caller itself is log-free; observability is mixed in
// through its event handler plug-in points. Package diag packages the
// common case:
//
//	logger, _ := zap.NewProduction()
//	handlers := &callx.HandlerGroup{}
//	diag.Register(handlers, logger)
//	caller := &callx.Caller{Transport: transport, Handlers: handlers}
package diag
