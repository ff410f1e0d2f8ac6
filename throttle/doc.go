// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package throttle coordinates rate-limit backoff across concurrent
// logical calls.
//
// A remote API that rate-limits by method typically reports a
// retry_after hint to one unlucky call, while its siblings receive
// plain failures or nothing at all. Package throttle shares the hint:
// a Map records a "resume not before" timestamp per cohort of calls
// (by default, per method name), and every call in the cohort consults
// the timestamp before resubmitting.
package throttle
