// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

// A WaitReason records why a retry policy scheduled a wait before the
// next call attempt. It is set on the Execution alongside the wait
// duration, so event handlers observing a wait can tell a rate-limit
// sleep from a backoff sleep.
type WaitReason int

const (
	// NoWait indicates no wait is scheduled.
	NoWait WaitReason = iota
	// RateLimited indicates the wait honors a rate-limit signal: a
	// retry_after hint on the current failure, or a pending cohort
	// resume time recorded by a sibling call.
	RateLimited
	// ServerError indicates the wait is an exponential backoff delay
	// scheduled after a server-side failure (error code >= 500).
	ServerError
	// TransportError indicates the wait is an exponential backoff
	// delay scheduled after a transport-level error.
	TransportError
)

var waitReasonNames = []string{
	"NoWait",
	"RateLimited",
	"ServerError",
	"TransportError",
}

// String returns the name of the wait reason.
func (r WaitReason) String() string {
	if int(r) < len(waitReasonNames) {
		return waitReasonNames[r]
	}
	return "Unknown"
}
