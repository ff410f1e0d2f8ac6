// Copyright 2025 The callx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package throttle

import (
	"sync"
	"time"

	"github.com/mbarge/callx/request"
)

// A KeyFunc maps a call plan to the cohort of calls which share a
// single rate-limit resume timestamp. All plans mapping to the same
// key honor each other's retry_after hints.
type KeyFunc func(p *request.Plan) string

// MethodKey is the default cohort key function. It keys the cohort by
// method name alone, so all calls to the same remote operation share
// one resume timestamp.
func MethodKey(p *request.Plan) string {
	return p.Method
}

// A Map records, per cohort, the earliest time at which calls in the
// cohort may next be submitted to the remote API. It is the one piece
// of state shared between concurrent logical calls: when one call
// receives a retry_after hint, sibling calls in the same cohort read
// the recorded resume time and hold back too.
//
// Entries are overwritten, never removed, so the map's size is bounded
// by the number of distinct cohort keys observed. A Map is safe for
// concurrent use by multiple goroutines.
//
// The zero value is not usable; create a Map with NewMap. Each retry
// policy that is not handed an explicit Map creates a private one, so
// independently configured callers do not interfere with each other.
type Map struct {
	mu     sync.Mutex
	resume map[string]time.Time
}

// NewMap returns an empty cohort map.
func NewMap() *Map {
	return &Map{resume: make(map[string]time.Time)}
}

// Set records t as the cohort's "resume not before" timestamp,
// superseding any earlier value for the cohort.
func (m *Map) Set(key string, t time.Time) {
	m.mu.Lock()
	m.resume[key] = t
	m.mu.Unlock()
}

// ResumeTime returns the cohort's recorded "resume not before"
// timestamp. The second return value reports whether a timestamp has
// ever been recorded for the cohort.
func (m *Map) ResumeTime(key string) (time.Time, bool) {
	m.mu.Lock()
	t, ok := m.resume[key]
	m.mu.Unlock()
	return t, ok
}

// Wait returns the effective wait for the cohort measured from now:
// the time remaining until the recorded resume timestamp, or zero if
// no timestamp is recorded or it has already passed.
func (m *Map) Wait(key string, now time.Time) time.Duration {
	t, ok := m.ResumeTime(key)
	if !ok {
		return 0
	}

	d := t.Sub(now)
	if d < 0 {
		return 0
	}

	return d
}
