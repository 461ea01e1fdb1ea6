// Package input turns raw pointer gestures into directional actions.
package input

import "github.com/vovakirdan/tui-dodge/internal/core"

// SwipeDetector recognises horizontal swipes from a press/release pair.
// A release more than Threshold columns away from the press yields a
// direction; shorter drags are ignored.
type SwipeDetector struct {
	Threshold int

	startX int
	active bool
}

// NewSwipeDetector creates a detector with the given threshold in columns.
func NewSwipeDetector(threshold int) *SwipeDetector {
	return &SwipeDetector{Threshold: threshold}
}

// Begin records where a drag started.
func (d *SwipeDetector) Begin(x int) {
	d.startX = x
	d.active = true
}

// End finishes a drag at x and reports the swipe direction, if any.
func (d *SwipeDetector) End(x int) (core.Action, bool) {
	if !d.active {
		return core.ActionNone, false
	}
	d.active = false

	switch {
	case x < d.startX-d.Threshold:
		return core.ActionLeft, true
	case x > d.startX+d.Threshold:
		return core.ActionRight, true
	default:
		return core.ActionNone, false
	}
}

// Cancel drops a drag in progress.
func (d *SwipeDetector) Cancel() {
	d.active = false
}

// Active reports whether a drag is in progress.
func (d *SwipeDetector) Active() bool {
	return d.active
}
