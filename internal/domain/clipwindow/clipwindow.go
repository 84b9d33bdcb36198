// Package clipwindow selects the sub-interval of a source video to extract.
package clipwindow

import "time"

// Window is the [Start, End) interval of the source selected for extraction.
type Window struct {
	Start time.Duration
	End   time.Duration
}

// Centered returns a window of the desired length centered in a source of
// the given total length. When desired >= total the start is 0 and End may
// exceed total; callers clamp with Clamp before cutting so the cut never
// reads past the end of the source.
func Centered(total, desired time.Duration) Window {
	start := (total - desired) / 2
	if start < 0 {
		start = 0
	}
	return Window{Start: start, End: start + desired}
}

// Clamp bounds the window to the source length.
func (w Window) Clamp(total time.Duration) Window {
	if w.End > total {
		w.End = total
	}
	if w.Start > w.End {
		w.Start = w.End
	}
	return w
}

// Duration returns the window length.
func (w Window) Duration() time.Duration { return w.End - w.Start }
