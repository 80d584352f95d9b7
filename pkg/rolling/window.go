// Package rolling implements the rolling-horizon driver:
// sliding windows over a global horizon, each solved independently, with
// the committed region of one window handed off as the starting state of
// the next.
package rolling

import (
	"time"

	"github.com/sverzijl/planning-latest-sub008/pkg/temporal"
)

// Window is one slice of the global horizon to build and solve.
// CommittedEnd marks the last date whose solved values are kept; dates
// after it (up to End) exist only to give the solver enough lookahead to
// make good decisions about the committed region and are discarded once
// solved, except on the final window, which commits its entire span.
type Window struct {
	Index        int
	Start        time.Time
	End          time.Time
	CommittedEnd time.Time
	IsLast       bool
}

// GenerateWindows slides a window of windowDays across horizon, overlapping
// consecutive windows by overlapDays. It stops as soon as a window reaches
// the horizon end rather than continuing to slide past it, which avoids
// over-creating windows at the end of the horizon.
func GenerateWindows(horizon temporal.Horizon, windowDays, overlapDays int) []Window {
	if len(horizon.Dates) == 0 || windowDays <= 0 {
		return nil
	}
	step := windowDays - overlapDays
	if step <= 0 {
		step = windowDays
	}

	start := horizon.Start()
	end := horizon.End()

	var windows []Window
	for cur, idx := start, 0; !cur.After(end); cur, idx = cur.AddDate(0, 0, step), idx+1 {
		winEnd := cur.AddDate(0, 0, windowDays-1)
		isLast := !winEnd.Before(end)
		if isLast {
			winEnd = end
		}

		committedEnd := cur.AddDate(0, 0, windowDays-overlapDays-1)
		if isLast || committedEnd.After(winEnd) || committedEnd.Before(cur) {
			committedEnd = winEnd
		}

		windows = append(windows, Window{
			Index: idx, Start: cur, End: winEnd, CommittedEnd: committedEnd, IsLast: isLast,
		})
		if isLast {
			break
		}
	}
	return windows
}
