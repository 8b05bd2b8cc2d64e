package loop

import (
	"runtime"
	"time"
)

// pace holds the iteration until the frame budget measured from start is
// spent. It sleeps through most of the wait and yields to the scheduler for
// the last spin window. A late frame is not caught up.
func (l *Loop) pace(start time.Time) {
	deadline := start.Add(l.budget)
	if time.Now().After(deadline) {
		l.overruns.Add(1)
		return
	}

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return
		}
		if remaining > l.spin {
			time.Sleep(remaining - l.spin)
			continue
		}
		runtime.Gosched()
	}
}
