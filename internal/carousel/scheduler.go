package carousel

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the callback
	// already ran or was already stopped.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	Schedule(delay time.Duration, fn func()) Timer
}

// TimerScheduler implements [Scheduler] with [time.AfterFunc].
//
// Callbacks run on their own goroutine.
type TimerScheduler struct{}

func (TimerScheduler) Schedule(delay time.Duration, fn func()) Timer {
	return time.AfterFunc(delay, fn)
}

// SchedulerFunc adapts a function to [Scheduler].
type SchedulerFunc func(delay time.Duration, fn func()) Timer

func (f SchedulerFunc) Schedule(delay time.Duration, fn func()) Timer {
	return f(delay, fn)
}
