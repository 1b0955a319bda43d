package search

import "time"

// Timer is a scheduled task that can be cancelled. Stop reports whether the
// call prevented the task from running.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. f may run on any goroutine, including
// synchronously inside AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// ClockScheduler is backed by time.AfterFunc.
func ClockScheduler() Scheduler {
	return clockScheduler{}
}
