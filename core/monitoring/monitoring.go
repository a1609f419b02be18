// Package monitoring defines how unexpected errors are reported outside the
// process logs.
package monitoring

import "time"

// Monitor defines methods used for error reporting.
type Monitor interface {
	CaptureException(err error, tags map[string]string)
	// Recover reports a panic of the calling goroutine and re-panics. It
	// must be deferred directly.
	Recover()
	Flush(timeout time.Duration)
}

// NopMonitor reports nothing.
type NopMonitor struct{}

func (NopMonitor) CaptureException(error, map[string]string) {}
func (NopMonitor) Recover()                                  {}
func (NopMonitor) Flush(time.Duration)                       {}
