package application

import "time"

// Clock lets the pipeline time outbound calls deterministically in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
