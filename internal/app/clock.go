// internal/app/clock.go
package app

import "time"

// Clock supplies the current time to the game loop.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
