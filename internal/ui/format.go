// internal/ui/format.go
package ui

import (
	"fmt"

	"bullseye-blitz/internal/utils"
)

// FormatDuration renders seconds as "MM:D" where D is the tenths digit.
// Whole seconds are not shown.
func FormatDuration(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	millis := int(seconds*1000) % 1000
	tenths := millis / 100
	mins := int(seconds) / 60
	return fmt.Sprintf("%02d:%d", mins, tenths)
}

// HitRate is hits per second rounded to one decimal, or 0 before any time has passed.
func HitRate(hits int, seconds float64) float64 {
	if seconds <= 0 {
		return 0
	}
	return utils.Round1(float64(hits) / seconds)
}

// Accuracy is the percentage of clicks that hit, rounded to one decimal.
// With no clicks it is 0.
func Accuracy(hits, clicks int) float64 {
	if clicks == 0 {
		return 0
	}
	return utils.Round1(float64(hits) / float64(clicks) * 100)
}
