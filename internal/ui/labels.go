// internal/ui/labels.go
package ui

import (
	"fmt"
	"strconv"

	"bullseye-blitz/internal/app"
	"bullseye-blitz/internal/config"
)

// Label is a line of text and where its top-left corner goes.
type Label struct {
	Text string
	X, Y int
}

// MeasureFunc returns the advance width of s in pixels.
type MeasureFunc func(s string) int

func timeLabel(s app.Stats) string  { return "Time: " + FormatDuration(s.Elapsed) }
func speedLabel(s app.Stats) string { return fmt.Sprintf("Speed: %.1f t/s", HitRate(s.Hits, s.Elapsed)) }
func hitsLabel(s app.Stats) string  { return "Hits: " + strconv.Itoa(s.Hits) }

func accuracyLabel(s app.Stats) string {
	if s.Clicks == 0 {
		return "Accuracy: 0%"
	}
	return fmt.Sprintf("Accuracy: %.1f%%", Accuracy(s.Hits, s.Clicks))
}

// HeaderLabels lays out time, speed, hits and lives across the header bar.
func HeaderLabels(cfg *config.Config, s app.Stats) []Label {
	texts := [4]string{
		timeLabel(s),
		speedLabel(s),
		hitsLabel(s),
		"Lives: " + strconv.Itoa(s.LivesLeft()),
	}
	labels := make([]Label, len(texts))
	for i, t := range texts {
		labels[i] = Label{Text: t, X: cfg.HUD.LabelOffsets[i], Y: cfg.HUD.LabelY}
	}
	return labels
}

// EndScreenLabels lays out the final stats, each centred horizontally.
func EndScreenLabels(cfg *config.Config, s app.Stats, measure MeasureFunc) []Label {
	texts := [4]string{
		timeLabel(s),
		speedLabel(s),
		hitsLabel(s),
		accuracyLabel(s),
	}
	labels := make([]Label, len(texts))
	for i, t := range texts {
		labels[i] = Label{
			Text: t,
			X:    cfg.ScreenWidth/2 - measure(t)/2,
			Y:    cfg.HUD.EndScreenRows[i],
		}
	}
	return labels
}
