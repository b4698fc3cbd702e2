// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

var errInvalidDimension = errors.New("invalid dimension")

// TargetConfig describes target geometry and colours.
type TargetConfig struct {
	MaxDiameter    float64
	ExpansionRate  float64
	PrimaryColor   color.RGBA
	SecondaryColor color.RGBA
}

// HUDConfig holds the header and end screen layout.
type HUDConfig struct {
	FontSize        float64
	HeaderColor     color.RGBA
	HeaderTextColor color.RGBA
	EndTextColor    color.RGBA
	LabelOffsets    [4]int
	LabelY          int
	EndScreenRows   [4]int
}

// Config is built once at startup and shared read-only by the loop, the
// spawner and the renderers.
type Config struct {
	ScreenWidth     int
	ScreenHeight    int
	HeaderHeight    int
	TargetMargin    int
	TPS             int
	MaxLives        int
	SpawnInterval   time.Duration
	MaxDeltaTime    float64
	BackgroundColor color.RGBA
	Target          TargetConfig
	HUD             HUDConfig
}

// Default returns the stock Bullseye Blitz configuration.
func Default() *Config {
	return &Config{
		ScreenWidth:     800,
		ScreenHeight:    600,
		HeaderHeight:    50,
		TargetMargin:    30,
		TPS:             60,
		MaxLives:        3,
		SpawnInterval:   400 * time.Millisecond,
		MaxDeltaTime:    0.06,
		BackgroundColor: color.RGBA{0, 25, 40, 255},
		Target: TargetConfig{
			MaxDiameter:    30,
			ExpansionRate:  0.2, // per frame
			PrimaryColor:   color.RGBA{255, 0, 0, 255},
			SecondaryColor: color.RGBA{255, 255, 255, 255},
		},
		HUD: HUDConfig{
			FontSize:        24,
			HeaderColor:     color.RGBA{128, 128, 128, 255},
			HeaderTextColor: color.RGBA{0, 0, 0, 255},
			EndTextColor:    color.RGBA{255, 255, 255, 255},
			LabelOffsets:    [4]int{5, 200, 450, 650}, // time, speed, hits, lives
			LabelY:          5,
			EndScreenRows:   [4]int{100, 200, 300, 400}, // time, speed, hits, accuracy
		},
	}
}

// Validate rejects layouts in which the spawner would have nowhere to put a target.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen %dx%d: %w", c.ScreenWidth, c.ScreenHeight, errInvalidDimension)
	}
	if c.TargetMargin < 0 || c.HeaderHeight < 0 {
		return fmt.Errorf("margin %d, header %d: %w", c.TargetMargin, c.HeaderHeight, errInvalidDimension)
	}
	if c.ScreenWidth-c.TargetMargin < c.TargetMargin {
		return fmt.Errorf("no horizontal room for targets with margin %d: %w", c.TargetMargin, errInvalidDimension)
	}
	if c.ScreenHeight-c.TargetMargin < c.TargetMargin+c.HeaderHeight {
		return fmt.Errorf("no vertical room for targets below a %dpx header: %w", c.HeaderHeight, errInvalidDimension)
	}
	if c.SpawnInterval <= 0 {
		return fmt.Errorf("spawn interval must be positive, got %s", c.SpawnInterval)
	}
	if c.MaxLives <= 0 {
		return fmt.Errorf("max lives must be positive, got %d", c.MaxLives)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Target.MaxDiameter <= 0 || c.Target.ExpansionRate <= 0 {
		return fmt.Errorf("target diameter %.2f / rate %.2f must be positive", c.Target.MaxDiameter, c.Target.ExpansionRate)
	}
	return nil
}

// SpawnBounds returns the inclusive box target centres are drawn from.
func (c *Config) SpawnBounds() (minX, maxX, minY, maxY int) {
	return c.TargetMargin, c.ScreenWidth - c.TargetMargin,
		c.TargetMargin + c.HeaderHeight, c.ScreenHeight - c.TargetMargin
}
