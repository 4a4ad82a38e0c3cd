package model

import "time"

// ControllerConfig contains runtime settings for the cycle controller.
type ControllerConfig struct {
	TickInterval time.Duration
}

// DefaultControllerConfig returns a config that ticks once per second.
func DefaultControllerConfig() ControllerConfig {
	return ControllerConfig{TickInterval: time.Second}
}
