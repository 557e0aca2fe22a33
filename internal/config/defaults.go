package config

import (
	_ "embed"
)

//go:embed defaults/paddleball.yaml
var defaultPaddleballYAML []byte

// DefaultPaddleballConfig returns the built-in configuration, matching
// defaults/paddleball.yaml.
func DefaultPaddleballConfig() PaddleballConfig {
	return PaddleballConfig{
		Window: WindowConfig{
			Width:  900,
			Height: 600,
		},
		Ball: BallConfig{
			Speed:     500,
			Radius:    16,
			Direction: [2]float64{0.5, -0.5},
			Start:     [2]float64{0, 200},
		},
		Paddle: PaddleConfig{
			HalfWidth:  32,
			HalfHeight: 32,
			Speed:      300,
			Start:      [2]float64{0, 100},
			Collider:   true,
			Clamp:      false,
		},
		Input: InputConfig{
			Horizontal: HorizontalLegacy,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPaddleballYAML
}
