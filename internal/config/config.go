// Package config provides YAML/TOML simulation configuration loading and
// variant presets for paddleball.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned (wrapped) by Validate and ParseVariant.
var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrUnknownVariant = errors.New("unknown variant")
)

// PaddleballConfig contains all configuration for the simulation.
type PaddleballConfig struct {
	Window WindowConfig `yaml:"window" toml:"window"`
	Ball   BallConfig   `yaml:"ball" toml:"ball"`
	Paddle PaddleConfig `yaml:"paddle" toml:"paddle"`
	Input  InputConfig  `yaml:"input" toml:"input"`
}

// WindowConfig is the window size in world units. World bounds are half of it.
type WindowConfig struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// BallConfig defines the ball's envelope and initial motion.
type BallConfig struct {
	Speed     float64    `yaml:"speed" toml:"speed"`         // Units per second
	Radius    float64    `yaml:"radius" toml:"radius"`       // Bounding circle radius
	Direction [2]float64 `yaml:"direction" toml:"direction"` // Normalized at reset
	Start     [2]float64 `yaml:"start" toml:"start"`
}

// PaddleConfig defines the paddle box and its controller.
type PaddleConfig struct {
	HalfWidth  float64    `yaml:"half_width" toml:"half_width"`
	HalfHeight float64    `yaml:"half_height" toml:"half_height"`
	Speed      float64    `yaml:"speed" toml:"speed"`
	Start      [2]float64 `yaml:"start" toml:"start"`
	Collider   bool       `yaml:"collider" toml:"collider"` // Ball reflects off the paddle
	Clamp      bool       `yaml:"clamp" toml:"clamp"`       // Keep paddle center inside world bounds
}

// InputConfig defines how directional keys combine.
type InputConfig struct {
	Horizontal string `yaml:"horizontal" toml:"horizontal"` // "additive" or "legacy"
}

// Horizontal input modes.
const (
	HorizontalAdditive = "additive"
	HorizontalLegacy   = "legacy"
)

// Validate checks that the config describes a runnable simulation.
func (c PaddleballConfig) Validate() error {
	var problems []string

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, fmt.Sprintf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Ball.Radius <= 0 {
		problems = append(problems, fmt.Sprintf("ball radius must be positive, got %v", c.Ball.Radius))
	}
	if c.Ball.Speed < 0 {
		problems = append(problems, fmt.Sprintf("ball speed must not be negative, got %v", c.Ball.Speed))
	}
	if c.Ball.Direction == [2]float64{} && c.Ball.Speed > 0 {
		problems = append(problems, "ball direction must not be zero")
	}
	if c.Paddle.HalfWidth <= 0 || c.Paddle.HalfHeight <= 0 {
		problems = append(problems, fmt.Sprintf("paddle half extents must be positive, got %vx%v", c.Paddle.HalfWidth, c.Paddle.HalfHeight))
	}
	if c.Paddle.Speed < 0 {
		problems = append(problems, fmt.Sprintf("paddle speed must not be negative, got %v", c.Paddle.Speed))
	}
	switch c.Input.Horizontal {
	case HorizontalAdditive, HorizontalLegacy:
	default:
		problems = append(problems, fmt.Sprintf("input.horizontal must be %q or %q, got %q", HorizontalAdditive, HorizontalLegacy, c.Input.Horizontal))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Variant names one of the preset configurations.
type Variant string

const (
	VariantBasic    Variant = "basic"    // Slow ball, no paddle collider
	VariantBounded  Variant = "bounded"  // Slow ball, paddle kept inside the bounds
	VariantCollider Variant = "collider" // Fast ball bouncing off the paddle
)

// Variants lists the presets in display order.
func Variants() []Variant {
	return []Variant{VariantCollider, VariantBasic, VariantBounded}
}

// Describe returns a one-line summary of the variant.
func (v Variant) Describe() string {
	switch v {
	case VariantBasic:
		return "ball at 100/s, no paddle collisions, unclamped paddle"
	case VariantBounded:
		return "ball at 100/s, no paddle collisions, paddle clamped to bounds"
	case VariantCollider:
		return "ball at 500/s bouncing off the paddle, legacy left/right input"
	default:
		return ""
	}
}

// ParseVariant maps a name to a Variant. The empty string selects the default.
func ParseVariant(name string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case "", VariantCollider:
		return VariantCollider, nil
	case VariantBasic:
		return VariantBasic, nil
	case VariantBounded:
		return VariantBounded, nil
	}
	return "", fmt.Errorf("%w %q (want one of basic, bounded, collider)", ErrUnknownVariant, name)
}

// ApplyVariant modifies the config based on a variant preset.
func ApplyVariant(cfg *PaddleballConfig, v Variant) {
	switch v {
	case VariantBasic:
		cfg.Ball.Speed = 100
		cfg.Paddle.Collider = false
		cfg.Paddle.Clamp = false
		cfg.Input.Horizontal = HorizontalAdditive
	case VariantBounded:
		cfg.Ball.Speed = 100
		cfg.Paddle.Collider = false
		cfg.Paddle.Clamp = true
		cfg.Input.Horizontal = HorizontalAdditive
	case VariantCollider:
		cfg.Ball.Speed = 500
		cfg.Paddle.Collider = true
		cfg.Paddle.Clamp = false
		cfg.Input.Horizontal = HorizontalLegacy
	}
}
