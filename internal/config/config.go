package config

import (
	"time"
)

// Harness holds the demo-harness settings shared by the showcase and the
// interactive player. It configures how the demos drive and render buttons;
// button styling itself always arrives as a freshly constructed
// button.Config and is never persisted here.
type Harness struct {
	// Width is the button render width in terminal columns, consumed by the
	// showcase fill and by the player. Zero means detect from the terminal
	// for the fill and intrinsic sizing in the player.
	Width int `yaml:"width" validate:"gte=0"`

	// LoadingMillis is how long an activated button stays in its loading
	// state before the player resets it.
	LoadingMillis int `yaml:"loading_ms" validate:"gte=0"`

	// SpinnerMillis is the progress indicator animation interval.
	SpinnerMillis int `yaml:"spinner_ms" validate:"gte=0"`

	// ColorProfile forces the output profile for rendering.
	ColorProfile string `yaml:"color_profile" validate:"omitempty,oneof=auto ascii ansi ansi256 truecolor"`

	// LogLevel selects the logger verbosity.
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the harness settings used when no config file is given.
func Default() Harness {
	return Harness{
		LoadingMillis: 2000,
		SpinnerMillis: 120,
		ColorProfile:  "auto",
		LogLevel:      "info",
	}
}

// LoadingDuration returns the loading reset delay as a duration.
func (h Harness) LoadingDuration() time.Duration {
	return time.Duration(h.LoadingMillis) * time.Millisecond
}

// SpinnerInterval returns the spinner tick interval as a duration.
func (h Harness) SpinnerInterval() time.Duration {
	return time.Duration(h.SpinnerMillis) * time.Millisecond
}
