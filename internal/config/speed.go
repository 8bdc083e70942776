package config

import (
	"fmt"
	"strings"
)

// SpeedPreset is a named tick cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedInsane SpeedPreset = "insane"
)

// SpeedPresets lists the presets from slowest to fastest.
func SpeedPresets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInsane}
}

// TickMSForPreset returns the step interval in milliseconds for a preset.
func TickMSForPreset(preset SpeedPreset) (int, error) {
	switch preset {
	case SpeedSlow:
		return 150, nil
	case SpeedNormal:
		return 100, nil
	case SpeedFast:
		return 70, nil
	case SpeedInsane:
		return 45, nil
	default:
		names := make([]string, 0, 4)
		for _, p := range SpeedPresets() {
			names = append(names, string(p))
		}
		return 0, fmt.Errorf("%w: unknown speed %q (want one of %s)",
			ErrInvalidConfig, preset, strings.Join(names, ", "))
	}
}

// ApplySpeedPreset overrides the tick interval. An empty preset keeps the config as is.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	ms, err := TickMSForPreset(preset)
	if err != nil {
		return err
	}
	cfg.Timing.TickMS = ms
	return nil
}
