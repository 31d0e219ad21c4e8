package config

import (
	"os"
	"strconv"
)

const (
	dayEndHourEnv      = "COACH_DAY_END_HOUR"
	slotMinutesEnv     = "COACH_SLOT_MINUTES"
	defaultTargetEnv   = "COACH_DEFAULT_TARGET"
	windowStartHourEnv = "EATING_WINDOW_START_HOUR"
	windowEndHourEnv   = "EATING_WINDOW_END_HOUR"

	defaultDayEndHour      = 22
	defaultSlotMinutes     = 15
	defaultDefaultTarget   = 100.0
	defaultWindowStartHour = 7
	defaultWindowEndHour   = 21
)

type CoachingConfig struct {
	DayEndHour      int
	SlotMinutes     int
	DefaultTarget   float64
	WindowStartHour int
	WindowEndHour   int
}

func LoadCoachingConfig() *CoachingConfig {
	cfg := &CoachingConfig{
		DayEndHour:      defaultDayEndHour,
		SlotMinutes:     defaultSlotMinutes,
		DefaultTarget:   defaultDefaultTarget,
		WindowStartHour: defaultWindowStartHour,
		WindowEndHour:   defaultWindowEndHour,
	}

	if v := os.Getenv(dayEndHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed <= 24 {
			cfg.DayEndHour = parsed
		}
	}

	if v := os.Getenv(slotMinutesEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.SlotMinutes = parsed
		}
	}

	if v := os.Getenv(defaultTargetEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.DefaultTarget = parsed
		}
	}

	if v := os.Getenv(windowStartHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < 24 {
			cfg.WindowStartHour = parsed
		}
	}

	if v := os.Getenv(windowEndHourEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > cfg.WindowStartHour && parsed <= 24 {
			cfg.WindowEndHour = parsed
		}
	}

	return cfg
}
