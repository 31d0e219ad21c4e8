package config

import (
	"os"
	"strconv"
)

const (
	minRemainingEnv    = "PLANNER_MIN_REMAINING"
	urgentRemainingEnv = "PLANNER_URGENT_REMAINING"

	defaultMinRemaining    = 10.0
	defaultUrgentRemaining = 15.0
)

type PlannerConfig struct {
	// MinRemaining is the threshold at or below which no reminder is
	// planned: the day is close enough to done.
	MinRemaining float64
	// UrgentRemaining is the threshold above which a closing eating
	// window escalates to an urgent reminder.
	UrgentRemaining float64
}

func LoadPlannerConfig() *PlannerConfig {
	cfg := &PlannerConfig{
		MinRemaining:    defaultMinRemaining,
		UrgentRemaining: defaultUrgentRemaining,
	}

	if v := os.Getenv(minRemainingEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			cfg.MinRemaining = parsed
		}
	}

	if v := os.Getenv(urgentRemainingEnv); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > cfg.MinRemaining {
			cfg.UrgentRemaining = parsed
		}
	}

	return cfg
}
