package repository

import "errors"

var (
	ErrInvalidStreakStateData = errors.New("invalid streak state data")
)
