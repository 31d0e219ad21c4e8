package domain

import "errors"

var (
	ErrInvalidTarget       = errors.New("target must be a positive finite amount")
	ErrInvalidConsumed     = errors.New("consumed must be a non-negative finite amount")
	ErrStaleEvaluationDay  = errors.New("evaluation day precedes last evaluated day")
	ErrStreakStateNotFound = errors.New("streak state not found")
)
