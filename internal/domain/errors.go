package domain

import "errors"

// Domain errors shared by stores and services.

var (
	ErrAssessmentNotFound = errors.New("assessment not found")
	ErrExerciseNotFound   = errors.New("exercise not found")
	ErrUnknownPattern     = errors.New("unknown movement pattern")

	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
