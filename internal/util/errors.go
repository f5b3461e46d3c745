package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionSubmitted     = errors.New("session already submitted")
	ErrNoQuestionsAvailable = errors.New("no questions available for this difficulty level")
	ErrEmptySubmission      = errors.New("submission contains no answers")
)
