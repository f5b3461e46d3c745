package model

import "fmt"

// FieldError is a single validation violation, reported by field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateQuestion checks the invariants a question must satisfy before it
// is persisted: exactly 4 options, correct answer within range, a topic and
// a difficulty level in 1..3.
func ValidateQuestion(q *Question) []FieldError {
	var errs []FieldError

	if q.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "must not be empty"})
	}
	if len(q.Options) != 4 {
		errs = append(errs, FieldError{Field: "options", Message: "must contain exactly 4 options"})
	}
	for i, opt := range q.Options {
		if opt == "" {
			errs = append(errs, FieldError{Field: fmt.Sprintf("options[%d]", i), Message: "must not be empty"})
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer > 3 {
		errs = append(errs, FieldError{Field: "correctAnswer", Message: "must be between 0 and 3"})
	}
	if q.Topic == "" {
		errs = append(errs, FieldError{Field: "topic", Message: "must not be empty"})
	}
	if q.DifficultyLevel < LevelBeginner || q.DifficultyLevel > LevelAdvanced {
		errs = append(errs, FieldError{Field: "difficultyLevel", Message: "must be 1, 2 or 3"})
	}

	return errs
}

// ValidateSubmission checks the shape of a session submission against the
// session it answers. Length mismatches fail fast before any scoring.
func ValidateSubmission(session *QuizSession, answers []int) []FieldError {
	var errs []FieldError

	if session.Submitted() {
		errs = append(errs, FieldError{Field: "session", Message: "already submitted"})
	}
	if len(answers) == 0 {
		errs = append(errs, FieldError{Field: "answers", Message: "must not be empty"})
	}
	if len(answers) != len(session.Questions) {
		errs = append(errs, FieldError{
			Field:   "answers",
			Message: fmt.Sprintf("expected %d answers, got %d", len(session.Questions), len(answers)),
		})
	}
	for i, a := range answers {
		if a < 0 || a > 3 {
			errs = append(errs, FieldError{Field: fmt.Sprintf("answers[%d]", i), Message: "must be between 0 and 3"})
		}
	}

	return errs
}
