package entities

import "errors"

// ErrInvalidQuestionnaire matches every ValidationError via errors.Is.
var ErrInvalidQuestionnaire = errors.New("invalid questionnaire")

// ValidationError names the field that violated its constraint.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidQuestionnaire
}
