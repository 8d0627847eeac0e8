package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSession = errors.New("questionnaire already exists for session")
	ErrStorageFailure   = errors.New("storage failure")
)

// storageFailure keeps both ErrStorageFailure and the driver error in the chain.
func storageFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}
