package form

import (
	"errors"
	"fmt"
)

// Validation failures, one per listing rule, in the order the rules run.
var (
	ErrEmptyName        = errors.New("turf name is required")
	ErrPhoneTooShort    = errors.New("phone number must be at least 10 characters")
	ErrEmptyLocation    = errors.New("location is required")
	ErrInvalidPrice     = errors.New("price per slot must be a positive number")
	ErrInvalidTimeRange = errors.New("closing time must be after opening time")
)

// ErrSubmitInFlight rejects a submit while the instance's previous one is
// still running. The owner resubmits once the busy flag clears.
var ErrSubmitInFlight = errors.New("a submission is already in progress")

// SubmitStage tells which step of a submission failed. Recovery is the same
// either way (fix and resubmit); only the message differs.
type SubmitStage string

const (
	StageUpload SubmitStage = "upload"
	StageSave   SubmitStage = "save"
)

// SubmitError wraps a collaborator failure during submission. The cause is
// the backend's reported error and stays reachable through Unwrap.
type SubmitError struct {
	Stage SubmitStage
	Cause error
}

func (e *SubmitError) Error() string {
	switch e.Stage {
	case StageUpload:
		return fmt.Sprintf("image upload failed: %v", e.Cause)
	case StageSave:
		return fmt.Sprintf("saving the listing failed: %v", e.Cause)
	default:
		return fmt.Sprintf("submission failed: %v", e.Cause)
	}
}

func (e *SubmitError) Unwrap() error { return e.Cause }

// IsValidationError reports whether err is one of the five rule violations.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrPhoneTooShort) ||
		errors.Is(err, ErrEmptyLocation) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidTimeRange)
}
