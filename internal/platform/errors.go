package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyRunning is an error returned when run can't be started because previous run of the same message is not finished yet.
	ErrAlreadyRunning = errors.New("processing already running for this message")
	// ErrEmptyBody is returned when email has neither html nor plain text body.
	ErrEmptyBody = errors.New("email has no html and no plain text body")
	// ErrNoPDFAttachment is returned when vendor sends orders as pdf and email has no extractable pdf.
	ErrNoPDFAttachment = errors.New("no extractable pdf attachment")
	// ErrNoVendorMatch is returned when no vendor detection tier matched.
	ErrNoVendorMatch = errors.New("no vendor matched, manual review required")
	// ErrAmbiguousVendor is returned when two vendors matched with the same confidence.
	ErrAmbiguousVendor = errors.New("ambiguous vendor detection, manual review required")
	// ErrNoParser is returned when vendor points to parser which is not registered.
	ErrNoParser = errors.New("no parser registered for vendor")
	// ErrNotFound is returned when stored record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRegistry is returned when vendor registry configuration is inconsistent.
	ErrInvalidRegistry = errors.New("invalid vendor registry")
	// ErrInvalidTransition is returned when inventory item can't move to requested status.
	ErrInvalidTransition = errors.New("invalid inventory item status transition")
)

// Stage is pipeline stage name.
type Stage string

const (
	StageValidate  Stage = "validate"
	StageDetect    Stage = "detect"
	StageParse     Stage = "parse"
	StageReconcile Stage = "reconcile"
	StageCache     Stage = "cache"
	StagePersist   Stage = "persist"
)

// ProcessingError is structured failure of processing single email.
type ProcessingError struct {
	Stage  Stage
	Reason string
	Err    error
}

// Error returns human readable failure.
func (e *ProcessingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Stage, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", e.Stage, e.Reason, e.Err)
}

// Unwrap returns underlying error.
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Fail returns new ProcessingError.
func Fail(stage Stage, reason string, err error) *ProcessingError {
	return &ProcessingError{
		Stage:  stage,
		Reason: reason,
		Err:    err,
	}
}
