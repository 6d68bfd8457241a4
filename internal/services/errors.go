package services

// ValidationError reports malformed user-supplied reminder data (bad time
// format, empty medicine name). It is recovered locally by re-prompting;
// it is never a system fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
