package pagination

import "errors"

// ErrInvalidSettings is the umbrella for every settings construction failure.
// Callers treat it as an invalid-argument condition.
var ErrInvalidSettings = errors.New("invalid pagination settings")

// Settings construction errors. Both unwrap to ErrInvalidSettings.
var (
	ErrZeroPageSize  = &settingsError{msg: "page size must be greater than zero"}
	ErrZeroPageIndex = &settingsError{msg: "page index must be greater than zero"}
)

type settingsError struct {
	msg string
}

func (e *settingsError) Error() string { return e.msg }
func (e *settingsError) Unwrap() error { return ErrInvalidSettings }
