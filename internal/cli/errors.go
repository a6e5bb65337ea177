package cli

import (
	"errors"

	"github.com/CodexForgeBR/sysupdate/internal/exitcode"
)

// ExitError asks main to exit with Code. Err, when set, is reported first.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "exit " + exitcode.Name(e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// IsExitError reports whether err carries an exit code, returning it.
func IsExitError(err error) (*ExitError, bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}
