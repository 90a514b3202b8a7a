package cli

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHelpRequested is returned by Parse when -u, --usage or --help is seen.
// It is not a failure: callers print the usage text and exit successfully.
var ErrHelpRequested = errors.New("help requested")

// UsageError reports malformed command-line input.
type UsageError struct {
	// Msg describes what was wrong.
	Msg string

	// Valid lists the accepted values when an enumerated option was given
	// something else.
	Valid []string
}

func (e *UsageError) Error() string {
	if len(e.Valid) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s; supported values: %s", e.Msg, strings.Join(e.Valid, ", "))
}

func usageErrorf(format string, args ...any) *UsageError {
	return &UsageError{Msg: fmt.Sprintf(format, args...)}
}
