package cmdutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/endorses/telnum/internal/pkg/bcd"
	"github.com/endorses/telnum/internal/pkg/config"
	"github.com/endorses/telnum/internal/pkg/intl"
)

// Exit codes for CLI commands
const (
	ExitSuccess         = 0
	ExitGeneralError    = 1
	ExitConfigError     = 2
	ExitValidationError = 3
)

// ErrUsage marks errors in command arguments.
var ErrUsage = errors.New("invalid arguments")

// ErrorResponse represents a JSON error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ExitCodeFor maps an error to the exit code reported for it.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUsage),
		errors.Is(err, intl.ErrUnparsable),
		errors.Is(err, bcd.ErrInvalidBCDChar):
		return ExitValidationError
	default:
		return ExitGeneralError
	}
}

// WriteError writes err to w as a JSON ErrorResponse and returns its exit code.
func WriteError(w io.Writer, err error) int {
	code := ExitCodeFor(err)
	resp := ErrorResponse{
		Error: err.Error(),
		Code:  exitCodeString(code),
	}
	data, _ := json.Marshal(resp)
	fmt.Fprintln(w, string(data))
	return code
}

// Usagef returns an ErrUsage error with a formatted message.
func Usagef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}

func exitCodeString(code int) string {
	switch code {
	case ExitSuccess:
		return "OK"
	case ExitConfigError:
		return "INVALID_CONFIG"
	case ExitValidationError:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}
