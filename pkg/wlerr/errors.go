// Package wlerr is the CLI-facing error and exit-code taxonomy used by
// cmd/wlgen. It is strictly a convenience layer around command
// handlers and diagnostics output; the wl library itself never
// returns a *wlerr.Error, only the WireError/UsageError/ProtocolError/
// PeerError/TransportError family exported from wl/errors.go.
package wlerr

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/wl-go/wl/pkg/wlog"
)

// ExitCode is the process exit status a command should terminate with.
type ExitCode int

const (
	ExitCodeSuccess       ExitCode = 0
	ExitCodeGeneral       ExitCode = 1
	ExitCodeConfig        ExitCode = 2
	ExitCodeSource        ExitCode = 3 // protocol XML missing, unreadable, or malformed
	ExitCodeGenerate      ExitCode = 4 // template execution or gofmt failure
	ExitCodeValidation    ExitCode = 5
	ExitCodeFileOperation ExitCode = 6
	ExitCodeCancellation  ExitCode = 7
	ExitCodeTimeout       ExitCode = 8
	ExitCodeNotImplemented ExitCode = 9
)

// Error carries an exit code, a user-facing message, an optional
// wrapped cause, and an optional actionable suggestion.
type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Underlying }

func New(code ExitCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Underlying: err}
}

func NewWithSuggestion(code ExitCode, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// Wrap prepends message to err, preserving err's exit code if it is
// already a *Error, else defaulting to ExitCodeGeneral.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}
	return &Error{Code: ExitCodeGeneral, Message: message, Underlying: err}
}

func WrapWithCode(err error, code ExitCode, message string) *Error {
	if err == nil {
		return nil
	}
	var errMsg string
	if wrapped, ok := err.(*Error); ok {
		errMsg = wrapped.Message
		if wrapped.Underlying != nil {
			errMsg += ": " + wrapped.Underlying.Error()
		}
	} else {
		errMsg = err.Error()
	}
	return &Error{Code: code, Message: message + ": " + errMsg, Underlying: err}
}

func IsExitCode(err error, code ExitCode) bool {
	e, ok := err.(*Error)
	return ok && e.Code == code
}

var cliLog = wlog.New().Component("wlgen")

// Handle prints err to stderr with color, with a suggestion line if
// present, and exits the process with its exit code.
func Handle(err error) {
	if err == nil {
		return
	}

	code := ExitCodeGeneral
	message := err.Error()
	suggestion := ""

	if e, ok := err.(*Error); ok {
		code = e.Code
		message = e.Message
		suggestion = e.Suggestion
	}
	cliLog.Error(err, message, nil)

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(os.Stderr)
	red.Fprint(os.Stderr, "Error: ")
	fmt.Fprintln(os.Stderr, message)
	if suggestion != "" {
		yellow.Fprint(os.Stderr, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(os.Stderr, line)
			} else {
				fmt.Fprintln(os.Stderr, "           "+line)
			}
		}
	}
	fmt.Fprintln(os.Stderr)

	os.Exit(int(code))
}

// HandleReturn behaves like Handle but returns the exit code instead
// of calling os.Exit, for use from code that still needs to run
// deferred cleanup (e.g. cobra's RunE wrappers).
func HandleReturn(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}
	code := ExitCodeGeneral
	if e, ok := err.(*Error); ok {
		code = e.Code
	}
	cliLog.Error(err, err.Error(), nil)
	return code
}

func SourceError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeSource,
		Message:    message,
		Underlying: err,
		Suggestion: "Check the protocol XML path and that the file is well-formed.",
	}
}

func GenerateError(message string, err error) *Error {
	return &Error{Code: ExitCodeGenerate, Message: message, Underlying: err}
}

func ConfigError(message string) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Suggestion: "Check ~/.config/wlgen/config.yaml or pass --source/--out explicitly.",
	}
}

func ValidationError(message string) *Error {
	return &Error{Code: ExitCodeValidation, Message: message}
}

func TimeoutError(operation string) *Error {
	return &Error{
		Code:       ExitCodeTimeout,
		Message:    fmt.Sprintf("operation timed out: %s", operation),
		Suggestion: "Retry with a longer --timeout.",
	}
}

func CancelledError(operation string) *Error {
	return &Error{Code: ExitCodeCancellation, Message: fmt.Sprintf("cancelled: %s", operation)}
}
