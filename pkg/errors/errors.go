package errors

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cwdclip/pkg/logger"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess    ExitCode = 0
	ExitCodeGeneral    ExitCode = 1
	ExitCodeValidation ExitCode = 2
	ExitCodeResolution ExitCode = 3
	ExitCodeSubprocess ExitCode = 4
)

// Fixed diagnostics printed when no clipboard backend is installed.
const (
	ErrMsgNoBackend        = "xsel and xclip not found"
	SuggestionInstallTools = "please install xsel or xclip"
)

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

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message string, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// CodeOf returns the exit code carried by err, looking through wrapping.
// Errors without one map to ExitCodeGeneral.
func CodeOf(err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ExitCodeGeneral
}

// HandleReturn reports err on stderr and returns the exit code the process
// should terminate with. The caller is responsible for exiting.
func HandleReturn(err error) ExitCode {
	return Render(os.Stderr, err)
}

// Render writes the user-facing form of err to w and returns its exit code.
func Render(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	exitCode := CodeOf(err)
	message := err.Error()
	var suggestion string

	var e *Error
	if stderrors.As(err, &e) {
		suggestion = e.Suggestion
	}
	logger.Debug().Err(err).Int("exit_code", int(exitCode)).Msg("command failed")

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		for i, line := range lines {
			if i == 0 {
				fmt.Fprintln(w, line)
			} else {
				if strings.HasPrefix(line, "  -") {
					cyan.Fprintln(w, line)
				} else {
					fmt.Fprintln(w, "            "+line)
				}
			}
		}
	}

	return exitCode
}

func ValidationError(message string) *Error {
	return New(ExitCodeValidation, message)
}

// NoBackendError is returned when neither supported clipboard program is on
// the search path.
func NoBackendError() *Error {
	return NewWithSuggestion(ExitCodeGeneral, ErrMsgNoBackend, SuggestionInstallTools)
}

func ResolutionError(message string, err error) *Error {
	return NewWithError(ExitCodeResolution, message, err)
}

// SubprocessError wraps a failure to start or wait for an external program.
func SubprocessError(program, stage string, err error) *Error {
	return NewWithError(ExitCodeSubprocess, fmt.Sprintf("failed to %s %s", stage, program), err)
}
