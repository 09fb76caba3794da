package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode is a stable identifier for a class of failure. Tests and
// scripts match on codes, never on messages.
type ErrorCode string

const (
	// General
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrCanceled     ErrorCode = "CANCELED"

	// Configuration
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrRuleInvalid ErrorCode = "RULE_INVALID"

	// Migration planning
	ErrDestinationConflict ErrorCode = "DESTINATION_CONFLICT"
	ErrDestinationExists   ErrorCode = "DESTINATION_EXISTS"
	ErrSourceNotFound      ErrorCode = "SOURCE_NOT_FOUND"

	// Filesystem
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileRead     ErrorCode = "FILE_READ"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileRemove   ErrorCode = "FILE_REMOVE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// hints tell the user what to change for codes caused by their input
var hints = map[ErrorCode]string{
	ErrDestinationConflict: "add a rule to .relayout.toml that gives these files distinct destinations",
	ErrDestinationExists:   "remove the listed files or rerun with --force to replace them",
	ErrSourceNotFound:      "check layout.source_dir (or --source) and the project root",
	ErrConfigValid:         "fix the value in .relayout.toml, RELAYOUT_* variables or flags",
	ErrConfigParse:         "check the TOML syntax of the config file",
	ErrRuleInvalid:         "rule patterns must be valid globs and non-exclusion rules need a destination",
	ErrCanceled:            "rerun the migration; files copied so far are still in place",
}

// RelayoutError carries a code, a message, optional structured details
// and the underlying cause
type RelayoutError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *RelayoutError) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
}

func (e *RelayoutError) Unwrap() error {
	return e.Wrapped
}

// Is matches any RelayoutError with the same code, so
// errors.Is(err, errors.New(ErrFileRead, "")) tests for a code.
func (e *RelayoutError) Is(target error) bool {
	var other *RelayoutError
	return errors.As(target, &other) && other.Code == e.Code
}

// WithDetail sets one detail and returns e for chaining
func (e *RelayoutError) WithDetail(key string, value interface{}) *RelayoutError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into e
func (e *RelayoutError) WithDetails(details map[string]interface{}) *RelayoutError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

func newError(cause error, code ErrorCode, message string) *RelayoutError {
	return &RelayoutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: cause,
	}
}

// New creates an error with the given code
func New(code ErrorCode, message string) *RelayoutError {
	return newError(nil, code, message)
}

// Newf creates an error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RelayoutError {
	return newError(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches a code and message to err. It returns nil for a nil err.
func Wrap(err error, code ErrorCode, message string) *RelayoutError {
	if err == nil {
		return nil
	}
	return newError(err, code, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RelayoutError {
	if err == nil {
		return nil
	}
	return newError(err, code, fmt.Sprintf(format, args...))
}

func asRelayout(err error) (*RelayoutError, bool) {
	var re *RelayoutError
	ok := errors.As(err, &re)
	return re, ok
}

// IsErrorCode reports whether err, or an error it wraps, has code
func IsErrorCode(err error, code ErrorCode) bool {
	re, ok := asRelayout(err)
	return ok && re.Code == code
}

// GetErrorCode returns the code of err, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if re, ok := asRelayout(err); ok {
		return re.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of err, or nil
func GetErrorDetails(err error) map[string]interface{} {
	if re, ok := asRelayout(err); ok {
		return re.Details
	}
	return nil
}

// Hint returns a short suggestion for fixing err, or "" when its code has
// none
func Hint(err error) string {
	return hints[GetErrorCode(err)]
}

// DetailLines renders the details of err as "key: value" lines sorted by
// key. String lists are comma separated and conflict maps render as
// "destination <- source, source" entries.
func DetailLines(err error) []string {
	details := GetErrorDetails(err)
	if len(details) == 0 {
		return nil
	}

	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+": "+formatDetail(details[k]))
	}
	return lines
}

func formatDetail(v interface{}) string {
	switch value := v.(type) {
	case []string:
		return strings.Join(value, ", ")
	case map[string][]string:
		dests := make([]string, 0, len(value))
		for dest := range value {
			dests = append(dests, dest)
		}
		sort.Strings(dests)
		parts := make([]string, 0, len(dests))
		for _, dest := range dests {
			parts = append(parts, dest+" <- "+strings.Join(value[dest], ", "))
		}
		return strings.Join(parts, "; ")
	default:
		return fmt.Sprint(v)
	}
}
