// Package errors provides structured error handling for the bdk façade.
// It defines the closed set of error kinds a façade operation can fail
// with, exit codes for the CLI, and helpers for adding context, details,
// and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes returned by the CLI.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // General/unknown error
	ExitInput   = 2 // Invalid or contradictory request
	ExitEngine  = 3 // Wallet engine rejected the call
)

// Error codes. Every failure produced by the façade carries one of these.
const (
	CodeGeneral               = "GENERAL_ERROR"
	CodeMissingParameter      = "MISSING_PARAMETER"
	CodeConflictingParameters = "CONFLICTING_PARAMETERS"
	CodeInvalidThreshold      = "INVALID_THRESHOLD"
	CodeInvalidDescriptor     = "INVALID_DESCRIPTOR"
	CodeInvalidAmount         = "INVALID_AMOUNT"
	CodeInvalidEntropy        = "INVALID_ENTROPY"
	CodeEngine                = "ENGINE_ERROR"
	CodeInvalidInput          = "INVALID_INPUT"
	CodeInvalidMnemonic       = "INVALID_MNEMONIC"
	CodeNotSupported          = "NOT_SUPPORTED"
	CodeConfigInvalid         = "CONFIG_INVALID"
)

// BdkError is the structured error type used across the façade.
type BdkError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for the caller
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *BdkError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil && e.Code != CodeEngine {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *BdkError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for BdkError. Two BdkErrors match when their
// codes match.
func (e *BdkError) Is(target error) bool {
	var t *BdkError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &BdkError{
		Code:     CodeGeneral,
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	// Request validation errors.
	ErrMissingParameter = &BdkError{
		Code:     CodeMissingParameter,
		Message:  "required param is missing",
		ExitCode: ExitInput,
	}

	ErrConflictingParameters = &BdkError{
		Code:     CodeConflictingParameters,
		Message:  "only one parameter is allowed",
		ExitCode: ExitInput,
	}

	ErrInvalidThreshold = &BdkError{
		Code:     CodeInvalidThreshold,
		Message:  "threshold value is invalid",
		ExitCode: ExitInput,
	}

	ErrInvalidDescriptor = &BdkError{
		Code:     CodeInvalidDescriptor,
		Message:  "invalid descriptor",
		ExitCode: ExitInput,
	}

	ErrInvalidAmount = &BdkError{
		Code:     CodeInvalidAmount,
		Message:  "invalid amount",
		ExitCode: ExitInput,
	}

	ErrInvalidEntropy = &BdkError{
		Code:     CodeInvalidEntropy,
		Message:  "entropy must be one of 128, 160, 192, 224 or 256 bits",
		ExitCode: ExitInput,
	}

	// ErrEngine marks a failure surfaced by the wallet engine. Use Engine
	// to wrap a concrete engine error.
	ErrEngine = &BdkError{
		Code:     CodeEngine,
		Message:  "wallet engine error",
		ExitCode: ExitEngine,
	}

	ErrInvalidInput = &BdkError{
		Code:     CodeInvalidInput,
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	ErrInvalidMnemonic = &BdkError{
		Code:     CodeInvalidMnemonic,
		Message:  "invalid mnemonic phrase",
		ExitCode: ExitInput,
	}

	ErrNotSupported = &BdkError{
		Code:     CodeNotSupported,
		Message:  "operation not supported by this engine",
		ExitCode: ExitEngine,
	}

	ErrConfigInvalid = &BdkError{
		Code:     CodeConfigInvalid,
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}
)

// Engine wraps an error returned by the wallet engine. The engine's message
// is kept as-is; BdkErrors raised by an engine implementation pass through
// unchanged.
func Engine(err error) error {
	if err == nil {
		return nil
	}

	var se *BdkError
	if errors.As(err, &se) {
		return err
	}

	return &BdkError{
		Code:     CodeEngine,
		Message:  err.Error(),
		Cause:    err,
		ExitCode: ExitEngine,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var se *BdkError
	if errors.As(err, &se) {
		return &BdkError{
			Code:       se.Code,
			Message:    fmt.Sprintf("%s: %s", msg, se.Message),
			Details:    se.Details,
			Suggestion: se.Suggestion,
			Cause:      err,
			ExitCode:   se.ExitCode,
		}
	}

	return &BdkError{
		Code:     CodeGeneral,
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails adds details to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *BdkError
	if errors.As(err, &se) {
		return &BdkError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    details,
			Suggestion: se.Suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &BdkError{
		Code:     CodeGeneral,
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion adds a suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var se *BdkError
	if errors.As(err, &se) {
		return &BdkError{
			Code:       se.Code,
			Message:    se.Message,
			Details:    se.Details,
			Suggestion: suggestion,
			Cause:      se.Cause,
			ExitCode:   se.ExitCode,
		}
	}

	return &BdkError{
		Code:       CodeGeneral,
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var se *BdkError
	if errors.As(err, &se) {
		return se.ExitCode
	}

	return ExitGeneral
}

// Code returns the error code for an error.
func Code(err error) string {
	var se *BdkError
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeGeneral
}

// ExitCodeFor returns the exit code associated with an error code.
// Unknown codes map to ExitGeneral.
func ExitCodeFor(code string) int {
	for _, se := range []*BdkError{
		ErrMissingParameter, ErrConflictingParameters, ErrInvalidThreshold,
		ErrInvalidDescriptor, ErrInvalidAmount, ErrInvalidEntropy, ErrEngine,
		ErrInvalidInput, ErrInvalidMnemonic, ErrNotSupported, ErrConfigInvalid,
	} {
		if se.Code == code {
			return se.ExitCode
		}
	}
	return ExitGeneral
}
