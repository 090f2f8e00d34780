// Package result provides the uniform success/failure envelope returned by
// every façade operation.
package result

import (
	"encoding/json"
	"errors"
	"fmt"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// ErrorInfo is the normalized shape of a failure.
type ErrorInfo struct {
	Code       string            `json:"code"`
	Message    string            `json:"message"`
	Details    map[string]string `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
}

// Error implements error so an ErrorInfo can travel through error returns.
func (e *ErrorInfo) Error() string {
	return e.Message
}

// Result is a tagged union: OK with Data, or not OK with Error.
// Exactly one arm is populated.
type Result[T any] struct {
	OK    bool       `json:"ok"`
	Data  T          `json:"data"`
	Error *ErrorInfo `json:"error,omitempty"`
}

// Success wraps data in a successful result.
func Success[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

// Failure wraps err in a failed result.
func Failure[T any](err error) Result[T] {
	return Result[T]{Error: Normalize(err)}
}

// From builds a result from a (value, error) pair.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(data)
}

// MarshalJSON encodes only the populated arm. A successful result always
// carries "data", even when it holds a zero value.
func (r Result[T]) MarshalJSON() ([]byte, error) {
	if r.OK {
		return json.Marshal(struct {
			OK   bool `json:"ok"`
			Data T    `json:"data"`
		}{OK: true, Data: r.Data})
	}

	info := r.Error
	if info == nil {
		info = Normalize(nil)
	}
	return json.Marshal(struct {
		OK    bool       `json:"ok"`
		Error *ErrorInfo `json:"error"`
	}{Error: info})
}

// Normalize converts any error into an ErrorInfo. A nil error yields a
// general error so a failed result never carries an empty error arm.
func Normalize(err error) *ErrorInfo {
	if err == nil {
		return &ErrorInfo{
			Code:    bdkerr.CodeGeneral,
			Message: bdkerr.ErrGeneral.Message,
		}
	}

	var info *ErrorInfo
	if errors.As(err, &info) {
		if info == nil {
			return Normalize(nil)
		}
		return info
	}

	var se *bdkerr.BdkError
	if errors.As(err, &se) {
		return &ErrorInfo{
			Code:       se.Code,
			Message:    se.Error(),
			Details:    se.Details,
			Suggestion: se.Suggestion,
		}
	}

	return &ErrorInfo{
		Code:    bdkerr.CodeEngine,
		Message: err.Error(),
	}
}

// FromPanic converts a recovered panic value into an error.
func FromPanic(v any) error {
	switch p := v.(type) {
	case error:
		return bdkerr.Engine(p)
	case string:
		return bdkerr.Engine(errors.New(p)) //nolint:err113 // message comes from the recovered panic
	default:
		return bdkerr.Engine(fmt.Errorf("%v", p)) //nolint:err113 // message comes from the recovered panic
	}
}
