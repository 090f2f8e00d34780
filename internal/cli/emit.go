package cli

import (
	"errors"

	"github.com/coreyphillips/bdk-rn/internal/output"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// reportedError is returned after a failure envelope has already been
// written, so Execute only sets the exit code.
type reportedError struct {
	info *result.ErrorInfo
}

func (e *reportedError) Error() string {
	return e.info.Message
}

func isReported(err error) bool {
	var re *reportedError
	return errors.As(err, &re)
}

// emit writes r with the command's formatter. A failed result becomes a
// reportedError so the command exits non-zero.
func emit[T any](cc *CommandContext, r result.Result[T], text output.TextFunc[T]) error {
	if !r.OK && r.Error == nil {
		r.Error = result.Normalize(nil)
	}
	if err := output.WriteResult(cc.Formatter, r, text); err != nil {
		return err
	}
	if !r.OK {
		return &reportedError{info: r.Error}
	}
	return nil
}
