// Package bdk is a validation-and-derivation façade in front of a Bitcoin
// wallet engine. Every operation validates the caller's request, derives
// any missing canonical values, forwards to the engine and returns a
// result.Result envelope. No error or panic escapes an operation.
package bdk

import (
	"context"
	"time"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// Service is the façade. It holds a single engine reference set at
// construction and never reassigned.
type Service struct {
	engine  Engine
	logger  LogWriter
	metrics MetricsRecorder
}

// Config contains dependencies for creating a façade service.
type Config struct {
	Engine  Engine
	Logger  LogWriter
	Metrics MetricsRecorder
}

// NewService creates a new façade service instance.
func NewService(cfg *Config) *Service {
	s := &Service{
		engine:  cfg.Engine,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
	if s.logger == nil {
		s.logger = nopLogger{}
	}
	if s.metrics == nil {
		s.metrics = nopMetrics{}
	}
	return s
}

// run executes an operation body and wraps its outcome. Panics raised by
// the body or the engine are recovered into failures.
func run[T any](s *Service, op string, body func() (T, error)) (res result.Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			err := result.FromPanic(r)
			s.logger.Error("%s: recovered panic: %v", op, r)
			s.metrics.RecordOperation(op, err)
			res = result.Failure[T](err)
		}
	}()

	data, err := body()
	s.metrics.RecordOperation(op, err)
	if err != nil {
		s.logger.Debug("%s failed (%s): %v", op, bdkerr.Code(err), err)
		return result.Failure[T](err)
	}
	return result.Success(data)
}

// call invokes one engine capability, recording latency and wrapping any
// failure as an engine error.
func call[T any](ctx context.Context, s *Service, capability string, fn func(context.Context) (T, error)) (T, error) {
	if s.engine == nil {
		var zero T
		return zero, bdkerr.WithSuggestion(bdkerr.ErrEngine, "no wallet engine configured")
	}

	start := time.Now()
	v, err := fn(ctx)
	s.metrics.RecordEngineCall(capability, time.Since(start), err)
	if err != nil {
		s.logger.Error("engine %s: %v", capability, err)
		var zero T
		return zero, bdkerr.Engine(err)
	}

	s.logger.Debug("engine %s ok (%s)", capability, time.Since(start))
	return v, nil
}
