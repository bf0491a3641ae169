// Package task runs the steps of a mining operation with retry and persistence.
package task

import (
	"errors"
	"fmt"
)

// Kind classifies a task failure.
type Kind int

const (
	// KindRetryable failures are transient; the task is attempted again after a backoff.
	KindRetryable Kind = iota + 1
	// KindFatal failures end the operation.
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindRetryable:
		return "retryable"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ErrMaxAttemptsExceeded wraps the last retryable failure of a task that ran out of attempts.
var ErrMaxAttemptsExceeded = errors.New("maximum attempts exceeded")

// Error is a classified task failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retry marks err as retryable.
func Retry(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindRetryable, Err: err}
}

// Retryf builds a retryable failure.
func Retryf(format string, args ...any) error {
	return Retry(fmt.Errorf(format, args...))
}

// Fatal marks err as fatal.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindFatal, Err: err}
}

// Fatalf builds a fatal failure.
func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}

// KindOf returns the classification of the outermost task error in err's chain.
// Unclassified errors are fatal.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindFatal
}

// IsRetryable reports whether err is classified retryable.
func IsRetryable(err error) bool {
	return err != nil && KindOf(err) == KindRetryable
}
