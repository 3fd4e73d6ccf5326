package usecase

import (
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-points/internal/platform/resilience"
)

var (
	ErrInvalidInput          = crerr.New("invalid input")
	ErrNotFound              = crerr.New("resource not found")
	ErrDependencyUnavailable = crerr.New("dependency unavailable")
)

// wrapDependency annotates a repository failure. An open circuit is marked
// as ErrDependencyUnavailable so the HTTP layer answers 503.
func wrapDependency(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	wrapped := crerr.Wrapf(err, format, args...)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		return crerr.Mark(wrapped, ErrDependencyUnavailable)
	}
	return wrapped
}

func invalidInput(format string, args ...any) error {
	return crerr.Wrapf(ErrInvalidInput, format, args...)
}

func notFound(format string, args ...any) error {
	return crerr.Wrapf(ErrNotFound, format, args...)
}
