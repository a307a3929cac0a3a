package core

import "github.com/pkg/errors"

// Sentinel errors callers branch on.
var (
	ErrValidationFailed = errors.New("proof validation failed")
	ErrReplayDivergence = errors.New("replay: expected conflict did not materialize")
	ErrInconsistent     = errors.New("solver is in an inconsistent (ok=false) state")
)

func errNewf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}
