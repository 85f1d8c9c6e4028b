package gfx

import "errors"

// Result is the status taxonomy shared by every drawing operation.
type Result uint8

const (
	ResultOK Result = iota
	ResultOutOfMemory
	ResultInternal
	ResultFailed
	ResultBadArgument
)

var (
	// ErrOutOfMemory reports an allocation failure during driver or surface setup.
	ErrOutOfMemory = errors.New("gfx: out of memory")
	// ErrInternal reports a backend-specific failure or malformed asset.
	ErrInternal = errors.New("gfx: internal error")
	// ErrFailed is a generic failure with no further detail.
	ErrFailed = errors.New("gfx: failed")
	// ErrBadArgument reports a violated precondition.
	ErrBadArgument = errors.New("gfx: bad argument")
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultOutOfMemory:
		return "out of memory"
	case ResultInternal:
		return "internal"
	case ResultFailed:
		return "failed"
	case ResultBadArgument:
		return "bad argument"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for r, or nil for ResultOK.
func (r Result) Err() error {
	switch r {
	case ResultOK:
		return nil
	case ResultOutOfMemory:
		return ErrOutOfMemory
	case ResultInternal:
		return ErrInternal
	case ResultBadArgument:
		return ErrBadArgument
	default:
		return ErrFailed
	}
}

// ResultOf classifies err. Errors that wrap none of the sentinels are ResultFailed.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, ErrBadArgument):
		return ResultBadArgument
	case errors.Is(err, ErrOutOfMemory):
		return ResultOutOfMemory
	case errors.Is(err, ErrInternal):
		return ResultInternal
	default:
		return ResultFailed
	}
}
