// Package errs defines the error kinds reported by vtxt operations.
//
// Public vtxt operations only ever report success or failure through a
// plain error value, but the underlying [*Error] carries a [Kind] that
// tells configuration problems, degenerate inputs and resource
// exhaustion apart:
//   err := registry.Load(0, "fonts/VeraSe.ttf", 0, 12)
//   if errs.KindOf(err) == errs.KindConfig { ... }
package errs

import "errors"

// Kind classifies a failure.
type Kind uint8

const (
	KindNone       Kind = iota // no error
	KindConfig                 // invalid slot, empty slot, bad font file, engine init
	KindDegenerate             // empty text and similar zero-result inputs
	KindResource               // rasterization or allocation failures
)

func (self Kind) String() string {
	switch self {
	case KindNone:
		return "none"
	case KindConfig:
		return "config"
	case KindDegenerate:
		return "degenerate"
	case KindResource:
		return "resource"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidSlot    = errors.New("font slot id out of range")
	ErrEmptySlot      = errors.New("font slot has no loaded font")
	ErrEmptyText      = errors.New("empty text")
	ErrInitFailed     = errors.New("rasterization engine failed to initialize")
	ErrNotInitialized = errors.New("rasterization engine not initialized")
	ErrBadFont        = errors.New("invalid font")
	ErrRasterize      = errors.New("text rasterization failed")
	ErrClosed         = errors.New("font face already closed")
)

// Error is the concrete error type returned by vtxt operations.
type Error struct {
	Op   string // operation that failed, e.g. "font.Load"
	Kind Kind
	Err  error
}

// New creates an [*Error]. A nil err returns nil.
func New(op string, kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Err: err}
}

func (self *Error) Error() string {
	if self.Op == "" {
		return self.Err.Error()
	}
	return self.Op + ": " + self.Err.Error()
}

func (self *Error) Unwrap() error { return self.Err }

// KindOf returns the kind of the first [*Error] in the chain of err.
// Nil errors are [KindNone], and errors that didn't originate in vtxt
// are reported as [KindResource].
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var vtxtErr *Error
	if errors.As(err, &vtxtErr) {
		return vtxtErr.Kind
	}
	return KindResource
}
