// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"errors"
	"fmt"
)

// Kind classifies a failure of the analysis pipeline.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindInvalidConfig: non-positive FFT size, hop size or sample rate.
	KindInvalidConfig
	// KindDecode: the input could not be opened, read or decoded as audio.
	KindDecode
	// KindNoData: the sample stream is too short to fill a single window.
	KindNoData
	// KindRender: the plot could not be drawn or written.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindInvalidConfig:
		return "invalid configuration"
	case KindDecode:
		return "decode error"
	case KindNoData:
		return "no data"
	case KindRender:
		return "render error"
	default:
		return "unknown error"
	}
}

// Error carries a Kind together with the operation and underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of the same Kind, so that
// errors.Is(err, ErrNoData) works for any wrapped *Error of KindNoData.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels, one per Kind, for use with errors.Is.
var (
	ErrInvalidConfig = &Error{Kind: KindInvalidConfig}
	ErrDecode        = &Error{Kind: KindDecode}
	ErrNoData        = &Error{Kind: KindNoData}
	ErrRender        = &Error{Kind: KindRender}
)

// Wrap returns err as an *Error of the given kind. A nil err stays nil and an
// err that already carries a Kind is returned unchanged.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return err
	}

	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindUnknown
}

func errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}
