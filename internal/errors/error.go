package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Op represents an operation (package.function) like "lifecycle.(Service).Add".
type Op string

// Err provides the ability to specify a Msg, Op, Code and Wrapped error.
// Errs must be constructed via New or Wrap so the invariants around Code
// defaulting hold.
type Err struct {
	// Code is the error's code, which can be used to get the error's
	// errorCodeInfo, which contains the error's Kind and Message
	Code Code

	// Msg for the error
	Msg string

	// Op represents the operation raising/propagating an error and is optional
	Op Op

	// Wrapped is the error which this Err wraps and will be nil if there is no
	// error to wrap.
	Wrapped error
}

// New creates a new Err with the provided code, op and msg.  It supports the
// options of:
//
// * WithWrap() - allows you to specify an error to wrap
func New(c Code, op Op, msg string, opt ...Option) error {
	opts := GetOpts(opt...)
	err := &Err{
		Code:    c,
		Op:      op,
		Msg:     msg,
		Wrapped: opts.withErrWrapped,
	}
	if err.Code == Unknown && err.Wrapped != nil {
		var wrapped *Err
		if errors.As(err.Wrapped, &wrapped) {
			err.Code = wrapped.Code
		}
	}
	return err
}

// Wrap creates a new Err from the provided err and op.  It supports the
// options of:
//
// * WithMsg() - allows you to specify an optional error msg
//
// * WithCode() - allows you to override the code inherited from the wrapped
// error
func Wrap(e error, op Op, opt ...Option) error {
	opts := GetOpts(opt...)
	err := &Err{
		Op:      op,
		Msg:     opts.withErrMsg,
		Wrapped: e,
		Code:    opts.withCode,
	}
	if err.Code == Unknown {
		var wrapped *Err
		if errors.As(e, &wrapped) {
			err.Code = wrapped.Code
		}
	}
	return err
}

// Error satisfies the error interface and returns a string representation of
// the Err
func (e *Err) Error() string {
	if e == nil {
		return ""
	}
	var msgs []string
	if e.Op != "" {
		msgs = append(msgs, string(e.Op))
	}
	if e.Msg != "" {
		msgs = append(msgs, e.Msg)
	}
	if info, ok := errorCodeInfo[e.Code]; ok {
		if e.Msg == "" {
			// provide a default msg from the code's info
			msgs = append(msgs, info.Message, info.Kind.String())
		}
		msgs = append(msgs, fmt.Sprintf("error #%d", e.Code))
	}
	if e.Wrapped != nil {
		msgs = append(msgs, e.Wrapped.Error())
	}
	return strings.Join(msgs, ": ")
}

// Info about the Err
func (e *Err) Info() Info {
	if e == nil {
		return errorCodeInfo[Unknown]
	}
	return e.Code.Info()
}

// Unwrap implements the errors.Unwrap interface and allows callers to use the
// errors.Is() and errors.As() functions effectively for any wrapped errors.
func (e *Err) Unwrap() error {
	return e.Wrapped
}
