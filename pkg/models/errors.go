package models

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindValidation
	KindMissingDependency
	KindExternalTool
	KindUnexpected
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindValidation:
		return "validation error"
	case KindMissingDependency:
		return "missing dependency"
	case KindExternalTool:
		return "external tool error"
	case KindUnexpected:
		return "unexpected error"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// OperationError is the error type produced while processing a single file.
type OperationError struct {
	Kind ErrorKind
	Path string
	Msg  string
	Err  error
}

func NewError(kind ErrorKind, path, msg string, err error) *OperationError {
	return &OperationError{Kind: kind, Path: path, Msg: msg, Err: err}
}

func (e *OperationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err. Anything that is not an OperationError
// counts as unexpected.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return KindUnexpected
}
