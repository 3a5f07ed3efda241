// Package errors provides structured error handling for gridview.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid widget configuration value.
	KindConfig
	// KindIndex indicates a cell index outside the grid.
	KindIndex
	// KindParsing indicates a configuration file or value that failed to parse.
	KindParsing
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindIndex:
		return "index"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sentinel errors, matched with errors.Is through the typed errors below.
var (
	ErrInvalidDimension = stderrors.New("grid dimension must be at least 1")
	ErrNegativeSpacing  = stderrors.New("spacing must not be negative")
	ErrIndexOutOfRange  = stderrors.New("cell index out of range")
	ErrUnknownShape     = stderrors.New("unknown shape type")
	ErrNoRoom           = stderrors.New("no room for cells")
)

// GridError represents a structured error raised by the grid widget or its hosts.
type GridError struct {
	// Op is the operation that failed (e.g., "gridview.SetNumColumns").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error, if captured.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *GridError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *GridError) Unwrap() error {
	return e.Err
}

// New builds a GridError for op.
func New(op string, kind ErrorKind, err error) *GridError {
	return &GridError{Op: op, Kind: kind, Err: err}
}

// DimensionError reports a configuration field with an unusable value.
type DimensionError struct {
	// Field is the configuration field name (e.g., "numColumns").
	Field string
	// Value is the rejected value.
	Value float64
}

func (e *DimensionError) Error() string {
	if e.Field == "numRows" || e.Field == "numColumns" {
		return fmt.Sprintf("%s = %g: %v", e.Field, e.Value, ErrInvalidDimension)
	}
	return fmt.Sprintf("%s = %g: %v", e.Field, e.Value, ErrNegativeSpacing)
}

func (e *DimensionError) Unwrap() error {
	if e.Field == "numRows" || e.Field == "numColumns" {
		return ErrInvalidDimension
	}
	return ErrNegativeSpacing
}

// IndexError reports a (row, column) outside a rows×columns grid.
type IndexError struct {
	Row, Column   int
	Rows, Columns int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("cell (%d, %d) outside %dx%d grid", e.Row, e.Column, e.Rows, e.Columns)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// ParseError reports a value that could not be interpreted.
type ParseError struct {
	// Field is the configuration field being parsed.
	Field string
	// Value is the raw input.
	Value string
	// Suggestion is the closest accepted value, if one is near enough.
	Suggestion string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "gridview.OnTouch").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by gridview.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *GridError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's tree that matches target and sets target
// to that error value.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Join returns an error wrapping errs, discarding nils.
func Join(errs ...error) error { return stderrors.Join(errs...) }
