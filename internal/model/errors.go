package model

import (
	"errors"
	"fmt"
)

// Errors that abort a run before any item is processed
var (
	ErrMissingInput     = errors.New("no input selected")
	ErrMissingOutputDir = errors.New("no output folder selected")
	ErrNoMatchingFiles  = errors.New("no PNG files found in folder")
	ErrInvalidJob       = errors.New("invalid job")
	ErrModelNotFound    = errors.New("model not found")
	ErrBusy             = errors.New("a batch is already running")
)

// Per-item failure kinds
var (
	ErrInference = errors.New("inference error")
	ErrIO        = errors.New("io error")
)

// ModelNotFoundError reports a missing weights file for a model
type ModelNotFoundError struct {
	Model string
	Path  string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("%s missing: %s", e.Model, e.Path)
}

// Is makes errors.Is(err, ErrModelNotFound) match
func (e *ModelNotFoundError) Is(target error) bool {
	return target == ErrModelNotFound
}

// InferenceError wraps a failed call to the super-resolution executor for one input
type InferenceError struct {
	Input string
	Err   error
}

func (e *InferenceError) Error() string {
	return fmt.Sprintf("inference failed for %s: %v", e.Input, e.Err)
}

func (e *InferenceError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrInference) match
func (e *InferenceError) Is(target error) bool {
	return target == ErrInference
}

// IOError wraps a read, decode, resize or write failure for one file
type IOError struct {
	Op   string // "read", "decode", "resize", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrIO) match
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
