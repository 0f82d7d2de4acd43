package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Operation selects what a batch does to every input
type Operation string

const (
	OperationUpscale   Operation = "Upscale"
	OperationDownscale Operation = "Downscale"
)

// String returns the display name of the operation
func (op Operation) String() string {
	return string(op)
}

// IsValid reports whether op is one of the supported operations
func (op Operation) IsValid() bool {
	return op == OperationUpscale || op == OperationDownscale
}

// ParseOperation accepts "upscale"/"downscale" in any case
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "upscale", "up":
		return OperationUpscale, nil
	case "downscale", "down":
		return OperationDownscale, nil
	}
	return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidJob, s)
}

// ScaleFactor is the up/down scaling ratio
type ScaleFactor int

const (
	Scale2 ScaleFactor = 2
	Scale4 ScaleFactor = 4

	DefaultScale = Scale2
)

// SupportedScales lists the factors offered to the user, in display order
var SupportedScales = []ScaleFactor{Scale2, Scale4}

// IsValid reports whether f is a supported factor
func (f ScaleFactor) IsValid() bool {
	return f == Scale2 || f == Scale4
}

// String returns the factor as a plain number ("2", "4")
func (f ScaleFactor) String() string {
	return strconv.Itoa(int(f))
}

// ParseScaleFactor parses "2", "4", "x2" or "x4"
func ParseScaleFactor(s string) (ScaleFactor, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "x")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: scale factor %q is not a number", ErrInvalidJob, s)
	}
	f := ScaleFactor(n)
	if !f.IsValid() {
		return 0, fmt.Errorf("%w: scale factor must be 2 or 4, got %d", ErrInvalidJob, n)
	}
	return f, nil
}

// InputMode selects how inputs are picked: a single file or every PNG in a folder
type InputMode string

const (
	InputModeFile   InputMode = "File"
	InputModeFolder InputMode = "Folder"
)

// Job is one batch run. It is built when Run is triggered and must not be
// modified while the batch is in flight.
type Job struct {
	ID        string
	Inputs    []string
	Operation Operation
	Scale     ScaleFactor
	OutputDir string
}

// NewJob creates a job, copying inputs so later changes by the caller do not leak in
func NewJob(inputs []string, op Operation, scale ScaleFactor, outputDir string) Job {
	copied := make([]string, len(inputs))
	copy(copied, inputs)
	return Job{
		Inputs:    copied,
		Operation: op,
		Scale:     scale,
		OutputDir: strings.TrimSpace(outputDir),
	}
}

// Validate checks the run preconditions without touching the file system
func (j Job) Validate() error {
	if len(j.Inputs) == 0 {
		return ErrMissingInput
	}
	if j.OutputDir == "" {
		return ErrMissingOutputDir
	}
	if !j.Operation.IsValid() {
		return fmt.Errorf("%w: unknown operation %q", ErrInvalidJob, j.Operation)
	}
	if !j.Scale.IsValid() {
		return fmt.Errorf("%w: scale factor must be 2 or 4, got %d", ErrInvalidJob, j.Scale)
	}
	return nil
}
