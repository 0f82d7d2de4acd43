package model

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestProgress_AdvanceNeverExceedsTotal(t *testing.T) {
	var p Progress
	p.Start(3)

	for i := 0; i < 5; i++ {
		p.Advance()
	}

	if p.Completed != 3 {
		t.Errorf("Expected completed 3, got %d", p.Completed)
	}
	if !p.Done() {
		t.Error("Expected progress to be done")
	}
	if p.Fraction() != 1.0 {
		t.Errorf("Expected fraction 1.0, got %f", p.Fraction())
	}
}

func TestProgress_Reset(t *testing.T) {
	p := Progress{Total: 4, Completed: 2}
	p.Reset()

	if p.Total != 0 || p.Completed != 0 {
		t.Errorf("Expected zero progress after reset, got %+v", p)
	}
	if p.Done() {
		t.Error("Empty progress must not be done")
	}
	if p.Fraction() != 0 {
		t.Errorf("Expected fraction 0, got %f", p.Fraction())
	}
}

func TestProgressLabel(t *testing.T) {
	tests := []struct {
		index, total int
		op           Operation
		file         string
		scale        ScaleFactor
		expected     string
	}{
		{1, 3, OperationUpscale, "photo.png", Scale2, "[1/3] Upscale photo.png x2"},
		{3, 3, OperationDownscale, "cat.PNG", Scale4, "[3/3] Downscale cat.PNG x4"},
	}

	for _, tt := range tests {
		got := ProgressLabel(tt.index, tt.total, tt.op, tt.file, tt.scale)
		if got != tt.expected {
			t.Errorf("ProgressLabel() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestReport_Duration(t *testing.T) {
	start := time.Now()
	r := &Report{StartedAt: start}
	if r.Duration() != 0 {
		t.Error("Unfinished report should have zero duration")
	}

	r.FinishedAt = start.Add(2 * time.Second)
	if r.Duration() != 2*time.Second {
		t.Errorf("Expected 2s, got %v", r.Duration())
	}

	if r.HasFailures() {
		t.Error("Expected no failures")
	}
	r.Failures = append(r.Failures, ItemFailure{Input: "a.png", Err: errors.New("boom")})
	if !r.HasFailures() {
		t.Error("Expected failures")
	}
}

func TestErrorTaxonomy(t *testing.T) {
	cause := errors.New("exit status 1")

	var err error = &InferenceError{Input: "a.png", Err: cause}
	if !errors.Is(err, ErrInference) || !errors.Is(err, cause) {
		t.Errorf("InferenceError should match ErrInference and its cause: %v", err)
	}

	err = fmt.Errorf("batch: %w", &IOError{Op: "write", Path: "/out/a.png", Err: cause})
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Op != "write" {
		t.Errorf("Expected wrapped IOError, got %v", err)
	}
	if !errors.Is(err, ErrIO) {
		t.Error("IOError should match ErrIO")
	}

	err = &ModelNotFoundError{Model: "RealESRGAN_x4plus", Path: "weights/RealESRGAN_x4plus.pth"}
	if !errors.Is(err, ErrModelNotFound) {
		t.Error("ModelNotFoundError should match ErrModelNotFound")
	}
	if err.Error() != "RealESRGAN_x4plus missing: weights/RealESRGAN_x4plus.pth" {
		t.Errorf("Unexpected message: %s", err.Error())
	}
}
