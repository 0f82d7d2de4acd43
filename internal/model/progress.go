package model

import (
	"fmt"
	"time"
)

// Progress counts processed items of the running batch
type Progress struct {
	Total     int
	Completed int
}

// Start resets the counter for a batch of total items
func (p *Progress) Start(total int) {
	p.Total = total
	p.Completed = 0
}

// Advance marks one more item as processed. It never goes past Total.
func (p *Progress) Advance() {
	if p.Completed < p.Total {
		p.Completed++
	}
}

// Reset returns the counter to its initial state
func (p *Progress) Reset() {
	p.Total = 0
	p.Completed = 0
}

// Done reports whether every item was processed
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed == p.Total
}

// Fraction returns completed/total in [0, 1]
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}

// ProgressLabel formats the per-item status line: "[i/total] <operation> <filename> x<factor>"
func ProgressLabel(index, total int, op Operation, filename string, scale ScaleFactor) string {
	return fmt.Sprintf("[%d/%d] %s %s x%d", index, total, op, filename, int(scale))
}

// ItemUpdate is published by the processor before and after each item
type ItemUpdate struct {
	JobID    string
	Index    int // 1-based position in the batch
	Input    string
	Output   string // set on success when the output path is known
	Status   ItemStatus
	Err      error
	Label    string
	Progress Progress
}

// ItemFailure records one skipped input
type ItemFailure struct {
	Input string
	Err   error
}

// Report summarizes a finished batch
type Report struct {
	JobID      string
	Operation  Operation
	Scale      ScaleFactor
	OutputDir  string
	Total      int
	Succeeded  int
	Outputs    []string
	Failures   []ItemFailure
	StartedAt  time.Time
	FinishedAt time.Time
}

// HasFailures reports whether any item was skipped
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// Duration returns how long the batch took
func (r *Report) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
