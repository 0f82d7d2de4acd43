package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/model"
	"github.com/ytget/image-scaler/internal/platform"
	"github.com/ytget/image-scaler/internal/upscale"
)

// JobIDPrefix is prepended to generated job IDs
const JobIDPrefix = "job-"

// Processor executes one job at a time
type Processor struct {
	upscaler   upscale.Upscaler
	downscaler downscale.Downscaler

	mu       sync.Mutex
	running  bool
	progress model.Progress
	onUpdate func(model.ItemUpdate) // callback for UI updates
}

// NewProcessor creates a batch processor. Either collaborator may be nil if
// the caller never runs that operation.
func NewProcessor(upscaler upscale.Upscaler, downscaler downscale.Downscaler) *Processor {
	return &Processor{
		upscaler:   upscaler,
		downscaler: downscaler,
	}
}

// SetUpdateCallback sets the function called before and after every item.
// It runs on the goroutine that called Run.
func (p *Processor) SetUpdateCallback(callback func(model.ItemUpdate)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUpdate = callback
}

// Progress returns a snapshot of the current progress counter
func (p *Processor) Progress() model.Progress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.progress
}

// IsRunning reports whether a job is in flight
func (p *Processor) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// Run processes job sequentially and blocks until every input was handled.
// The returned error is non-nil only when the run was aborted: a failed
// precondition, a missing model, or ctx cancellation. Per-item failures are
// listed in the report.
func (p *Processor) Run(ctx context.Context, job model.Job) (*model.Report, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if err := p.checkCollaborators(job); err != nil {
		return nil, err
	}
	if job.Operation == model.OperationUpscale {
		if err := p.upscaler.CheckModel(job.Scale); err != nil {
			return nil, err
		}
	}

	if !p.begin(len(job.Inputs)) {
		return nil, model.ErrBusy
	}
	defer p.finish()

	if err := platform.CreateDirectoryIfNotExists(job.OutputDir); err != nil {
		return nil, &model.IOError{Op: "write", Path: job.OutputDir, Err: err}
	}

	if job.ID == "" {
		job.ID = generateJobID()
	}
	inputs := make([]string, len(job.Inputs))
	copy(inputs, job.Inputs)
	total := len(inputs)

	report := &model.Report{
		JobID:     job.ID,
		Operation: job.Operation,
		Scale:     job.Scale,
		OutputDir: job.OutputDir,
		Total:     total,
		StartedAt: time.Now(),
	}

	log.Printf("Job %s: %s x%d of %d file(s) into %s", job.ID, job.Operation, job.Scale, total, job.OutputDir)

	modelVerified := false
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			report.FinishedAt = time.Now()
			log.Printf("Job %s cancelled after %d/%d item(s)", job.ID, i, total)
			return report, err
		}

		index := i + 1
		label := model.ProgressLabel(index, total, job.Operation, filepath.Base(input), job.Scale)
		p.notifyUpdate(model.ItemUpdate{
			JobID:    job.ID,
			Index:    index,
			Input:    input,
			Status:   model.ItemStatusRunning,
			Label:    label,
			Progress: p.Progress(),
		})

		var (
			output string
			err    error
		)
		switch job.Operation {
		case model.OperationUpscale:
			if !modelVerified {
				// weights may have been removed since the pre-run check
				if err := p.upscaler.CheckModel(job.Scale); err != nil {
					report.FinishedAt = time.Now()
					return report, err
				}
				modelVerified = true
			}
			err = p.upscaler.Upscale(ctx, input, job.OutputDir, job.Scale)
		case model.OperationDownscale:
			output, err = p.downscaler.Downscale(input, job.OutputDir, job.Scale)
		}

		update := model.ItemUpdate{
			JobID:  job.ID,
			Index:  index,
			Input:  input,
			Output: output,
			Label:  label,
		}
		if err != nil {
			log.Printf("Job %s: %s failed: %v", job.ID, label, err)
			report.Failures = append(report.Failures, model.ItemFailure{Input: input, Err: err})
			update.Status = model.ItemStatusError
			update.Err = err
		} else {
			report.Succeeded++
			if output != "" {
				report.Outputs = append(report.Outputs, output)
			}
			update.Status = model.ItemStatusCompleted
		}

		update.Progress = p.advance()
		p.notifyUpdate(update)
	}

	report.FinishedAt = time.Now()
	log.Printf("Job %s finished: %d/%d succeeded in %s", job.ID, report.Succeeded, total, report.Duration().Round(time.Millisecond))
	return report, nil
}

func (p *Processor) checkCollaborators(job model.Job) error {
	switch {
	case job.Operation == model.OperationUpscale && p.upscaler == nil:
		return errors.New("upscaling is not configured")
	case job.Operation == model.OperationDownscale && p.downscaler == nil:
		return errors.New("downscaling is not configured")
	}
	return nil
}

// begin claims the processor and resets progress for total items
func (p *Processor) begin(total int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return false
	}
	p.running = true
	p.progress.Start(total)
	return true
}

// finish releases the processor and resets progress for the next batch
func (p *Processor) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.running = false
	p.progress.Reset()
}

func (p *Processor) advance() model.Progress {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress.Advance()
	return p.progress
}

// notifyUpdate calls the update callback if set
func (p *Processor) notifyUpdate(update model.ItemUpdate) {
	p.mu.Lock()
	callback := p.onUpdate
	p.mu.Unlock()

	if callback != nil {
		callback(update)
	}
}

// generateJobID generates a time-ordered unique job ID using UUID v7
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(JobIDPrefix+"%d", time.Now().UnixNano())
	}
	return JobIDPrefix + id.String()
}
