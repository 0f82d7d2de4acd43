package upscale

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Command-line flags of inference_realesrgan.py
const (
	FlagInput    = "-i"
	FlagModel    = "-n"
	FlagOutScale = "--outscale"
	FlagFP32     = "--fp32"
	FlagOutput   = "-o"

	// Grace period for pipes after the process is killed
	killWaitDelay = 5 * time.Second

	maxLineSize = 1024 * 1024
)

// ScriptInvoker runs the inference script as a child process
type ScriptInvoker struct {
	Python string
	Script string
	Dir    string // working directory, so the script finds weights/
}

// NewScriptInvoker builds a subprocess invoker from cfg
func NewScriptInvoker(cfg Config) *ScriptInvoker {
	python := cfg.Python
	if python == "" {
		python = DefaultPython()
	}
	if cfg.Script == "" {
		cfg.Script = DefaultScript
	}
	return &ScriptInvoker{
		Python: python,
		Script: cfg.ScriptPath(),
		Dir:    cfg.AppDir,
	}
}

// BuildArgs builds the interpreter arguments for req
func (si *ScriptInvoker) BuildArgs(req Request) []string {
	args := []string{
		si.Script,
		FlagInput, req.Input,
		FlagModel, req.Model,
		FlagOutScale, strconv.Itoa(req.OutScale),
	}
	if req.FullPrecision {
		args = append(args, FlagFP32)
	}
	return append(args, FlagOutput, req.OutputDir)
}

// Invoke runs the script and blocks until it exits. Script output is copied
// to the log line by line.
func (si *ScriptInvoker) Invoke(ctx context.Context, req Request) error {
	cmd := exec.CommandContext(ctx, si.Python, si.BuildArgs(req)...)
	cmd.Dir = si.Dir
	cmd.WaitDelay = killWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to create stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to create stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", si.Python, err)
	}

	var lastErrLine string
	var g errgroup.Group
	g.Go(func() error {
		forwardLines(stdout, req.Model, nil)
		return nil
	})
	g.Go(func() error {
		forwardLines(stderr, req.Model, &lastErrLine)
		return nil
	})
	_ = g.Wait()

	if err := cmd.Wait(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if lastErrLine != "" {
			return fmt.Errorf("%w: %s", err, lastErrLine)
		}
		return err
	}
	return nil
}

// forwardLines logs every non-empty line of r; last, if set, receives the final one
func forwardLines(r io.Reader, prefix string, last *string) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Printf("[%s] %s", prefix, line)
		if last != nil {
			*last = line
		}
	}
	// keep the pipe drained so the child never blocks on a full buffer
	_, _ = io.Copy(io.Discard, r)
}
