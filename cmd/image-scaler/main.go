// Command image-scaler runs a batch upscale or downscale without the desktop UI.
//
//	image-scaler -input ./pics -output ./out -op upscale -scale 4
//
// Defaults come from SCALER_* environment variables, optionally set in a .env
// file found in the working directory or one of its parents.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ytget/image-scaler/internal/batch"
	"github.com/ytget/image-scaler/internal/config"
	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/model"
	"github.com/ytget/image-scaler/internal/platform"
	"github.com/ytget/image-scaler/internal/upscale"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	if cwd, err := os.Getwd(); err == nil {
		if path := config.LoadDotEnv(cwd); path != "" {
			log.Printf("Loaded environment from %s", path)
		}
	}
	env := config.LoadEnv()

	var (
		input       = flag.String("input", env.Input, "PNG file or folder of PNG files")
		output      = flag.String("output", env.Output, "output folder")
		opName      = flag.String("op", string(model.OperationUpscale), "operation: upscale or downscale")
		scaleName   = flag.String("scale", model.DefaultScale.String(), "scale factor: 2 or 4")
		filter      = flag.String("filter", env.Filter, fmt.Sprintf("downscale filter %v", downscale.FilterNames()))
		timeout     = flag.Duration("timeout", env.Timeout, "per-image upscale timeout, 0 for none")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("image-scaler %s\n", version)
		return 0
	}

	op, err := model.ParseOperation(*opName)
	if err != nil {
		return fail(err)
	}
	scale, err := model.ParseScaleFactor(*scaleName)
	if err != nil {
		return fail(err)
	}

	mode := platform.DetectInputMode(*input)
	inputs, err := platform.ResolveInputs(mode, *input)
	if err != nil {
		return fail(err)
	}

	downscaler, err := downscale.NewService(*filter)
	if err != nil {
		return fail(err)
	}
	upCfg := env.UpscaleConfig()
	upCfg.Timeout = *timeout
	upscaler := upscale.NewService(upCfg, nil)

	processor := batch.NewProcessor(upscaler, downscaler)
	processor.SetUpdateCallback(printUpdate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job := model.NewJob(inputs, op, scale, *output)
	report, err := processor.Run(ctx, job)
	if report != nil {
		printReport(report)
	}
	if err != nil {
		return fail(err)
	}
	if report.HasFailures() {
		return 1
	}
	return 0
}

func printUpdate(update model.ItemUpdate) {
	switch update.Status {
	case model.ItemStatusRunning:
		fmt.Println(update.Label)
	case model.ItemStatusError:
		fmt.Printf("  failed: %v\n", update.Err)
	case model.ItemStatusCompleted:
		if update.Output != "" {
			fmt.Printf("  -> %s\n", update.Output)
		}
	}
}

func printReport(report *model.Report) {
	fmt.Printf("\n%s x%d: %d/%d succeeded in %s\n",
		report.Operation, report.Scale, report.Succeeded, report.Total, report.Duration().Round(time.Millisecond))
	fmt.Printf("Results in: %s\n", report.OutputDir)
	for _, failure := range report.Failures {
		fmt.Printf("  %s: %v\n", filepath.Base(failure.Input), failure.Err)
	}
}

func fail(err error) int {
	var notFound *model.ModelNotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(os.Stderr, "Model not found: %s\nDownload the weights into %s first.\n", notFound.Model, notFound.Path)
		return 2
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
