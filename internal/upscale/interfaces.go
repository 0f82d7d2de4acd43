package upscale

import (
	"context"

	"github.com/ytget/image-scaler/internal/model"
)

// Upscaler defines the interface the batch processor uses for the upscale path.
type Upscaler interface {
	ModelName(scale model.ScaleFactor) string
	CheckModel(scale model.ScaleFactor) error
	Upscale(ctx context.Context, inputPath, outputDir string, scale model.ScaleFactor) error
}

// Invoker runs one super-resolution request to completion.
type Invoker interface {
	Invoke(ctx context.Context, req Request) error
}

// InvokerFunc adapts an in-process function to the Invoker interface
type InvokerFunc func(ctx context.Context, req Request) error

// Invoke calls f(ctx, req)
func (f InvokerFunc) Invoke(ctx context.Context, req Request) error {
	return f(ctx, req)
}
