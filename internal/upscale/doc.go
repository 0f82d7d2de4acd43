package upscale

// Package upscale drives the external Real-ESRGAN super-resolution executor.
// It resolves the model name for a scale factor, checks that the weights file
// is present, and invokes the inference script either as a subprocess or
// through an in-process function.
