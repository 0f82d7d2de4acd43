package downscale

// Package downscale shrinks images by an integer factor with a high-quality
// resampling filter and writes them next to each other in the output folder
// as <base>_downx<factor><ext>.
