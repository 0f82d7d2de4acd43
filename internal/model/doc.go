package model

// Package model defines the data the batch scaler passes around: the immutable
// Job built when a run is triggered, per-item status, progress counters, the
// run report, and the error taxonomy shared by all other packages.
