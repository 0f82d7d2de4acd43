package batch

// Package batch runs a Job: it checks the run preconditions, then processes
// every input in order through the upscale or downscale path, publishing an
// update before and after each item. A failed item is recorded and skipped;
// only precondition failures abort the run.
