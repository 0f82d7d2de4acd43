package model

// ItemStatus represents the processing state of a single input in a batch
type ItemStatus string

const (
	// ItemStatusPending means the item has not been reached yet
	ItemStatusPending ItemStatus = "Pending"

	// ItemStatusRunning means the item is being upscaled or downscaled
	ItemStatusRunning ItemStatus = "Running"

	// ItemStatusCompleted means the item was processed successfully
	ItemStatusCompleted ItemStatus = "Completed"

	// ItemStatusError means the item failed and was skipped
	ItemStatusError ItemStatus = "Error"
)

// String returns the string representation of ItemStatus
func (s ItemStatus) String() string {
	return string(s)
}

// IsActive returns true if the item is currently being processed
func (s ItemStatus) IsActive() bool {
	return s == ItemStatusRunning
}

// IsFinished returns true if the item reached a terminal state (completed or error)
func (s ItemStatus) IsFinished() bool {
	return s == ItemStatusCompleted || s == ItemStatusError
}
