package domain

// Status is the review verdict reported by the status endpoint.
// The set is closed: a value outside it coming over the wire is an
// error condition, not something to pass through.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// RawResponse is the decoded but not yet validated endpoint payload.
// No shape guarantees until it passes Validate.
type RawResponse any

// StatusPage is a validated response. The homework list may be empty;
// items stay raw here — StatusMessage checks their fields.
type StatusPage struct {
	Homeworks   []any
	CurrentDate int64
}

// Snapshot is the informational record written after a confirmed
// delivery, for status-bar consumers. It is never read back.
type Snapshot struct {
	Homework  string
	Status    string
	Message   string
	Retrieved int64
}
