package entity

// Status represents the lifecycle state of an investment or withdrawal request.
// The only legal transition is pending -> completed.
type Status string

// Status values
const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is one of the two known states
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// CanComplete reports whether the state may move to completed
func (s Status) CanComplete() bool {
	return s == StatusPending
}
