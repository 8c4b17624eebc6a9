package model

import "time"

// TimestampLayout is the format used for the datetime column of
// checklist_responses.
const TimestampLayout = "2006-01-02 15:04:05"

// ChecklistResponse is one appended answer in the response log.
// The log is write-only: the same question may be recorded many times
// (once per explicit submit, once more at finalize), and that
// duplication is expected history, not something to dedupe.
type ChecklistResponse struct {
	ID      int64
	ThemeID int64

	// QuestionID is nil when the submitted task never resolved
	// against the catalog.
	QuestionID *int64

	RecordedAt  time.Time
	Username    string
	Observation string

	// Completed is nil for Pending, true for Realized, false for
	// NotRealized. A nil value means "not decided" and must never be
	// read as "not realized".
	Completed *bool
}

// State returns the tri-state view of the Completed column.
func (r ChecklistResponse) State() CompletionState {
	return StateFromCompleted(r.Completed)
}
