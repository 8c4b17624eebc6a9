package model

import "fmt"

// CompletionState is the tri-state answer for a checklist task.
// Pending is the zero value so freshly built tasks start unset.
type CompletionState int

const (
	StatePending CompletionState = iota
	StateRealized
	StateNotRealized
)

// Label returns the user-facing label for the state.
func (s CompletionState) Label() string {
	switch s {
	case StateRealized:
		return "Realizado"
	case StateNotRealized:
		return "Não realizado"
	default:
		return "Pendente"
	}
}

// Completed returns the nullable-boolean form stored in the
// checklist_responses.completed column: nil for Pending, true for
// Realized, false for NotRealized.
func (s CompletionState) Completed() *bool {
	switch s {
	case StateRealized:
		v := true
		return &v
	case StateNotRealized:
		v := false
		return &v
	default:
		return nil
	}
}

// StateFromCompleted maps a stored nullable boolean back to its state.
func StateFromCompleted(completed *bool) CompletionState {
	switch {
	case completed == nil:
		return StatePending
	case *completed:
		return StateRealized
	default:
		return StateNotRealized
	}
}

// Task is a session-local, answerable instance of a catalog question.
// It is built fresh every time the checklist view is constructed and
// discarded when the view cycle ends; only submitted answers survive,
// as rows in the response log.
type Task struct {
	Description string
	ThemeID     int64

	// QuestionID is the catalog identifier resolved from
	// (Description, ThemeID). nil means the pair is unknown to the
	// catalog, which is a data-integrity warning condition.
	QuestionID *int64

	State       CompletionState
	Observation string
}

// MarkRealized sets the task to Realized. Transitions are
// unconditional overwrites; any state is reachable from any other.
func (t *Task) MarkRealized() { t.State = StateRealized }

// MarkNotRealized sets the task to NotRealized.
func (t *Task) MarkNotRealized() { t.State = StateNotRealized }

// ResetCompletion returns the task to Pending.
func (t *Task) ResetCompletion() { t.State = StatePending }

// SetObservation overwrites the free-text observation.
func (t *Task) SetObservation(text string) { t.Observation = text }

// String renders the task as a summary line.
func (t *Task) String() string {
	return fmt.Sprintf("%s - %s - %s", t.Description, t.State.Label(), t.Observation)
}

// Section groups the tasks of one theme for display.
type Section struct {
	Title   string
	ThemeID int64
	Tasks   []Task
}

// AddTask appends a task to the section.
func (s *Section) AddTask(task Task) {
	s.Tasks = append(s.Tasks, task)
}

// Checklist is the full per-session view model, built fresh from the
// reference catalog on every render cycle.
type Checklist struct {
	Title    string
	Sections []Section
}

// AddSection appends a section to the checklist.
func (c *Checklist) AddSection(section Section) {
	c.Sections = append(c.Sections, section)
}

// TaskCount returns the total number of tasks across all sections.
func (c *Checklist) TaskCount() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Tasks)
	}
	return n
}
