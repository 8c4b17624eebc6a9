package checklist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// Recoverable submission outcomes. The UI surfaces them as warnings
// and lets the user correct the task and retry; nothing is persisted.
var (
	// ErrTaskPending is returned when submitting a task that has not
	// been marked realized or not realized.
	ErrTaskPending = errors.New("task must be marked realized or not realized")

	// ErrObservationRequired is returned when submitting a
	// not-realized task without an observation.
	ErrObservationRequired = errors.New("observation required for tasks not realized")
)

// ResponseLog is the slice of the store the recorder needs.
type ResponseLog interface {
	AppendResponse(ctx context.Context, r model.ChecklistResponse) error
}

// Recorder turns answered tasks into response log rows.
type Recorder struct {
	log ResponseLog
}

// NewRecorder creates a Recorder over the given response log.
func NewRecorder(log ResponseLog) *Recorder {
	return &Recorder{log: log}
}

// ValidateSubmission checks whether a task may be logged individually:
// its state must not be Pending, and a NotRealized task must carry an
// observation. Finalize skips this check on purpose.
func ValidateSubmission(task model.Task) error {
	if task.State == model.StatePending {
		return ErrTaskPending
	}
	if task.State == model.StateNotRealized && task.Observation == "" {
		return ErrObservationRequired
	}
	return nil
}

// Submit validates the task and appends one response row attributed to
// the session's user. A validation error means nothing was written.
func (r *Recorder) Submit(ctx context.Context, task model.Task, session model.Session, now time.Time) error {
	if err := ValidateSubmission(task); err != nil {
		return err
	}
	return r.log.AppendResponse(ctx, responseFromTask(task, session.Username, now))
}

// FinalizeAll appends one response row for every task in every
// section, regardless of completion state or observation; unset tasks
// are logged as-is. It returns the plain-text summary of the whole
// checklist.
func (r *Recorder) FinalizeAll(ctx context.Context, cl model.Checklist, session model.Session, now time.Time) (string, error) {
	for _, section := range cl.Sections {
		for _, task := range section.Tasks {
			if err := r.log.AppendResponse(ctx, responseFromTask(task, session.Username, now)); err != nil {
				return "", fmt.Errorf("finalizing task %q: %w", task.Description, err)
			}
		}
	}
	return Summary(cl, session.Username), nil
}

// responseFromTask flattens a task into a response log row.
func responseFromTask(task model.Task, username string, now time.Time) model.ChecklistResponse {
	return model.ChecklistResponse{
		ThemeID:     task.ThemeID,
		QuestionID:  task.QuestionID,
		RecordedAt:  now,
		Username:    username,
		Observation: task.Observation,
		Completed:   task.State.Completed(),
	}
}

// Summary renders the checklist as plain text: the username, then each
// section title underlined with dashes, then one line per task.
func Summary(cl model.Checklist, username string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usuário: %s\n", username)

	for _, section := range cl.Sections {
		fmt.Fprintf(&b, "\n%s\n%s\n",
			section.Title,
			strings.Repeat("-", utf8.RuneCountInString(section.Title)),
		)
		for i := range section.Tasks {
			b.WriteString(section.Tasks[i].String())
			b.WriteByte('\n')
		}
	}

	return b.String()
}
