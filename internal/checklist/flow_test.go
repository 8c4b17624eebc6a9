package checklist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Paul0Junior/checklist-eng/internal/checklist"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/tests/testutil"
)

// findTask locates a task in the checklist by its description.
func findTask(t *testing.T, cl *model.Checklist, description string) *model.Task {
	t.Helper()
	for si := range cl.Sections {
		for ti := range cl.Sections[si].Tasks {
			if cl.Sections[si].Tasks[ti].Description == description {
				return &cl.Sections[si].Tasks[ti]
			}
		}
	}
	t.Fatalf("task %q not found in checklist", description)
	return nil
}

// Full register → login → answer → submit cycle against a real store.
func TestDailyChecklistFlow(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	// Register and log in.
	require.NoError(t, s.RegisterUser(ctx, "alice", "secret123"))
	user, err := s.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	session := model.NewSession(user.Username)
	require.True(t, session.Authenticated)

	builder := checklist.NewBuilder(s, "", nil)
	recorder := checklist.NewRecorder(s)

	cl, err := builder.Build(ctx)
	require.NoError(t, err)

	now := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

	// Realized with an empty observation is accepted.
	first := findTask(t, &cl, "Confirmar a execução bem-sucedida de todos os jobs agendados.")
	first.MarkRealized()
	require.NoError(t, recorder.Submit(ctx, *first, session, now))

	responses, err := s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 1)
	require.Equal(t, model.StateRealized, responses[0].State())
	require.Empty(t, responses[0].Observation)

	// Not realized without an observation is rejected; nothing is
	// written and the user may correct and retry.
	second := findTask(t, &cl, "Identificar e documentar qualquer job que falhou.")
	second.MarkNotRealized()
	err = recorder.Submit(ctx, *second, session, now)
	require.ErrorIs(t, err, checklist.ErrObservationRequired)

	responses, err = s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 1)

	// Adding the observation makes the retry succeed.
	second.SetObservation("disco cheio")
	require.NoError(t, recorder.Submit(ctx, *second, session, now))

	responses, err = s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	require.Equal(t, model.StateNotRealized, responses[1].State())
	require.Equal(t, "disco cheio", responses[1].Observation)

	// Finalizing afterwards logs every task once more: per-task rows
	// plus finalize rows are expected duplication, not a defect.
	_, err = recorder.FinalizeAll(ctx, cl, session, now)
	require.NoError(t, err)

	count, err := s.CountResponses(ctx)
	require.NoError(t, err)
	require.Equal(t, 2+cl.TaskCount(), count)
}
