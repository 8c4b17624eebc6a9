package checklist_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Paul0Junior/checklist-eng/internal/checklist"
	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/tests/testutil"
)

var submitTime = time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)

func TestBuildChecklistStructure(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	builder := checklist.NewBuilder(s, "", nil)
	cl, err := builder.Build(ctx)
	require.NoError(t, err)

	require.Equal(t, model.DefaultChecklistTitle, cl.Title)
	require.Len(t, cl.Sections, 4)

	wantTitles := []string{
		"1. Validação de Jobs",
		"2. Validação de Tabelas",
		"3. Espaço em Disco de Servidores de Coleta e Banco de Dados",
		"4. Reinicialização de Serviços",
	}
	wantCounts := []int{5, 6, 6, 7}

	for i, section := range cl.Sections {
		require.Equal(t, wantTitles[i], section.Title)
		require.Equal(t, int64(i+1), section.ThemeID)
		require.Len(t, section.Tasks, wantCounts[i])

		// Every task built from the catalog resolves its question id
		// and starts pending with no observation.
		for _, task := range section.Tasks {
			require.NotNil(t, task.QuestionID)
			require.Equal(t, model.StatePending, task.State)
			require.Empty(t, task.Observation)
		}
	}

	require.Equal(t, 24, cl.TaskCount())
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name        string
		state       model.CompletionState
		observation string
		wantErr     error
	}{
		{"pending rejected", model.StatePending, "", checklist.ErrTaskPending},
		{"pending with observation still rejected", model.StatePending, "obs", checklist.ErrTaskPending},
		{"not realized without observation rejected", model.StateNotRealized, "", checklist.ErrObservationRequired},
		{"not realized with observation accepted", model.StateNotRealized, "disco cheio", nil},
		{"realized without observation accepted", model.StateRealized, "", nil},
		{"realized with observation accepted", model.StateRealized, "ok", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.Task{
				Description: "Reindexar tabelas, se necessário.",
				ThemeID:     2,
				State:       tt.state,
				Observation: tt.observation,
			}
			err := checklist.ValidateSubmission(task)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSubmitRejectedTaskWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	recorder := checklist.NewRecorder(s)
	session := model.NewSession("alice")

	task := model.Task{Description: "Reindexar tabelas, se necessário.", ThemeID: 2}

	err := recorder.Submit(ctx, task, session, submitTime)
	require.ErrorIs(t, err, checklist.ErrTaskPending)

	task.MarkNotRealized()
	err = recorder.Submit(ctx, task, session, submitTime)
	require.ErrorIs(t, err, checklist.ErrObservationRequired)

	count, err := s.CountResponses(ctx)
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestSubmitAcceptedTaskAppendsOneRow(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	recorder := checklist.NewRecorder(s)
	session := model.NewSession("alice")

	questionID := int64(11)
	task := model.Task{
		Description: "Reindexar tabelas, se necessário.",
		ThemeID:     2,
		QuestionID:  &questionID,
	}
	task.MarkNotRealized()
	task.SetObservation("disco cheio")

	require.NoError(t, recorder.Submit(ctx, task, session, submitTime))

	responses, err := s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 1)

	r := responses[0]
	require.Equal(t, int64(2), r.ThemeID)
	require.Equal(t, questionID, *r.QuestionID)
	require.Equal(t, submitTime, r.RecordedAt)
	require.Equal(t, "disco cheio", r.Observation)
	require.Equal(t, model.StateNotRealized, r.State())
}

// Finalize logs every task, including pending ones with no
// observation, and never runs the per-task precondition.
func TestFinalizeAllLogsEveryTask(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	builder := checklist.NewBuilder(s, "", nil)
	recorder := checklist.NewRecorder(s)
	session := model.NewSession("alice")

	cl, err := builder.Build(ctx)
	require.NoError(t, err)

	// Answer a few tasks; leave the rest untouched.
	cl.Sections[0].Tasks[0].MarkRealized()
	cl.Sections[1].Tasks[2].MarkNotRealized()
	cl.Sections[1].Tasks[2].SetObservation("contagens divergentes")

	summaryText, err := recorder.FinalizeAll(ctx, cl, session, submitTime)
	require.NoError(t, err)

	count, err := s.CountResponses(ctx)
	require.NoError(t, err)
	require.Equal(t, cl.TaskCount(), count)

	responses, err := s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)

	states := map[model.CompletionState]int{}
	for _, r := range responses {
		states[r.State()]++
	}
	require.Equal(t, 1, states[model.StateRealized])
	require.Equal(t, 1, states[model.StateNotRealized])
	require.Equal(t, cl.TaskCount()-2, states[model.StatePending])

	require.True(t, strings.HasPrefix(summaryText, "Usuário: alice\n"))
}

func TestSummaryFormat(t *testing.T) {
	var cl model.Checklist
	cl.Title = model.DefaultChecklistTitle

	section := model.Section{Title: "1. Validação de Jobs", ThemeID: 1}
	done := model.Task{Description: "Analisar logs em busca de erros ou avisos.", ThemeID: 1}
	done.MarkRealized()
	pending := model.Task{Description: "Reexecutar jobs falhados, se necessário.", ThemeID: 1}
	section.AddTask(done)
	section.AddTask(pending)
	cl.AddSection(section)

	got := checklist.Summary(cl, "alice")

	want := strings.Join([]string{
		"Usuário: alice",
		"",
		"1. Validação de Jobs",
		"--------------------",
		"Analisar logs em busca de erros ou avisos. - Realizado - ",
		"Reexecutar jobs falhados, se necessário. - Pendente - ",
		"",
	}, "\n")
	require.Equal(t, want, got)
}
