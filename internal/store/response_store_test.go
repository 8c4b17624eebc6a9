package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Paul0Junior/checklist-eng/internal/model"
	"github.com/Paul0Junior/checklist-eng/tests/testutil"
)

func TestAppendAndReadBackResponses(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	now := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	questionID := int64(1)
	completed := true

	require.NoError(t, s.AppendResponse(ctx, model.ChecklistResponse{
		ThemeID:     1,
		QuestionID:  &questionID,
		RecordedAt:  now,
		Username:    "alice",
		Observation: "",
		Completed:   &completed,
	}))
	require.NoError(t, s.AppendResponse(ctx, model.ChecklistResponse{
		ThemeID:     3,
		QuestionID:  nil, // unresolved question: tolerated, logged upstream
		RecordedAt:  now,
		Username:    "alice",
		Observation: "disco cheio",
		Completed:   nil,
	}))

	responses, err := s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 2)

	first := responses[0]
	require.Equal(t, int64(1), first.ThemeID)
	require.NotNil(t, first.QuestionID)
	require.Equal(t, questionID, *first.QuestionID)
	require.Equal(t, now, first.RecordedAt)
	require.Equal(t, model.StateRealized, first.State())

	second := responses[1]
	require.Nil(t, second.QuestionID)
	require.Equal(t, "disco cheio", second.Observation)
	// A nil completed column means "not decided", never "not realized".
	require.Equal(t, model.StatePending, second.State())
}

func TestResponsesAreSegregatedByUser(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	now := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	completed := true
	require.NoError(t, s.AppendResponse(ctx, model.ChecklistResponse{
		ThemeID: 1, RecordedAt: now, Username: "alice", Completed: &completed,
	}))

	responses, err := s.ResponsesForUser(ctx, "bob")
	require.NoError(t, err)
	require.Empty(t, responses)

	count, err := s.CountResponses(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// The log is append-only and never dedupes: submitting the same answer
// twice yields two rows.
func TestDuplicateAppendsAreKept(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	now := time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC)
	questionID := int64(2)
	completed := false

	r := model.ChecklistResponse{
		ThemeID:     1,
		QuestionID:  &questionID,
		RecordedAt:  now,
		Username:    "alice",
		Observation: "job falhou",
		Completed:   &completed,
	}
	require.NoError(t, s.AppendResponse(ctx, r))
	require.NoError(t, s.AppendResponse(ctx, r))

	responses, err := s.ResponsesForUser(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, responses, 2)
}
