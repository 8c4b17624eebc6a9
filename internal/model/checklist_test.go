package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompletionStateLabels(t *testing.T) {
	assert.Equal(t, "Pendente", StatePending.Label())
	assert.Equal(t, "Realizado", StateRealized.Label())
	assert.Equal(t, "Não realizado", StateNotRealized.Label())
}

func TestCompletionStateCompleted(t *testing.T) {
	assert.Nil(t, StatePending.Completed())

	realized := StateRealized.Completed()
	if assert.NotNil(t, realized) {
		assert.True(t, *realized)
	}

	notRealized := StateNotRealized.Completed()
	if assert.NotNil(t, notRealized) {
		assert.False(t, *notRealized)
	}
}

func TestStateFromCompleted(t *testing.T) {
	yes, no := true, false
	assert.Equal(t, StatePending, StateFromCompleted(nil))
	assert.Equal(t, StateRealized, StateFromCompleted(&yes))
	assert.Equal(t, StateNotRealized, StateFromCompleted(&no))
}

// Transitions are total and idempotent: any target state is reachable
// from any starting state, and repeating a transition is a no-op.
func TestTaskTransitions(t *testing.T) {
	starts := []CompletionState{StatePending, StateRealized, StateNotRealized}

	for _, start := range starts {
		task := Task{State: start}

		task.MarkRealized()
		assert.Equal(t, StateRealized, task.State)
		task.MarkRealized()
		assert.Equal(t, StateRealized, task.State)

		task.MarkNotRealized()
		assert.Equal(t, StateNotRealized, task.State)
		task.MarkNotRealized()
		assert.Equal(t, StateNotRealized, task.State)

		task.ResetCompletion()
		assert.Equal(t, StatePending, task.State)
		task.ResetCompletion()
		assert.Equal(t, StatePending, task.State)
	}
}

func TestTaskString(t *testing.T) {
	task := Task{Description: "Reindexar tabelas, se necessário.", ThemeID: 2}
	assert.Equal(t, "Reindexar tabelas, se necessário. - Pendente - ", task.String())

	task.MarkNotRealized()
	task.SetObservation("disco cheio")
	assert.Equal(t, "Reindexar tabelas, se necessário. - Não realizado - disco cheio", task.String())
}

func TestChecklistTaskCount(t *testing.T) {
	var cl Checklist
	assert.Equal(t, 0, cl.TaskCount())

	section := Section{Title: "1. Validação de Jobs", ThemeID: 1}
	section.AddTask(Task{Description: "a", ThemeID: 1})
	section.AddTask(Task{Description: "b", ThemeID: 1})
	cl.AddSection(section)

	assert.Equal(t, 2, cl.TaskCount())
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/config.yaml")
	assert.NoError(t, err)
	assert.Equal(t, DefaultChecklistTitle, cfg.Title)
	assert.NotEmpty(t, cfg.DatabasePath)
	assert.NotEmpty(t, cfg.LogPath)
}
