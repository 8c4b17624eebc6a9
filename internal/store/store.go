package store

import (
	"context"

	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// Store defines the persistence interface for the credential store,
// the reference catalog, and the append-only response log.
type Store interface {
	// === Credential store ===

	RegisterUser(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)

	// === Reference catalog ===

	SeedReferenceData(ctx context.Context) error
	ResolveQuestionID(ctx context.Context, description string, themeID int64) (int64, bool, error)
	GetThemes(ctx context.Context) ([]model.Theme, error)
	GetQuestionsByTheme(ctx context.Context, themeID int64) ([]model.Question, error)
	CountQuestions(ctx context.Context) (int, error)

	// === Response log (append-only; no update or delete exists) ===

	AppendResponse(ctx context.Context, r model.ChecklistResponse) error
	ResponsesForUser(ctx context.Context, username string) ([]model.ChecklistResponse, error)
	CountResponses(ctx context.Context) (int, error)
}
