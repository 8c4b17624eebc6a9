// Package checklist builds the daily checklist from the reference
// catalog and records submitted answers in the response log.
package checklist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// Catalog is the slice of the store the builder needs. Injecting it
// keeps checklist construction free of storage lifecycle concerns.
type Catalog interface {
	GetThemes(ctx context.Context) ([]model.Theme, error)
	GetQuestionsByTheme(ctx context.Context, themeID int64) ([]model.Question, error)
	ResolveQuestionID(ctx context.Context, description string, themeID int64) (int64, bool, error)
}

// Builder constructs checklists from the reference catalog. The
// catalog is the single source of truth: task descriptions are never
// re-listed anywhere else.
type Builder struct {
	catalog Catalog
	title   string
	logger  *slog.Logger
}

// NewBuilder creates a Builder over the given catalog. An empty title
// falls back to the default checklist title; a nil logger falls back
// to slog.Default.
func NewBuilder(catalog Catalog, title string, logger *slog.Logger) *Builder {
	if title == "" {
		title = model.DefaultChecklistTitle
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{catalog: catalog, title: title, logger: logger}
}

// Build constructs the checklist: one section per theme in identifier
// order, one task per question in identifier order. Every task eagerly
// resolves its question identifier; a pair the catalog does not know
// is logged as a warning and keeps a nil identifier rather than
// aborting the build.
func (b *Builder) Build(ctx context.Context) (model.Checklist, error) {
	themes, err := b.catalog.GetThemes(ctx)
	if err != nil {
		return model.Checklist{}, fmt.Errorf("loading themes: %w", err)
	}

	cl := model.Checklist{Title: b.title}
	for i, th := range themes {
		section := model.Section{
			Title:   fmt.Sprintf("%d. %s", i+1, th.Title),
			ThemeID: th.ID,
		}

		questions, err := b.catalog.GetQuestionsByTheme(ctx, th.ID)
		if err != nil {
			return model.Checklist{}, fmt.Errorf("loading questions for theme %d: %w", th.ID, err)
		}

		for _, q := range questions {
			task := model.Task{
				Description: q.Description,
				ThemeID:     th.ID,
			}

			id, ok, err := b.catalog.ResolveQuestionID(ctx, q.Description, th.ID)
			if err != nil {
				return model.Checklist{}, fmt.Errorf("resolving question %q: %w", q.Description, err)
			}
			if ok {
				task.QuestionID = &id
			} else {
				b.logger.Warn("task does not resolve to a catalog question",
					"description", q.Description,
					"theme_id", th.ID,
				)
			}

			section.AddTask(task)
		}

		cl.AddSection(section)
	}

	return cl, nil
}
