package model

// Theme is a top-level grouping of checklist questions.
// Reference data: created once at bootstrap and never mutated.
type Theme struct {
	ID    int64  `db:"theme_id"`
	Title string `db:"theme_title"`
}

// Question is a single fixed checklist prompt belonging to one theme.
// Unique by (Description, ThemeID) so re-seeding never duplicates rows.
type Question struct {
	ID          int64  `db:"question_id"`
	Description string `db:"question_description"`
	ThemeID     int64  `db:"theme_id"`
}
