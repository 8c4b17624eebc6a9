package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS themes (
	theme_id    INTEGER PRIMARY KEY AUTOINCREMENT,
	theme_title TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS questions (
	question_id          INTEGER PRIMARY KEY AUTOINCREMENT,
	question_description TEXT NOT NULL,
	theme_id             INTEGER NOT NULL REFERENCES themes(theme_id),
	UNIQUE(question_description, theme_id)
);

CREATE TABLE IF NOT EXISTS checklist_responses (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	theme_id    INTEGER REFERENCES themes(theme_id),
	question_id INTEGER REFERENCES questions(question_id),
	datetime    TEXT NOT NULL,
	username    TEXT NOT NULL,
	observation TEXT NOT NULL DEFAULT '',
	completed   BOOLEAN
);

CREATE INDEX IF NOT EXISTS idx_questions_theme_id ON questions(theme_id);
CREATE INDEX IF NOT EXISTS idx_responses_username ON checklist_responses(username);
CREATE INDEX IF NOT EXISTS idx_responses_datetime ON checklist_responses(datetime);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
