package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Paul0Junior/checklist-eng/internal/model"
)

// referenceThemes is the closed set of checklist themes. Theme IDs are
// fixed so re-seeding hits the primary key and is ignored.
var referenceThemes = []model.Theme{
	{ID: 1, Title: "Validação de Jobs"},
	{ID: 2, Title: "Validação de Tabelas"},
	{ID: 3, Title: "Espaço em Disco de Servidores de Coleta e Banco de Dados"},
	{ID: 4, Title: "Reinicialização de Serviços"},
}

// referenceQuestions is the closed set of checklist questions, keyed by
// (description, theme). Question IDs are assigned by the database on
// first seed and stay stable afterwards.
var referenceQuestions = []model.Question{
	{Description: "Confirmar a execução bem-sucedida de todos os jobs agendados.", ThemeID: 1},
	{Description: "Identificar e documentar qualquer job que falhou.", ThemeID: 1},
	{Description: "Reexecutar jobs falhados, se necessário.", ThemeID: 1},
	{Description: "Analisar logs em busca de erros ou avisos.", ThemeID: 1},
	{Description: "Documentar qualquer anomalia encontrada nos logs.", ThemeID: 1},

	{Description: "Realizar consultas de verificação para assegurar a integridade dos dados.", ThemeID: 2},
	{Description: "Comparar contagens de registros com benchmarks esperados.", ThemeID: 2},
	{Description: "Confirmar se as tabelas foram atualizadas conforme esperado.", ThemeID: 2},
	{Description: "Documentar qualquer discrepância nas atualizações.", ThemeID: 2},
	{Description: "Garantir que os índices e chaves primárias/estrangeiras estejam intactos.", ThemeID: 2},
	{Description: "Reindexar tabelas, se necessário.", ThemeID: 2},

	{Description: "Verificar o espaço em disco disponível em servidores de coleta.", ThemeID: 3},
	{Description: "Verificar o espaço em disco disponível em servidores de banco de dados.", ThemeID: 3},
	{Description: "Registrar o uso atual de espaço em disco.", ThemeID: 3},
	{Description: "Identificar diretórios ou arquivos que ocupam mais espaço.", ThemeID: 3},
	{Description: "Limpar logs antigos ou arquivos temporários.", ThemeID: 3},
	{Description: "Arquivar ou mover dados antigos para armazenamento externo.", ThemeID: 3},

	{Description: "Confirmar se todos os serviços críticos estão operacionais.", ThemeID: 4},
	{Description: "Identificar qualquer serviço que necessite de reinicialização.", ThemeID: 4},
	{Description: "Reinicializar serviços de coleta de dados.", ThemeID: 4},
	{Description: "Reinicializar serviços de banco de dados.", ThemeID: 4},
	{Description: "Reinicializar serviços de aplicação.", ThemeID: 4},
	{Description: "Confirmar que os serviços reiniciados estão operacionais.", ThemeID: 4},
	{Description: "Verificar logs de inicialização para possíveis erros.", ThemeID: 4},
}

// SeedReferenceData inserts the fixed themes and questions using
// insert-or-ignore semantics. Calling it repeatedly never duplicates
// rows: themes conflict on their fixed primary key, questions on the
// (description, theme) unique constraint.
func (s *SQLiteStore) SeedReferenceData(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range referenceThemes {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO themes (theme_id, theme_title) VALUES (?, ?)",
			t.ID, t.Title,
		)
		if err != nil {
			return fmt.Errorf("seeding theme %d: %w", t.ID, err)
		}
	}

	for _, q := range referenceQuestions {
		_, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO questions (question_description, theme_id) VALUES (?, ?)",
			q.Description, q.ThemeID,
		)
		if err != nil {
			return fmt.Errorf("seeding question %q: %w", q.Description, err)
		}
	}

	return tx.Commit()
}

// ResolveQuestionID looks up the question identifier for an exact
// (description, theme) pair. An unknown pair is not an error: ok is
// false and the caller decides how to surface it.
func (s *SQLiteStore) ResolveQuestionID(
	ctx context.Context,
	description string,
	themeID int64,
) (int64, bool, error) {
	var id int64
	err := s.db.GetContext(ctx, &id,
		"SELECT question_id FROM questions WHERE question_description = ? AND theme_id = ?",
		description, themeID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolving question %q: %w", description, err)
	}
	return id, true, nil
}

// GetThemes returns all themes ordered by identifier.
func (s *SQLiteStore) GetThemes(ctx context.Context) ([]model.Theme, error) {
	var themes []model.Theme
	err := s.db.SelectContext(ctx, &themes,
		"SELECT theme_id, theme_title FROM themes ORDER BY theme_id",
	)
	if err != nil {
		return nil, fmt.Errorf("querying themes: %w", err)
	}
	return themes, nil
}

// GetQuestionsByTheme returns the questions of one theme in stable
// (identifier) order.
func (s *SQLiteStore) GetQuestionsByTheme(
	ctx context.Context,
	themeID int64,
) ([]model.Question, error) {
	var questions []model.Question
	err := s.db.SelectContext(ctx, &questions,
		"SELECT question_id, question_description, theme_id FROM questions WHERE theme_id = ? ORDER BY question_id",
		themeID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying questions for theme %d: %w", themeID, err)
	}
	return questions, nil
}

// CountQuestions returns the total number of seeded questions.
func (s *SQLiteStore) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM questions"); err != nil {
		return 0, fmt.Errorf("counting questions: %w", err)
	}
	return count, nil
}
