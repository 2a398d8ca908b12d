package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/vrstep/geomaster/internal/domain/quiz"
	"github.com/vrstep/geomaster/internal/ports"
)

// SQLiteQuizRepository implementa QuizRepository para SQLite.
type SQLiteQuizRepository struct {
	db *sql.DB
}

// NewSQLiteQuizRepository cria uma nova instância do repositório.
func NewSQLiteQuizRepository(db *sql.DB) ports.QuizRepository {
	return &SQLiteQuizRepository{db: db}
}

// Save grava o quiz e suas perguntas numa transação. Usado pelo seeding.
func (r *SQLiteQuizRepository) Save(ctx context.Context, q *quiz.Quiz) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO quizzes (id, title, type, created_at) VALUES (?, ?, ?, ?)`,
		q.ID, q.Title, q.Type, q.CreatedAt,
	)
	if err != nil {
		return err
	}

	for i, question := range q.Questions {
		if len(question.Options) != 4 {
			return quiz.ErrAlternativasInvalidas
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO questions (id, quiz_id, question_text, image_url,
				option_a, option_b, option_c, option_d, correct_answer, sort_order)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			q.ID,
			question.QuestionText,
			question.ImageURL,
			question.Options[0],
			question.Options[1],
			question.Options[2],
			question.Options[3],
			question.CorrectAnswer,
			i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindByType busca o quiz do catálogo para o tipo dado, com as perguntas
// na ordem de autoria.
func (r *SQLiteQuizRepository) FindByType(ctx context.Context, quizType string) (*quiz.Quiz, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, type, created_at FROM quizzes WHERE type = ? LIMIT 1`,
		quizType,
	)

	var q quiz.Quiz
	if err := row.Scan(&q.ID, &q.Title, &q.Type, &q.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Não encontrado
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT question_text, image_url, option_a, option_b, option_c, option_d, correct_answer
		FROM questions WHERE quiz_id = ? ORDER BY sort_order`,
		q.ID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var question quiz.Question
		var imageURL sql.NullString
		var a, b, c, d string

		if err := rows.Scan(&question.QuestionText, &imageURL, &a, &b, &c, &d, &question.CorrectAnswer); err != nil {
			return nil, err
		}
		question.ImageURL = imageURL.String
		question.Options = []string{a, b, c, d}
		q.Questions = append(q.Questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &q, nil
}
