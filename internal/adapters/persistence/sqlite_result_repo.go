package persistence

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/vrstep/geomaster/internal/domain/result"
	"github.com/vrstep/geomaster/internal/ports"
)

// SQLiteResultRepository implementa ResultRepository para SQLite.
type SQLiteResultRepository struct {
	db *sql.DB
}

// NewSQLiteResultRepository cria uma nova instância do repositório.
func NewSQLiteResultRepository(db *sql.DB) ports.ResultRepository {
	return &SQLiteResultRepository{db: db}
}

// Save grava o resultado e os placares numa transação.
func (r *SQLiteResultRepository) Save(ctx context.Context, res *result.GameResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO game_results (id, room_code, quiz_type, winner_id, winner_name, played_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		res.ID, res.RoomCode, res.QuizType, res.WinnerID, res.WinnerName, res.PlayedAt,
	)
	if err != nil {
		return err
	}

	for _, s := range res.Scores {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO game_result_scores (id, result_id, user_id, username, score)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), res.ID, s.UserID, s.Username, s.Score,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// ListRecent retorna os últimos resultados, mais recentes primeiro.
func (r *SQLiteResultRepository) ListRecent(ctx context.Context, limit int) ([]*result.GameResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, room_code, quiz_type, winner_id, winner_name, played_at
		FROM game_results ORDER BY played_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*result.GameResult
	for rows.Next() {
		var res result.GameResult
		var winnerID, winnerName sql.NullString
		if err := rows.Scan(&res.ID, &res.RoomCode, &res.QuizType, &winnerID, &winnerName, &res.PlayedAt); err != nil {
			return nil, err
		}
		res.WinnerID = winnerID.String
		res.WinnerName = winnerName.String
		results = append(results, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, res := range results {
		scores, err := r.scoresFor(ctx, res.ID)
		if err != nil {
			return nil, err
		}
		res.Scores = scores
	}

	return results, nil
}

func (r *SQLiteResultRepository) scoresFor(ctx context.Context, resultID string) ([]result.PlayerScore, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, username, score FROM game_result_scores
		WHERE result_id = ? ORDER BY score DESC`,
		resultID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []result.PlayerScore
	for rows.Next() {
		var s result.PlayerScore
		if err := rows.Scan(&s.UserID, &s.Username, &s.Score); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
