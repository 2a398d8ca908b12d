package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vrstep/geomaster/internal/domain/user"
	"github.com/vrstep/geomaster/internal/ports"
)

// SQLiteUserRepository implementa UserRepository para SQLite.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository cria uma nova instância do repositório.
func NewSQLiteUserRepository(db *sql.DB) ports.UserRepository {
	return &SQLiteUserRepository{db: db}
}

const userColumns = `id, username, email, password_hash, avatar,
	games_played, games_won, total_score, best_streak, created_at, updated_at`

// Create insere um novo usuário no banco.
func (r *SQLiteUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, avatar,
			games_played, games_won, total_score, best_streak, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.PasswordHash,
		u.Avatar,
		u.Stats.GamesPlayed,
		u.Stats.GamesWon,
		u.Stats.TotalScore,
		u.Stats.BestStreak,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

// FindByEmail busca um usuário pelo email.
func (r *SQLiteUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// FindByUsername busca um usuário pelo nome de usuário.
func (r *SQLiteUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username)
}

// FindByID busca um usuário pelo ID.
func (r *SQLiteUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
}

// ListTopByScore retorna o ranking global.
func (r *SQLiteUserRepository) ListTopByScore(ctx context.Context, limit int) ([]*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY total_score DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// RecordGame acumula o resultado de uma partida nas estatísticas.
func (r *SQLiteUserRepository) RecordGame(ctx context.Context, userID string, score, bestStreak int, won bool) error {
	wonDelta := 0
	if won {
		wonDelta = 1
	}
	query := `
		UPDATE users
		SET games_played = games_played + 1,
			games_won = games_won + ?,
			total_score = total_score + ?,
			best_streak = MAX(best_streak, ?),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.ExecContext(ctx, query, wonDelta, score, bestStreak, userID)
	return err
}

func (r *SQLiteUserRepository) findOne(ctx context.Context, query string, arg any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Não encontrado
		}
		return nil, err
	}
	return u, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&u.Avatar,
		&u.Stats.GamesPlayed,
		&u.Stats.GamesWon,
		&u.Stats.TotalScore,
		&u.Stats.BestStreak,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
