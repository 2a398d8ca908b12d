package ports

import (
	"context"
	"errors"

	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/domain/quiz"
	"github.com/vrstep/geomaster/internal/domain/result"
	"github.com/vrstep/geomaster/internal/domain/user"
)

// UserRepository define as operações de persistência para a entidade User.
type UserRepository interface {
	// Create salva um novo usuário no banco de dados.
	Create(ctx context.Context, u *user.User) error

	// FindByEmail busca um usuário pelo email. Retorna nil sem erro se não encontrar.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// FindByUsername busca um usuário pelo nome de usuário.
	FindByUsername(ctx context.Context, username string) (*user.User, error)

	// FindByID busca um usuário pelo ID.
	FindByID(ctx context.Context, id string) (*user.User, error)

	// ListTopByScore retorna os usuários com maior pontuação acumulada.
	ListTopByScore(ctx context.Context, limit int) ([]*user.User, error)

	// RecordGame acumula o resultado de uma partida nas estatísticas do
	// usuário; bestStreak só substitui o recorde se for maior.
	RecordGame(ctx context.Context, userID string, score, bestStreak int, won bool) error
}

// PasswordHasher define o contrato para hash e verificação de senhas.
type PasswordHasher interface {
	// HashPassword gera um hash seguro da senha.
	HashPassword(password string) (string, error)

	// ComparePassword compara uma senha em texto plano com um hash.
	// Retorna nil se forem iguais, ou erro se forem diferentes.
	ComparePassword(hash, password string) error
}

// TokenService define o contrato para geração e validação de tokens JWT.
type TokenService interface {
	// GenerateToken gera um token de acesso para o ID do usuário fornecido.
	GenerateToken(userID string) (string, int64, error)

	// ValidateToken valida o token e retorna o ID do usuário se válido.
	ValidateToken(tokenString string) (string, error)
}

// QuizRepository define persistência para o catálogo de quizzes.
type QuizRepository interface {
	Save(ctx context.Context, q *quiz.Quiz) error

	// FindByType busca o quiz do catálogo para o tipo dado (CAPITALS,
	// FLAGS, BORDERS). Retorna nil sem erro se não existir.
	FindByType(ctx context.Context, quizType string) (*quiz.Quiz, error)
}

// ErrCodigoEmUso indica colisão de código ao registrar uma sala nova.
var ErrCodigoEmUso = errors.New("o código de sala já está em uso")

// RoomRepository define o registro em memória de salas ativas, chaveado
// pelo código de 6 dígitos.
type RoomRepository interface {
	// Create registra uma sala nova. Retorna ErrCodigoEmUso se o código
	// já estiver ocupado por uma sala ativa.
	Create(room *game.Room) error

	// FindByCode busca uma sala pelo código. Retorna nil sem erro se não encontrar.
	FindByCode(code string) (*game.Room, error)

	// Delete remove a sala do registro.
	Delete(code string) error
}

// RoomBroadcaster define o canal de publicação de snapshots por código de
// sala. A ordem de entrega por assinante segue a ordem de publicação.
type RoomBroadcaster interface {
	// PublishRoom envia o snapshot para todos os assinantes do código.
	PublishRoom(code string, snapshot *game.Snapshot)

	// PublishClosed envia o sinal terminal de "sala removida" (tombstone)
	// e encerra o tópico.
	PublishClosed(code string)
}

// ResultRepository define persistência de resultados de partidas.
type ResultRepository interface {
	Save(ctx context.Context, r *result.GameResult) error
	ListRecent(ctx context.Context, limit int) ([]*result.GameResult, error)
}
