package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const DefaultAvatar = "default_avatar.png"

var (
	ErrUsernameObrigatorio = errors.New("o nome de usuário é obrigatório")
	ErrEmailInvalido       = errors.New("o email é inválido")
	ErrSenhaCurta          = errors.New("a senha deve ter no mínimo 6 caracteres")
)

// User representa um jogador registrado no GeoMaster.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Oculta o hash da senha no JSON
	Avatar       string    `json:"avatar"`
	Stats        Stats     `json:"stats"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Stats acumula estatísticas entre partidas.
type Stats struct {
	GamesPlayed int `json:"gamesPlayed"`
	GamesWon    int `json:"gamesWon"`
	TotalScore  int `json:"totalScore"`
	BestStreak  int `json:"bestStreak"`
}

// NewUser cria uma nova instância de User com validações.
func NewUser(username, email, password string) (*User, error) {
	if username == "" {
		return nil, ErrUsernameObrigatorio
	}
	if !isEmailValid(email) {
		return nil, ErrEmailInvalido
	}
	if len(password) < 6 {
		return nil, ErrSenhaCurta
	}

	return &User{
		ID:        uuid.NewString(), // Gera UUID v4
		Username:  username,
		Email:     email,
		Avatar:    DefaultAvatar,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		// PasswordHash deve ser definido externamente via serviço de hash
	}, nil
}

// SetPassword define o hash da senha.
func (u *User) SetPassword(hash string) {
	u.PasswordHash = hash
}

// Validação simples de email usando regex.
func isEmailValid(email string) bool {
	// Regex simplificado para validação de email
	regex := `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`
	match, _ := regexp.MatchString(regex, email)
	return match
}
