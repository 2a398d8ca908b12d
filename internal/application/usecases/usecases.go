package usecases

import (
	"context"
	"errors"

	"github.com/vrstep/geomaster/internal/domain/user"
	"github.com/vrstep/geomaster/internal/ports"
)

// Casos de erro comuns
var (
	ErrNaoAutorizado        = errors.New("não autorizado")
	ErrEmailDuplicado       = errors.New("email já cadastrado")
	ErrUsernameDuplicado    = errors.New("nome de usuário já cadastrado")
	ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
)

// AuthOutput é a resposta de registro e login: token de acesso + usuário.
type AuthOutput struct {
	AccessToken string     `json:"accessToken"`
	ExpiresIn   int64      `json:"expiresIn"` // Segundos
	User        *user.User `json:"user"`
}

// RegisterUserUseCase coordena o registro de um novo jogador.
type RegisterUserUseCase struct {
	repo         ports.UserRepository
	hasher       ports.PasswordHasher
	tokenService ports.TokenService
}

func NewRegisterUserUseCase(repo ports.UserRepository, hasher ports.PasswordHasher, tokenService ports.TokenService) *RegisterUserUseCase {
	return &RegisterUserUseCase{repo: repo, hasher: hasher, tokenService: tokenService}
}

type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterInput) (*AuthOutput, error) {
	// 1. Verifica duplicidade de email e username
	existing, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailDuplicado
	}

	existing, err = uc.repo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameDuplicado
	}

	// 2. Cria entidade User com validações de domínio
	newUser, err := user.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	// 3. Hash da senha
	hashedPassword, err := uc.hasher.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	newUser.SetPassword(hashedPassword)

	// 4. Persiste
	if err := uc.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	// 5. Já autentica o usuário recém-criado
	token, expiresIn, err := uc.tokenService.GenerateToken(newUser.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{AccessToken: token, ExpiresIn: expiresIn, User: newUser}, nil
}

// LoginUserUseCase coordena o login.
type LoginUserUseCase struct {
	repo         ports.UserRepository
	hasher       ports.PasswordHasher
	tokenService ports.TokenService
}

func NewLoginUserUseCase(repo ports.UserRepository, hasher ports.PasswordHasher, tokenService ports.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{repo: repo, hasher: hasher, tokenService: tokenService}
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginInput) (*AuthOutput, error) {
	// 1. Busca usuário
	u, err := uc.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrCredenciaisInvalidas
	}

	// 2. Valida senha
	if err := uc.hasher.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	// 3. Gera Token
	token, expiresIn, err := uc.tokenService.GenerateToken(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthOutput{AccessToken: token, ExpiresIn: expiresIn, User: u}, nil
}

// GetMeUseCase retorna dados do usuário logado.
type GetMeUseCase struct {
	repo ports.UserRepository
}

func NewGetMeUseCase(repo ports.UserRepository) *GetMeUseCase {
	return &GetMeUseCase{repo: repo}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, userID string) (*user.User, error) {
	u, err := uc.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return u, nil
}

// LeaderboardUseCase retorna o ranking global por pontuação acumulada.
type LeaderboardUseCase struct {
	repo ports.UserRepository
}

func NewLeaderboardUseCase(repo ports.UserRepository) *LeaderboardUseCase {
	return &LeaderboardUseCase{repo: repo}
}

func (uc *LeaderboardUseCase) Execute(ctx context.Context) ([]*user.User, error) {
	return uc.repo.ListTopByScore(ctx, 20)
}
