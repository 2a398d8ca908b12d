package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vrstep/geomaster/internal/adapters/http/middlewares"
	"github.com/vrstep/geomaster/internal/application/usecases"
	"github.com/vrstep/geomaster/internal/domain/user"
)

// AuthHandler agrupa os handlers de autenticação.
type AuthHandler struct {
	registerUC *usecases.RegisterUserUseCase
	loginUC    *usecases.LoginUserUseCase
	getMeUC    *usecases.GetMeUseCase
}

// NewAuthHandler cria um novo handler de autenticação.
func NewAuthHandler(
	registerUC *usecases.RegisterUserUseCase,
	loginUC *usecases.LoginUserUseCase,
	getMeUC *usecases.GetMeUseCase,
) *AuthHandler {
	return &AuthHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		getMeUC:    getMeUC,
	}
}

// Register godoc
// @Summary Cadastra um novo jogador
// @Description Cria uma conta com username, email e senha e já devolve um token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body usecases.RegisterInput true "Dados de cadastro"
// @Success 201 {object} usecases.AuthOutput
// @Failure 400 {object} map[string]string "Erro de validação"
// @Failure 409 {object} map[string]string "Email ou username já cadastrado"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecases.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	output, err := h.registerUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrEmailDuplicado),
			errors.Is(err, usecases.ErrUsernameDuplicado):
			http.Error(w, err.Error(), http.StatusConflict) // 409
		case errors.Is(err, user.ErrUsernameObrigatorio),
			errors.Is(err, user.ErrEmailInvalido),
			errors.Is(err, user.ErrSenhaCurta):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

// Login godoc
// @Summary Autentica um jogador
// @Description Realiza login com email e senha e retorna um token JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body usecases.LoginInput true "Credenciais"
// @Success 200 {object} usecases.AuthOutput
// @Failure 401 {object} map[string]string "Credenciais inválidas"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecases.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	output, err := h.loginUC.Execute(r.Context(), input)
	if err != nil {
		if errors.Is(err, usecases.ErrCredenciaisInvalidas) {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}
		http.Error(w, "Erro interno do servidor", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// GetMe godoc
// @Summary Retorna dados do jogador logado
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} user.User
// @Failure 401 {object} map[string]string "Não autenticado"
// @Router /auth/me [get]
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	output, err := h.getMeUC.Execute(r.Context(), userID)
	if err != nil {
		http.Error(w, "Erro ao buscar perfil", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
