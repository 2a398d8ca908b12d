package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vrstep/geomaster/internal/adapters/http/middlewares"
	"github.com/vrstep/geomaster/internal/application/usecases"
	"github.com/vrstep/geomaster/internal/domain/game"
)

// GameHandler expõe as operações de sala. Toda mutação responde com o
// snapshot resultante, o mesmo payload que os assinantes recebem pelo
// WebSocket.
type GameHandler struct {
	gameUC *usecases.GameUseCases
}

func NewGameHandler(gameUC *usecases.GameUseCases) *GameHandler {
	return &GameHandler{gameUC: gameUC}
}

// CreateRoom godoc
// @Summary Cria uma sala de jogo
// @Description Copia até 10 perguntas do catálogo para o tipo configurado e sorteia um código de 6 dígitos.
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body game.Config true "Configuração da sala"
// @Success 201 {object} game.Snapshot
// @Failure 404 "Nenhum quiz para este tipo"
// @Router /rooms [post]
func (h *GameHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	var cfg game.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	room, err := h.gameUC.CreateRoom(r.Context(), userID, cfg)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, room.Snapshot())
}

// GetRoom godoc
// @Summary Leitura pontual da sala
// @Description Snapshot atual da sala; o cliente chama isto antes de assinar o stream.
// @Tags Rooms
// @Produce json
// @Param code path string true "Código da sala"
// @Success 200 {object} game.Snapshot
// @Failure 404 "Sala não encontrada"
// @Router /rooms/{code} [get]
func (h *GameHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.gameUC.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// JoinRoom godoc
// @Summary Entra numa sala em espera
// @Description Idempotente: entrar duas vezes devolve a sala sem duplicar o jogador.
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sala"
// @Success 200 {object} game.Snapshot
// @Failure 409 "A partida já começou"
// @Router /rooms/{code}/join [post]
func (h *GameHandler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	room, err := h.gameUC.JoinRoom(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// ToggleReady godoc
// @Summary Alterna o estado de pronto
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sala"
// @Success 200 {object} game.Snapshot
// @Failure 403 "Jogador não está na sala"
// @Router /rooms/{code}/ready [post]
func (h *GameHandler) ToggleReady(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	room, err := h.gameUC.ToggleReady(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// StartGame godoc
// @Summary Inicia a partida
// @Description Apenas o anfitrião; exige sala em WAITING com pelo menos 2 jogadores.
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sala"
// @Success 200 {object} game.Snapshot
// @Failure 403 "Apenas o anfitrião pode iniciar"
// @Failure 412 "Jogadores insuficientes"
// @Router /rooms/{code}/start [post]
func (h *GameHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	room, err := h.gameUC.StartGame(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// SubmitAnswer godoc
// @Summary Envia a resposta da pergunta atual
// @Description answerIndex -1 (ou fora do intervalo) registra timeout, sempre errado. Uma submissão pontuada por jogador por rodada.
// @Tags Rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sala"
// @Param body body handlers.AnswerInput true "Índice da alternativa"
// @Success 200 {object} game.Snapshot
// @Failure 409 "Jogador já respondeu, ou partida não está em andamento"
// @Router /rooms/{code}/answer [post]
func (h *GameHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	var input AnswerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return
	}

	room, err := h.gameUC.SubmitAnswer(r.Context(), chi.URLParam(r, "code"), userID, input.AnswerIndex)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, room.Snapshot())
}

// AnswerInput é o corpo de SubmitAnswer.
type AnswerInput struct {
	AnswerIndex int `json:"answerIndex"`
}

// LeaveRoom godoc
// @Summary Sai da sala
// @Description Reatribui o anfitrião se necessário; sala WAITING vazia é apagada e os assinantes recebem o tombstone.
// @Tags Rooms
// @Produce json
// @Security BearerAuth
// @Param code path string true "Código da sala"
// @Success 200 {object} map[string]bool
// @Failure 403 "Jogador não está na sala"
// @Router /rooms/{code}/leave [post]
func (h *GameHandler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(middlewares.UserIDKey).(string)

	ok, err := h.gameUC.LeaveRoom(r.Context(), chi.URLParam(r, "code"), userID)
	if err != nil {
		writeGameError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"left": ok})
}
