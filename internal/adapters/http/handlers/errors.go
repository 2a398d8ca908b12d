package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vrstep/geomaster/internal/application/usecases"
	"github.com/vrstep/geomaster/internal/domain/game"
)

// Kinds verificáveis por máquina, um por categoria de falha do jogo.
const (
	KindUnauthorized       = "UNAUTHORIZED"
	KindNotFound           = "NOT_FOUND"
	KindNotMember          = "NOT_MEMBER"
	KindForbidden          = "FORBIDDEN"
	KindInvalidState       = "INVALID_STATE"
	KindAlreadyAnswered    = "ALREADY_ANSWERED"
	KindPreconditionFailed = "PRECONDITION_FAILED"
	KindResourceExhausted  = "RESOURCE_EXHAUSTED"
	KindInternal           = "INTERNAL"
)

type errorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Kind: kind, Message: message})
}

// writeGameError traduz os erros sentinela do domínio/aplicação para
// respostas HTTP com kind + mensagem. Nenhum erro é engolido.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecases.ErrNaoAutorizado):
		writeError(w, http.StatusUnauthorized, KindUnauthorized, err.Error())
	case errors.Is(err, usecases.ErrSalaNaoEncontrada),
		errors.Is(err, usecases.ErrQuizNaoEncontrado):
		writeError(w, http.StatusNotFound, KindNotFound, err.Error())
	case errors.Is(err, game.ErrNaoParticipante):
		writeError(w, http.StatusForbidden, KindNotMember, err.Error())
	case errors.Is(err, game.ErrApenasAnfitriao):
		writeError(w, http.StatusForbidden, KindForbidden, err.Error())
	case errors.Is(err, game.ErrJogoJaIniciado),
		errors.Is(err, game.ErrPartidaNaoAndamento):
		writeError(w, http.StatusConflict, KindInvalidState, err.Error())
	case errors.Is(err, game.ErrJaRespondeu):
		writeError(w, http.StatusConflict, KindAlreadyAnswered, err.Error())
	case errors.Is(err, game.ErrJogadoresInsuficientes):
		writeError(w, http.StatusPreconditionFailed, KindPreconditionFailed, err.Error())
	case errors.Is(err, usecases.ErrCodigosEsgotados):
		writeError(w, http.StatusServiceUnavailable, KindResourceExhausted, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, KindInternal, "erro interno do servidor")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
