package websocket

import (
	"net/http"

	"github.com/vrstep/geomaster/internal/application/usecases"
	"github.com/vrstep/geomaster/internal/infra/logger"
	"github.com/vrstep/geomaster/internal/ports"
)

// WebSocketHandler faz o upgrade de assinaturas de sala.
type WebSocketHandler struct {
	hub          *Hub
	gameUC       *usecases.GameUseCases
	tokenService ports.TokenService
}

func NewWebSocketHandler(hub *Hub, gameUC *usecases.GameUseCases, tokenService ports.TokenService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		gameUC:       gameUC,
		tokenService: tokenService,
	}
}

// HandleWS assina o stream de snapshots de uma sala:
// GET /ws?code=123456&token=<jwt>
//
// O stream não reenvia o estado atual na conexão; o cliente deve buscar o
// snapshot via GET /rooms/{code} antes de assinar.
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "código da sala é obrigatório (code)", http.StatusBadRequest)
		return
	}

	// O token vem por query string porque browsers não enviam headers
	// customizados no handshake de WebSocket.
	userID, err := h.tokenService.ValidateToken(r.URL.Query().Get("token"))
	if err != nil {
		http.Error(w, "não autorizado", http.StatusUnauthorized)
		return
	}

	if _, err := h.gameUC.GetRoom(code); err != nil {
		http.Error(w, "sala não encontrada", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Falha no upgrade do WebSocket", "erro", err)
		return
	}

	client := &Client{
		Hub:      h.hub,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		RoomCode: code,
		UserID:   userID,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}
