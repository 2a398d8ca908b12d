package websocket

import (
	"encoding/json"
	"sync"

	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/infra/logger"
)

// Tipos de mensagem enviados aos assinantes.
const (
	// MessageRoomState carrega o snapshot completo da sala.
	MessageRoomState = "room_state"
	// MessageRoomClosed é o tombstone: a sala deixou de existir.
	MessageRoomClosed = "room_closed"
)

// Envelope é o formato de toda mensagem enviada pelo servidor.
type Envelope struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Hub implementa ports.RoomBroadcaster: um tópico por código de sala,
// criado na primeira assinatura e coletado quando a sala some ou o último
// assinante desconecta.
//
// Não há replay: assinantes que conectam depois de uma publicação não a
// recebem; o cliente busca o snapshot atual via leitura pontual antes de
// depender do stream.
type Hub struct {
	clients map[*Client]bool
	rooms   map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client

	mu sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run processa registros e desregistros de assinantes. Deve rodar numa
// goroutine própria.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.rooms[client.RoomCode]; !ok {
				h.rooms[client.RoomCode] = make(map[*Client]bool)
			}
			h.rooms[client.RoomCode][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.dropClient(client)
			h.mu.Unlock()
		}
	}
}

// PublishRoom envia o snapshot para todos os assinantes do código. Os
// publishes de um mesmo código chegam na ordem em que as operações da sala
// completaram: o chamador (camada de aplicação) publica ainda sob o lock
// da sala, e cada assinante tem um canal FIFO próprio.
func (h *Hub) PublishRoom(code string, snapshot *game.Snapshot) {
	bytes, err := json.Marshal(Envelope{Type: MessageRoomState, Payload: snapshot})
	if err != nil {
		logger.Error("Erro ao serializar snapshot", "code", code, "erro", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[code] {
		select {
		case client.Send <- bytes:
		default:
			// Assinante lento ou morto: descarta em vez de bloquear a sala.
			h.dropClient(client)
		}
	}
}

// PublishClosed envia o tombstone, desconecta os assinantes e coleta o
// tópico.
func (h *Hub) PublishClosed(code string) {
	bytes, err := json.Marshal(Envelope{Type: MessageRoomClosed})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.rooms[code] {
		select {
		case client.Send <- bytes:
		default:
		}
		delete(h.clients, client)
		close(client.Send)
	}
	delete(h.rooms, code)
}

// dropClient assume que o chamador já segura o lock.
func (h *Hub) dropClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	close(client.Send)

	if subscribers, ok := h.rooms[client.RoomCode]; ok {
		delete(subscribers, client)
		if len(subscribers) == 0 {
			delete(h.rooms, client.RoomCode)
		}
	}
}
