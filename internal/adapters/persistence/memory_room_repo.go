package persistence

import (
	"errors"
	"sync"

	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/ports"
)

// InMemoryRoomRepository implementa RoomRepository usando memória RAM.
// Salas vivem apenas no processo; escala horizontal do registro está fora
// de escopo.
type InMemoryRoomRepository struct {
	rooms sync.Map // Map[string]*game.Room, chaveado pelo código
}

func NewInMemoryRoomRepository() ports.RoomRepository {
	return &InMemoryRoomRepository{}
}

// Create registra a sala; LoadOrStore garante que a checagem de colisão e
// a gravação são atômicas.
func (r *InMemoryRoomRepository) Create(room *game.Room) error {
	if _, taken := r.rooms.LoadOrStore(room.Code, room); taken {
		return ports.ErrCodigoEmUso
	}
	return nil
}

func (r *InMemoryRoomRepository) FindByCode(code string) (*game.Room, error) {
	val, ok := r.rooms.Load(code)
	if !ok {
		return nil, nil // Não encontrado (sem erro)
	}

	room, ok := val.(*game.Room)
	if !ok {
		return nil, errors.New("erro de tipo no registro de salas")
	}
	return room, nil
}

func (r *InMemoryRoomRepository) Delete(code string) error {
	r.rooms.Delete(code)
	return nil
}
