package game

import (
	"time"

	"github.com/vrstep/geomaster/internal/domain/quiz"
)

// Snapshot é a representação completa do estado da sala enviada aos
// clientes após cada mutação. Inclui a lista completa de perguntas (com
// correctAnswer); o cliente usa isso para renderizar a revelação sem uma
// ida extra ao servidor.
type Snapshot struct {
	Code                 string          `json:"code"`
	Host                 Identity        `json:"host"`
	Config               Config          `json:"config"`
	Status               string          `json:"status"`
	Players              []Player        `json:"players"`
	CurrentQuestionIndex int             `json:"currentQuestionIndex"`
	Questions            []quiz.Question `json:"questions"`
	RoundStartTime       *time.Time      `json:"roundStartTime,omitempty"`
}

// Snapshot retorna uma cópia profunda do estado atual, segura para
// serializar fora do lock da sala.
func (r *Room) Snapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]Player, len(r.Players))
	for i, p := range r.Players {
		players[i] = *p
		if p.CurrentAnswer != nil {
			answer := *p.CurrentAnswer
			players[i].CurrentAnswer = &answer
		}
	}

	questions := make([]quiz.Question, len(r.Questions))
	copy(questions, r.Questions)

	var start *time.Time
	if r.RoundStartTime != nil {
		t := *r.RoundStartTime
		start = &t
	}

	return &Snapshot{
		Code:                 r.Code,
		Host:                 r.Host,
		Config:               r.Config,
		Status:               r.Status,
		Players:              players,
		CurrentQuestionIndex: r.CurrentQuestionIndex,
		Questions:            questions,
		RoundStartTime:       start,
	}
}
