package game

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/vrstep/geomaster/internal/domain/quiz"
)

// Estados da Sala (State Machine). A progressão é estritamente
// WAITING -> PLAYING -> FINISHED, sem ciclos de volta.
const (
	StatusWaiting  = "WAITING"
	StatusPlaying  = "PLAYING"
	StatusFinished = "FINISHED"
)

// Modos de jogo.
const (
	ModeSingle = "SINGLE"
	ModeMulti  = "MULTI"
)

// Parâmetros de pontuação: 100 pontos base por acerto, mais um bônus de
// velocidade que zera aos 15 segundos.
const (
	basePoints       = 100
	speedBonusWindow = 15.0
	speedBonusRate   = 10.0
)

// MaxQuestionsPerRoom limita o snapshot de perguntas copiado do catálogo.
const MaxQuestionsPerRoom = 10

var (
	ErrJogoJaIniciado         = errors.New("a partida já começou")
	ErrPartidaNaoAndamento    = errors.New("a partida não está em andamento")
	ErrNaoParticipante        = errors.New("o jogador não está na sala")
	ErrApenasAnfitriao        = errors.New("apenas o anfitrião pode iniciar a partida")
	ErrJaRespondeu            = errors.New("o jogador já respondeu a pergunta atual")
	ErrJogadoresInsuficientes = errors.New("são necessários pelo menos 2 jogadores para começar")
)

// Identity é a identidade de exibição copiada do cadastro de usuários no
// momento da entrada (não é um link vivo: mudanças posteriores de avatar
// ou nome não afetam salas existentes).
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// Config define os parâmetros da partida. Imutável após a criação.
type Config struct {
	Mode          string `json:"mode"`     // SINGLE | MULTI
	QuizType      string `json:"quizType"` // CAPITALS | FLAGS | BORDERS
	Difficulty    string `json:"difficulty,omitempty"`
	Region        string `json:"region,omitempty"`
	IsRanked      bool   `json:"isRanked"`
	IsHostPlaying bool   `json:"isHostPlaying"` // false = modo projetor
}

// Player representa um jogador dentro de uma sala.
type Player struct {
	UserID             string `json:"userId"`
	Username           string `json:"username"`
	Avatar             string `json:"avatar"`
	Score              int    `json:"score"`
	IsReady            bool   `json:"isReady"`
	HasAnsweredCurrent bool   `json:"hasAnsweredCurrent"`
	CurrentAnswer      *int   `json:"currentAnswer,omitempty"`
	Streak             int    `json:"streak"`
	BestStreak         int    `json:"bestStreak"` // maior sequência da partida
}

// Room representa uma sala de jogo ao vivo, identificada por um código
// numérico de 6 dígitos. Mantém o estado da partida em memória.
//
// O mutex interno protege leituras concorrentes (snapshots); a
// serialização das operações mutantes de uma mesma sala é garantida pela
// camada de aplicação, que nunca deixa duas mutações do mesmo código se
// sobreporem.
type Room struct {
	Code                 string
	Host                 Identity
	Config               Config
	Questions            []quiz.Question // cópia fixa do catálogo
	Status               string
	Players              []*Player // ordenado por ordem de entrada
	CurrentQuestionIndex int
	RoundStartTime       *time.Time

	mu sync.RWMutex
}

// NewRoom cria uma sala em WAITING. As perguntas são copiadas (não
// referenciadas), então edições posteriores no catálogo nunca afetam uma
// partida em andamento. O anfitrião entra como jogador (já pronto) apenas
// se estiver configurado para jogar.
func NewRoom(code string, host Identity, cfg Config, questions []quiz.Question) *Room {
	if len(questions) > MaxQuestionsPerRoom {
		questions = questions[:MaxQuestionsPerRoom]
	}
	copied := make([]quiz.Question, len(questions))
	copy(copied, questions)

	r := &Room{
		Code:      code,
		Host:      host,
		Config:    cfg,
		Questions: copied,
		Status:    StatusWaiting,
		Players:   []*Player{},
	}

	if cfg.IsHostPlaying {
		r.Players = append(r.Players, &Player{
			UserID:   host.ID,
			Username: host.Username,
			Avatar:   host.Avatar,
			IsReady:  true,
		})
	}

	return r
}

// Join adiciona um jogador à sala. Retorna added=false (sem erro) se o
// jogador já estava na sala: a operação é idempotente e nesse caso não
// deve gerar novo broadcast.
func (r *Room) Join(id Identity) (added bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusWaiting {
		return false, ErrJogoJaIniciado
	}

	if r.findPlayer(id.ID) != nil {
		return false, nil
	}

	r.Players = append(r.Players, &Player{
		UserID:   id.ID,
		Username: id.Username,
		Avatar:   id.Avatar,
	})
	return true, nil
}

// ToggleReady alterna o estado de pronto do jogador. Só tem significado
// enquanto a sala está em WAITING, mas chamar fora disso é inofensivo.
func (r *Room) ToggleReady(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.findPlayer(userID)
	if p == nil {
		return ErrNaoParticipante
	}
	p.IsReady = !p.IsReady
	return nil
}

// Start inicia a partida. Apenas o anfitrião pode iniciar, a sala precisa
// estar em WAITING e ter pelo menos 2 jogadores (em ambos os modos).
// A checagem de "todos prontos" é responsabilidade da interface do
// anfitrião; o gate autoritativo do servidor é a contagem de jogadores.
func (r *Room) Start(requesterID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if requesterID != r.Host.ID {
		return ErrApenasAnfitriao
	}
	if r.Status != StatusWaiting {
		return ErrJogoJaIniciado
	}
	if len(r.Players) < 2 {
		return ErrJogadoresInsuficientes
	}

	r.Status = StatusPlaying
	r.CurrentQuestionIndex = 0
	r.RoundStartTime = &now
	return nil
}

// SubmitAnswer registra a resposta de um jogador para a pergunta atual e
// aplica a pontuação. answerIndex fora do intervalo (incluindo -1, usado
// pelo cliente para timeout) é tratado como não-resposta e sempre conta
// como errado.
//
// Retorna allAnswered=true quando este era o último jogador pendente da
// rodada (sinal para a camada de aplicação agendar o avanço), junto com o
// índice da pergunta que acabou de fechar.
func (r *Room) SubmitAnswer(userID string, answerIndex int, now time.Time) (allAnswered bool, questionIndex int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusPlaying {
		return false, 0, ErrPartidaNaoAndamento
	}

	p := r.findPlayer(userID)
	if p == nil {
		return false, 0, ErrNaoParticipante
	}
	if p.HasAnsweredCurrent {
		return false, 0, ErrJaRespondeu
	}

	q := r.Questions[r.CurrentQuestionIndex]

	if answerIndex >= 0 && answerIndex < len(q.Options) {
		answer := answerIndex
		p.CurrentAnswer = &answer

		// Correção por texto da alternativa, não por índice bruto, para
		// continuar valendo sob reordenação das alternativas.
		if q.Options[answerIndex] == q.CorrectAnswer {
			elapsed := now.Sub(*r.RoundStartTime).Seconds()
			bonus := int(math.Floor((speedBonusWindow - elapsed) * speedBonusRate))
			if bonus < 0 {
				bonus = 0
			}
			p.Score += basePoints + bonus
			p.Streak++
			if p.Streak > p.BestStreak {
				p.BestStreak = p.Streak
			}
		} else {
			p.Streak = 0
		}
	} else {
		// Timeout / não-resposta: sem marcador de resposta, sempre errado.
		p.CurrentAnswer = nil
		p.Streak = 0
	}

	p.HasAnsweredCurrent = true

	for _, pl := range r.Players {
		if !pl.HasAnsweredCurrent {
			return false, r.CurrentQuestionIndex, nil
		}
	}
	return true, r.CurrentQuestionIndex, nil
}

// AdvanceRound avança a rodada agendada para fromIndex. O chamador passa o
// índice capturado no momento do agendamento; se a sala já avançou (ou
// terminou) nesse meio tempo, a chamada é um no-op detectável em vez de
// corromper o estado.
func (r *Room) AdvanceRound(fromIndex int, now time.Time) (advanced bool, finished bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Status != StatusPlaying || r.CurrentQuestionIndex != fromIndex {
		return false, false
	}

	if r.CurrentQuestionIndex < len(r.Questions)-1 {
		r.CurrentQuestionIndex++
		r.RoundStartTime = &now
		for _, p := range r.Players {
			p.HasAnsweredCurrent = false
			p.CurrentAnswer = nil
		}
		return true, false
	}

	// Última pergunta: estado terminal, sem novo RoundStartTime.
	r.Status = StatusFinished
	return false, true
}

// LeaveResult descreve o efeito de uma saída sobre a sala.
type LeaveResult struct {
	NewHost  *Identity // preenchido se o anfitrião foi reatribuído
	Deleted  bool      // sala vazia em WAITING: deve ser removida do registro
	Finished bool      // a saída encerrou a partida
}

// RemovePlayer remove um jogador da sala e ajusta o estado:
//   - anfitrião sai com jogadores restantes: o primeiro da ordem vira anfitrião;
//   - anfitrião sai de uma sala WAITING vazia: a sala deve ser apagada;
//   - anfitrião sai de uma sala em andamento vazia: a partida termina;
//   - sala em PLAYING fica com menos de 2 jogadores: a partida termina.
//
// Numa sala já FINISHED a remoção é aceita como no-op (o estado terminal é
// somente leitura).
func (r *Room) RemovePlayer(userID string) (LeaveResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res LeaveResult

	idx := -1
	for i, p := range r.Players {
		if p.UserID == userID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return res, ErrNaoParticipante
	}

	if r.Status == StatusFinished {
		return res, nil
	}

	wasHost := userID == r.Host.ID
	r.Players = append(r.Players[:idx], r.Players[idx+1:]...)

	if wasHost {
		if len(r.Players) > 0 {
			first := r.Players[0]
			r.Host = Identity{ID: first.UserID, Username: first.Username, Avatar: first.Avatar}
			newHost := r.Host
			res.NewHost = &newHost
		} else if r.Status == StatusWaiting {
			res.Deleted = true
			return res, nil
		} else {
			r.Status = StatusFinished
			res.Finished = true
			return res, nil
		}
	}

	if r.Status == StatusPlaying && len(r.Players) < 2 {
		r.Status = StatusFinished
		res.Finished = true
	}

	return res, nil
}

// IsFinished reporta se a sala atingiu o estado terminal.
func (r *Room) IsFinished() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.Status == StatusFinished
}

// findPlayer assume que o chamador já segura o lock.
func (r *Room) findPlayer(userID string) *Player {
	for _, p := range r.Players {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}
