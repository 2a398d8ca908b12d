package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/infra/logger"
	"github.com/vrstep/geomaster/internal/ports"
)

var (
	ErrSalaNaoEncontrada = errors.New("sala não encontrada")
	ErrQuizNaoEncontrado = errors.New("nenhum quiz encontrado para este tipo")
	ErrCodigosEsgotados  = errors.New("não foi possível alocar um código de sala livre")
)

// DefaultRoundDelay é a pausa entre todos responderem e a próxima pergunta,
// dando tempo para o cliente exibir a distribuição de respostas.
const DefaultRoundDelay = 1500 * time.Millisecond

// maxCodeAttempts limita a busca por um código livre. Com 900 mil códigos
// possíveis a colisão é desprezível, mas o esgotamento precisa falhar de
// forma controlada em vez de entrar em loop.
const maxCodeAttempts = 100

// GameUseCases é a máquina de sessão: cria salas, administra o ciclo
// WAITING -> PLAYING -> FINISHED e publica um snapshot completo a cada
// mudança de estado.
//
// Toda operação mutante de uma sala roda sob um lock por código, de modo
// que duas mutações do mesmo código nunca se sobrepõem (inclusive o avanço
// de rodada agendado). Operações de códigos diferentes são independentes.
type GameUseCases struct {
	roomRepo    ports.RoomRepository
	quizRepo    ports.QuizRepository
	userRepo    ports.UserRepository
	broadcaster ports.RoomBroadcaster
	resultUC    *ResultUseCases

	// RoundDelay é exposto para os testes encurtarem a espera.
	RoundDelay time.Duration

	mu        sync.Mutex
	roomLocks map[string]*sync.Mutex
}

func NewGameUseCases(
	roomRepo ports.RoomRepository,
	quizRepo ports.QuizRepository,
	userRepo ports.UserRepository,
	broadcaster ports.RoomBroadcaster,
	resultUC *ResultUseCases,
) *GameUseCases {
	return &GameUseCases{
		roomRepo:    roomRepo,
		quizRepo:    quizRepo,
		userRepo:    userRepo,
		broadcaster: broadcaster,
		resultUC:    resultUC,
		RoundDelay:  DefaultRoundDelay,
		roomLocks:   make(map[string]*sync.Mutex),
	}
}

// CreateRoom cria uma sala copiando até 10 perguntas do catálogo para o
// tipo configurado e sorteando um código de 6 dígitos livre.
func (uc *GameUseCases) CreateRoom(ctx context.Context, userID string, cfg game.Config) (*game.Room, error) {
	host, err := uc.identity(ctx, userID)
	if err != nil {
		return nil, err
	}

	q, err := uc.quizRepo.FindByType(ctx, cfg.QuizType)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNaoEncontrado
	}

	for i := 0; i < maxCodeAttempts; i++ {
		room := game.NewRoom(newRoomCode(), host, cfg, q.Questions)
		err := uc.roomRepo.Create(room)
		if err == nil {
			logger.Info("Sala criada", "code", room.Code, "quizType", cfg.QuizType, "host", host.Username)
			return room, nil
		}
		if !errors.Is(err, ports.ErrCodigoEmUso) {
			return nil, err
		}
	}
	return nil, ErrCodigosEsgotados
}

// JoinRoom adiciona o usuário a uma sala em WAITING. Entrar duas vezes é
// idempotente: a segunda chamada devolve a sala sem republicar.
func (uc *GameUseCases) JoinRoom(ctx context.Context, code, userID string) (*game.Room, error) {
	id, err := uc.identity(ctx, userID)
	if err != nil {
		return nil, err
	}

	defer uc.lockRoom(code)()

	room, err := uc.findRoom(code)
	if err != nil {
		return nil, err
	}

	added, err := room.Join(id)
	if err != nil {
		return nil, err
	}
	if added {
		uc.broadcaster.PublishRoom(code, room.Snapshot())
	}
	return room, nil
}

// ToggleReady alterna o estado de pronto do jogador e republica.
func (uc *GameUseCases) ToggleReady(ctx context.Context, code, userID string) (*game.Room, error) {
	defer uc.lockRoom(code)()

	room, err := uc.findRoom(code)
	if err != nil {
		return nil, err
	}
	if err := room.ToggleReady(userID); err != nil {
		return nil, err
	}
	uc.broadcaster.PublishRoom(code, room.Snapshot())
	return room, nil
}

// StartGame inicia a partida (apenas o anfitrião, mínimo 2 jogadores).
func (uc *GameUseCases) StartGame(ctx context.Context, code, userID string) (*game.Room, error) {
	defer uc.lockRoom(code)()

	room, err := uc.findRoom(code)
	if err != nil {
		return nil, err
	}
	if err := room.Start(userID, time.Now()); err != nil {
		return nil, err
	}

	logger.Info("Partida iniciada", "code", code)
	uc.broadcaster.PublishRoom(code, room.Snapshot())
	return room, nil
}

// SubmitAnswer registra a resposta do jogador e publica o snapshot
// imediatamente (para os clientes mostrarem "N/M responderam" ao vivo).
// Quando o último jogador responde, o avanço de rodada é agendado com o
// índice da pergunta capturado agora, em vez de avançar sincronamente,
// para o cliente exibir a tela de "todos responderam" antes da próxima.
func (uc *GameUseCases) SubmitAnswer(ctx context.Context, code, userID string, answerIndex int) (*game.Room, error) {
	defer uc.lockRoom(code)()

	room, err := uc.findRoom(code)
	if err != nil {
		return nil, err
	}

	allAnswered, questionIndex, err := room.SubmitAnswer(userID, answerIndex, time.Now())
	if err != nil {
		return nil, err
	}

	uc.broadcaster.PublishRoom(code, room.Snapshot())

	if allAnswered {
		time.AfterFunc(uc.RoundDelay, func() {
			uc.advanceRound(code, questionIndex)
		})
	}
	return room, nil
}

// advanceRound é a tarefa agendada de avanço de rodada. Ela relê o estado
// vivo da sala em vez de guardar referência ao estado do agendamento: se a
// sala avançou, terminou ou sumiu nesse meio tempo, o timer obsoleto vira
// um no-op detectável.
func (uc *GameUseCases) advanceRound(code string, fromIndex int) {
	defer uc.lockRoom(code)()

	room, err := uc.roomRepo.FindByCode(code)
	if err != nil || room == nil {
		return
	}

	advanced, finished := room.AdvanceRound(fromIndex, time.Now())
	if !advanced && !finished {
		logger.Warn("Timer de rodada obsoleto ignorado", "code", code, "questionIndex", fromIndex)
		return
	}

	uc.broadcaster.PublishRoom(code, room.Snapshot())

	if finished {
		logger.Info("Partida finalizada", "code", code)
		uc.dropRoomLock(code)
		uc.archive(room)
	}
}

// LeaveRoom remove o jogador da sala. Se o anfitrião sair de uma sala
// WAITING vazia, a sala é apagada e os assinantes recebem o tombstone no
// lugar de um snapshot.
func (uc *GameUseCases) LeaveRoom(ctx context.Context, code, userID string) (bool, error) {
	defer uc.lockRoom(code)()

	room, err := uc.findRoom(code)
	if err != nil {
		return false, err
	}

	res, err := room.RemovePlayer(userID)
	if err != nil {
		return false, err
	}

	if res.Deleted {
		if err := uc.roomRepo.Delete(code); err != nil {
			return false, err
		}
		uc.dropRoomLock(code)
		uc.broadcaster.PublishClosed(code)
		logger.Info("Sala removida", "code", code)
		return true, nil
	}

	uc.broadcaster.PublishRoom(code, room.Snapshot())
	if room.IsFinished() {
		uc.dropRoomLock(code)
	}
	if res.Finished {
		uc.archive(room)
	}
	return true, nil
}

// GetRoom é a leitura pontual usada pelo cliente antes de assinar o
// stream (não exige autenticação).
func (uc *GameUseCases) GetRoom(code string) (*game.Room, error) {
	return uc.findRoom(code)
}

// archive grava o resultado em background; falha de arquivamento não
// afeta a operação que encerrou a partida.
func (uc *GameUseCases) archive(room *game.Room) {
	if uc.resultUC == nil {
		return
	}
	go func() {
		if err := uc.resultUC.ArchiveRoom(context.Background(), room); err != nil {
			logger.Error("Falha ao arquivar partida", "code", room.Code, "erro", err)
		}
	}()
}

func (uc *GameUseCases) findRoom(code string) (*game.Room, error) {
	room, err := uc.roomRepo.FindByCode(code)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrSalaNaoEncontrada
	}
	return room, nil
}

// identity copia a identidade de exibição do usuário autenticado.
func (uc *GameUseCases) identity(ctx context.Context, userID string) (game.Identity, error) {
	u, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return game.Identity{}, err
	}
	if u == nil {
		return game.Identity{}, ErrNaoAutorizado
	}
	return game.Identity{ID: u.ID, Username: u.Username, Avatar: u.Avatar}, nil
}

// lockRoom serializa as operações de um mesmo código. Retorna a função de
// unlock para uso com defer.
func (uc *GameUseCases) lockRoom(code string) func() {
	uc.mu.Lock()
	l, ok := uc.roomLocks[code]
	if !ok {
		l = &sync.Mutex{}
		uc.roomLocks[code] = l
	}
	uc.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// dropRoomLock descarta o lock de uma sala apagada ou finalizada para
// não acumular entradas de salas mortas. Se uma operação tardia chegar
// depois, lockRoom recria a entrada sob demanda; salas FINISHED são
// somente leitura, então o lock novo não quebra a serialização.
func (uc *GameUseCases) dropRoomLock(code string) {
	uc.mu.Lock()
	delete(uc.roomLocks, code)
	uc.mu.Unlock()
}

// newRoomCode sorteia um código numérico uniforme de 6 dígitos.
func newRoomCode() string {
	return fmt.Sprintf("%06d", 100000+rand.Intn(900000))
}
