package usecases

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/domain/quiz"
	"github.com/vrstep/geomaster/internal/domain/result"
	"github.com/vrstep/geomaster/internal/domain/user"
	"github.com/vrstep/geomaster/internal/ports"
)

// fakeRoomRepo é um registro em memória simples para os testes.
type fakeRoomRepo struct {
	mu    sync.Mutex
	rooms map[string]*game.Room

	// failCreate força colisão de código em toda tentativa.
	failCreate bool
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{rooms: make(map[string]*game.Room)}
}

func (f *fakeRoomRepo) Create(room *game.Room) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return ports.ErrCodigoEmUso
	}
	if _, ok := f.rooms[room.Code]; ok {
		return ports.ErrCodigoEmUso
	}
	f.rooms[room.Code] = room
	return nil
}

func (f *fakeRoomRepo) FindByCode(code string) (*game.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rooms[code], nil
}

func (f *fakeRoomRepo) Delete(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rooms, code)
	return nil
}

// fakeBroadcaster grava os eventos publicados na ordem de chegada.
type fakeBroadcaster struct {
	mu        sync.Mutex
	snapshots []*game.Snapshot
	closed    []string
}

func (f *fakeBroadcaster) PublishRoom(code string, snapshot *game.Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots = append(f.snapshots, snapshot)
}

func (f *fakeBroadcaster) PublishClosed(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = append(f.closed, code)
}

func (f *fakeBroadcaster) snapshotCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.snapshots)
}

func (f *fakeBroadcaster) lastSnapshot() *game.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.snapshots) == 0 {
		return nil
	}
	return f.snapshots[len(f.snapshots)-1]
}

func (f *fakeBroadcaster) closedCodes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.closed...)
}

// fakeUserRepo serve identidades fixas por ID.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*user.User
	games []recordedGame
}

type recordedGame struct {
	UserID     string
	Score      int
	BestStreak int
	Won        bool
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*user.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*user.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id], nil
}

func (f *fakeUserRepo) ListTopByScore(ctx context.Context, limit int) ([]*user.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) RecordGame(ctx context.Context, userID string, score, bestStreak int, won bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games = append(f.games, recordedGame{UserID: userID, Score: score, BestStreak: bestStreak, Won: won})
	return nil
}

func (f *fakeUserRepo) recordedGames() []recordedGame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedGame(nil), f.games...)
}

// fakeQuizRepo serve um catálogo fixo por tipo.
type fakeQuizRepo struct {
	quizzes map[string]*quiz.Quiz
}

func (f *fakeQuizRepo) Save(ctx context.Context, q *quiz.Quiz) error {
	return nil
}

func (f *fakeQuizRepo) FindByType(ctx context.Context, quizType string) (*quiz.Quiz, error) {
	return f.quizzes[quizType], nil
}

// fakeResultRepo acumula os resultados salvos.
type fakeResultRepo struct {
	mu      sync.Mutex
	results []*result.GameResult
}

func (f *fakeResultRepo) Save(ctx context.Context, r *result.GameResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = append(f.results, r)
	return nil
}

func (f *fakeResultRepo) ListRecent(ctx context.Context, limit int) ([]*result.GameResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*result.GameResult(nil), f.results...), nil
}

func (f *fakeResultRepo) saved() []*result.GameResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*result.GameResult(nil), f.results...)
}

func testUser(id, username string) *user.User {
	return &user.User{ID: id, Username: username, Email: username + "@test.com", Avatar: user.DefaultAvatar}
}

func catalogQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			QuestionText:  "Qual é a capital do Japão?",
			Options:       []string{"Seoul", "Beijing", "Tokyo", "Bangkok"},
			CorrectAnswer: "Tokyo",
		}
	}
	return qs
}

type gameFixture struct {
	uc          *GameUseCases
	roomRepo    *fakeRoomRepo
	userRepo    *fakeUserRepo
	broadcaster *fakeBroadcaster
	resultRepo  *fakeResultRepo
}

func newGameFixture(t *testing.T, questions int) *gameFixture {
	t.Helper()

	q, err := quiz.NewQuiz("World Capitals", quiz.TypeCapitals, catalogQuestions(questions))
	require.NoError(t, err)

	roomRepo := newFakeRoomRepo()
	userRepo := newFakeUserRepo(testUser("host-1", "Anfitriao"), testUser("guest-1", "Convidado"))
	broadcaster := &fakeBroadcaster{}
	resultRepo := &fakeResultRepo{}
	resultUC := NewResultUseCases(resultRepo, userRepo)

	uc := NewGameUseCases(roomRepo, &fakeQuizRepo{quizzes: map[string]*quiz.Quiz{quiz.TypeCapitals: q}}, userRepo, broadcaster, resultUC)
	uc.RoundDelay = 5 * time.Millisecond

	return &gameFixture{uc: uc, roomRepo: roomRepo, userRepo: userRepo, broadcaster: broadcaster, resultRepo: resultRepo}
}

func (fx *gameFixture) createRoom(t *testing.T) *game.Room {
	t.Helper()
	room, err := fx.uc.CreateRoom(context.Background(), "host-1", game.Config{
		Mode:          game.ModeMulti,
		QuizType:      quiz.TypeCapitals,
		IsHostPlaying: true,
	})
	require.NoError(t, err)
	return room
}

func TestCreateRoom(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)

	assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), room.Code)
	assert.Equal(t, game.StatusWaiting, room.Status)
	assert.Equal(t, "Anfitriao", room.Host.Username)
	assert.Len(t, room.Questions, 3)

	stored, err := fx.roomRepo.FindByCode(room.Code)
	require.NoError(t, err)
	assert.Same(t, room, stored)
}

func TestCreateRoom_SemQuiz(t *testing.T) {
	fx := newGameFixture(t, 3)

	_, err := fx.uc.CreateRoom(context.Background(), "host-1", game.Config{QuizType: quiz.TypeFlags, IsHostPlaying: true})
	assert.ErrorIs(t, err, ErrQuizNaoEncontrado)
}

func TestCreateRoom_UsuarioDesconhecido(t *testing.T) {
	fx := newGameFixture(t, 3)

	_, err := fx.uc.CreateRoom(context.Background(), "fantasma", game.Config{QuizType: quiz.TypeCapitals})
	assert.ErrorIs(t, err, ErrNaoAutorizado)
}

func TestCreateRoom_CodigosEsgotados(t *testing.T) {
	fx := newGameFixture(t, 3)
	fx.roomRepo.failCreate = true

	_, err := fx.uc.CreateRoom(context.Background(), "host-1", game.Config{QuizType: quiz.TypeCapitals, IsHostPlaying: true})
	assert.ErrorIs(t, err, ErrCodigosEsgotados)
}

func TestJoinRoom_Idempotente(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)

	_, err := fx.uc.JoinRoom(context.Background(), room.Code, "guest-1")
	require.NoError(t, err)
	published := fx.broadcaster.snapshotCount()

	// Segunda entrada do mesmo jogador: sala devolvida, nada republicado.
	again, err := fx.uc.JoinRoom(context.Background(), room.Code, "guest-1")
	require.NoError(t, err)
	assert.Len(t, again.Players, 2)
	assert.Equal(t, published, fx.broadcaster.snapshotCount())
}

func TestJoinRoom_SalaInexistente(t *testing.T) {
	fx := newGameFixture(t, 3)

	_, err := fx.uc.JoinRoom(context.Background(), "000000", "guest-1")
	assert.ErrorIs(t, err, ErrSalaNaoEncontrada)
}

func TestStartGame_ApenasAnfitriao(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)
	_, err := fx.uc.JoinRoom(context.Background(), room.Code, "guest-1")
	require.NoError(t, err)

	_, err = fx.uc.StartGame(context.Background(), room.Code, "guest-1")
	assert.ErrorIs(t, err, game.ErrApenasAnfitriao)

	_, err = fx.uc.StartGame(context.Background(), room.Code, "host-1")
	require.NoError(t, err)
	assert.Equal(t, game.StatusPlaying, fx.broadcaster.lastSnapshot().Status)
}

func TestSubmitAnswer_AvancoAgendado(t *testing.T) {
	fx := newGameFixture(t, 2)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)

	// Primeira resposta publica imediatamente, mas não avança a rodada.
	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "host-1", 2)
	require.NoError(t, err)
	assert.Equal(t, 0, fx.broadcaster.lastSnapshot().CurrentQuestionIndex)

	// A última resposta fecha a rodada; o avanço chega após o atraso.
	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "guest-1", 0)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap := fx.broadcaster.lastSnapshot()
		return snap != nil && snap.CurrentQuestionIndex == 1
	}, time.Second, time.Millisecond, "o avanço de rodada agendado não chegou")

	for _, p := range fx.broadcaster.lastSnapshot().Players {
		assert.False(t, p.HasAnsweredCurrent)
	}
}

func TestSubmitAnswer_PartidaCompleta(t *testing.T) {
	fx := newGameFixture(t, 2)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)

	answer := func(userID string, idx int) {
		_, err := fx.uc.SubmitAnswer(ctx, room.Code, userID, idx)
		require.NoError(t, err)
	}

	// Rodada 1: anfitrião acerta, convidado erra.
	answer("host-1", 2)
	answer("guest-1", 0)
	require.Eventually(t, func() bool {
		snap := fx.broadcaster.lastSnapshot()
		return snap != nil && snap.CurrentQuestionIndex == 1
	}, time.Second, time.Millisecond)

	// Rodada 2 (última): os dois acertam; a partida termina.
	answer("host-1", 2)
	answer("guest-1", 2)
	require.Eventually(t, func() bool {
		snap := fx.broadcaster.lastSnapshot()
		return snap != nil && snap.Status == game.StatusFinished
	}, time.Second, time.Millisecond)

	final := fx.broadcaster.lastSnapshot()
	assert.Greater(t, final.Players[0].Score, final.Players[1].Score)

	// O arquivamento roda em background após o término.
	require.Eventually(t, func() bool {
		return len(fx.resultRepo.saved()) == 1
	}, time.Second, time.Millisecond)

	saved := fx.resultRepo.saved()[0]
	assert.Equal(t, room.Code, saved.RoomCode)
	assert.Equal(t, "host-1", saved.WinnerID)
	require.Len(t, saved.Scores, 2)

	require.Eventually(t, func() bool {
		return len(fx.userRepo.recordedGames()) == 2
	}, time.Second, time.Millisecond)

	for _, g := range fx.userRepo.recordedGames() {
		if g.UserID == "host-1" {
			assert.True(t, g.Won)
			assert.Equal(t, 2, g.BestStreak, "anfitrião acertou as duas rodadas seguidas")
		} else {
			assert.False(t, g.Won)
		}
	}
}

func TestSubmitAnswer_TimerObsoleto(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)

	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "host-1", 2)
	require.NoError(t, err)
	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "guest-1", 2)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap := fx.broadcaster.lastSnapshot()
		return snap != nil && snap.CurrentQuestionIndex == 1
	}, time.Second, time.Millisecond)

	// Um avanço manual para o índice já passado deve ser ignorado sem
	// publicar nada.
	published := fx.broadcaster.snapshotCount()
	fx.uc.advanceRound(room.Code, 0)
	assert.Equal(t, published, fx.broadcaster.snapshotCount())
	assert.Equal(t, 1, fx.broadcaster.lastSnapshot().CurrentQuestionIndex)
}

func TestLeaveRoom_AnfitriaoSaiDeSalaVazia(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)

	left, err := fx.uc.LeaveRoom(context.Background(), room.Code, "host-1")
	require.NoError(t, err)
	assert.True(t, left)

	// A sala some do registro e os assinantes recebem o tombstone.
	stored, err := fx.roomRepo.FindByCode(room.Code)
	require.NoError(t, err)
	assert.Nil(t, stored)
	assert.Equal(t, []string{room.Code}, fx.broadcaster.closedCodes())
}

func TestLeaveRoom_ReatribuicaoDeAnfitriao(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)

	left, err := fx.uc.LeaveRoom(ctx, room.Code, "host-1")
	require.NoError(t, err)
	assert.True(t, left)

	snap := fx.broadcaster.lastSnapshot()
	assert.Equal(t, "guest-1", snap.Host.ID)
	assert.Equal(t, game.StatusWaiting, snap.Status)
}

func TestLeaveRoom_EncerraPartidaComUmRestante(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)

	left, err := fx.uc.LeaveRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	assert.True(t, left)
	assert.Equal(t, game.StatusFinished, fx.broadcaster.lastSnapshot().Status)

	// Partida encerrada por abandono também é arquivada.
	require.Eventually(t, func() bool {
		return len(fx.resultRepo.saved()) == 1
	}, time.Second, time.Millisecond)
}

func (uc *GameUseCases) hasRoomLock(code string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	_, ok := uc.roomLocks[code]
	return ok
}

func TestRoomLockColetadoAposTermino(t *testing.T) {
	fx := newGameFixture(t, 1)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)
	require.True(t, fx.uc.hasRoomLock(room.Code))

	// Única pergunta respondida por todos: a sala finaliza e a entrada do
	// lock é coletada junto, como os tópicos do hub.
	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "host-1", 2)
	require.NoError(t, err)
	_, err = fx.uc.SubmitAnswer(ctx, room.Code, "guest-1", 0)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		snap := fx.broadcaster.lastSnapshot()
		return snap != nil && snap.Status == game.StatusFinished
	}, time.Second, time.Millisecond)

	require.Eventually(t, func() bool {
		return !fx.uc.hasRoomLock(room.Code)
	}, time.Second, time.Millisecond)
}

func TestRoomLockColetadoAposAbandono(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)
	ctx := context.Background()

	_, err := fx.uc.JoinRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)
	_, err = fx.uc.StartGame(ctx, room.Code, "host-1")
	require.NoError(t, err)

	// Abandono que encerra a partida também libera a entrada do lock.
	_, err = fx.uc.LeaveRoom(ctx, room.Code, "guest-1")
	require.NoError(t, err)

	assert.Equal(t, game.StatusFinished, fx.broadcaster.lastSnapshot().Status)
	assert.False(t, fx.uc.hasRoomLock(room.Code))
}

func TestGetRoom(t *testing.T) {
	fx := newGameFixture(t, 3)
	room := fx.createRoom(t)

	found, err := fx.uc.GetRoom(room.Code)
	require.NoError(t, err)
	assert.Same(t, room, found)

	_, err = fx.uc.GetRoom("999999")
	assert.ErrorIs(t, err, ErrSalaNaoEncontrada)
}
