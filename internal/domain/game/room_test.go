package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrstep/geomaster/internal/domain/quiz"
)

func testQuestions(n int) []quiz.Question {
	qs := make([]quiz.Question, n)
	for i := range qs {
		qs[i] = quiz.Question{
			QuestionText:  "Qual é a capital da França?",
			Options:       []string{"Berlin", "Madrid", "Paris", "Rome"},
			CorrectAnswer: "Paris",
		}
	}
	return qs
}

func hostIdentity() Identity {
	return Identity{ID: "host-1", Username: "Anfitrião", Avatar: "default_avatar.png"}
}

func guestIdentity() Identity {
	return Identity{ID: "guest-1", Username: "Convidado", Avatar: "default_avatar.png"}
}

func playingRoom(t *testing.T, start time.Time) *Room {
	t.Helper()
	r := NewRoom("123456", hostIdentity(), Config{Mode: ModeMulti, QuizType: quiz.TypeCapitals, IsHostPlaying: true}, testQuestions(3))
	added, err := r.Join(guestIdentity())
	require.NoError(t, err)
	require.True(t, added)
	require.NoError(t, r.Start("host-1", start))
	return r
}

func TestNewRoom(t *testing.T) {
	t.Run("anfitrião jogando entra já pronto", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))

		assert.Equal(t, StatusWaiting, r.Status)
		require.Len(t, r.Players, 1)
		assert.Equal(t, "host-1", r.Players[0].UserID)
		assert.True(t, r.Players[0].IsReady)
	})

	t.Run("modo projetor começa sem jogadores", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: false}, testQuestions(2))
		assert.Empty(t, r.Players)
	})

	t.Run("copia no máximo 10 perguntas do catálogo", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(25))
		assert.Len(t, r.Questions, MaxQuestionsPerRoom)
	})

	t.Run("perguntas são cópia, não referência", func(t *testing.T) {
		catalog := testQuestions(2)
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, catalog)

		catalog[0].CorrectAnswer = "Berlin"
		assert.Equal(t, "Paris", r.Questions[0].CorrectAnswer)
	})
}

func TestJoin(t *testing.T) {
	t.Run("entrada dupla é idempotente", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))

		added, err := r.Join(guestIdentity())
		require.NoError(t, err)
		assert.True(t, added)

		added, err = r.Join(guestIdentity())
		require.NoError(t, err)
		assert.False(t, added, "segunda entrada não deve gerar novo broadcast")
		assert.Len(t, r.Players, 2)
	})

	t.Run("entrada após o início é rejeitada", func(t *testing.T) {
		r := playingRoom(t, time.Now())

		_, err := r.Join(Identity{ID: "late-1", Username: "Atrasado"})
		assert.ErrorIs(t, err, ErrJogoJaIniciado)
	})
}

func TestToggleReady(t *testing.T) {
	r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
	_, err := r.Join(guestIdentity())
	require.NoError(t, err)

	require.NoError(t, r.ToggleReady("guest-1"))
	assert.True(t, r.Players[1].IsReady)

	require.NoError(t, r.ToggleReady("guest-1"))
	assert.False(t, r.Players[1].IsReady)

	assert.ErrorIs(t, r.ToggleReady("intruso"), ErrNaoParticipante)
}

func TestStart(t *testing.T) {
	newWaitingRoom := func() *Room {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		_, err := r.Join(guestIdentity())
		require.NoError(t, err)
		return r
	}

	t.Run("apenas o anfitrião inicia", func(t *testing.T) {
		r := newWaitingRoom()
		assert.ErrorIs(t, r.Start("guest-1", time.Now()), ErrApenasAnfitriao)
	})

	t.Run("exige pelo menos 2 jogadores", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		assert.ErrorIs(t, r.Start("host-1", time.Now()), ErrJogadoresInsuficientes)
	})

	t.Run("início não exige todos prontos", func(t *testing.T) {
		// O convidado nunca marcou pronto; o gate do servidor é a contagem.
		r := newWaitingRoom()
		now := time.Now()

		require.NoError(t, r.Start("host-1", now))
		assert.Equal(t, StatusPlaying, r.Status)
		assert.Equal(t, 0, r.CurrentQuestionIndex)
		require.NotNil(t, r.RoundStartTime)
		assert.Equal(t, now, *r.RoundStartTime)
	})

	t.Run("início duplo é rejeitado", func(t *testing.T) {
		r := newWaitingRoom()
		require.NoError(t, r.Start("host-1", time.Now()))
		assert.ErrorIs(t, r.Start("host-1", time.Now()), ErrJogoJaIniciado)
	})
}

func TestSubmitAnswerScoring(t *testing.T) {
	start := time.Now()

	cases := []struct {
		name        string
		answerIndex int
		elapsed     time.Duration
		wantScore   int
		wantStreak  int
	}{
		{"acerto rápido leva bônus cheio", 2, 3 * time.Second, 220, 1},
		{"acerto perto do fim da janela de bônus", 2, 14500 * time.Millisecond, 105, 1},
		{"acerto lento vale só os pontos base", 2, 20 * time.Second, 100, 1},
		{"erro zera a sequência", 0, 3 * time.Second, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := playingRoom(t, start)

			_, _, err := r.SubmitAnswer("guest-1", tc.answerIndex, start.Add(tc.elapsed))
			require.NoError(t, err)

			p := r.Players[1]
			assert.Equal(t, tc.wantScore, p.Score)
			assert.Equal(t, tc.wantStreak, p.Streak)
			assert.True(t, p.HasAnsweredCurrent)
			require.NotNil(t, p.CurrentAnswer)
			assert.Equal(t, tc.answerIndex, *p.CurrentAnswer)
		})
	}

	t.Run("timeout (-1) conta como errado sem marcador", func(t *testing.T) {
		r := playingRoom(t, start)
		r.Players[1].Streak = 3

		_, _, err := r.SubmitAnswer("guest-1", -1, start.Add(2*time.Second))
		require.NoError(t, err)

		p := r.Players[1]
		assert.True(t, p.HasAnsweredCurrent)
		assert.Nil(t, p.CurrentAnswer)
		assert.Zero(t, p.Score)
		assert.Zero(t, p.Streak)
	})

	t.Run("índice fora do intervalo é tratado como timeout", func(t *testing.T) {
		r := playingRoom(t, start)

		_, _, err := r.SubmitAnswer("guest-1", 7, start.Add(2*time.Second))
		require.NoError(t, err)
		assert.Nil(t, r.Players[1].CurrentAnswer)
	})
}

func TestSubmitAnswerGuards(t *testing.T) {
	start := time.Now()

	t.Run("fora de PLAYING", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		_, _, err := r.SubmitAnswer("host-1", 0, start)
		assert.ErrorIs(t, err, ErrPartidaNaoAndamento)
	})

	t.Run("não participante", func(t *testing.T) {
		r := playingRoom(t, start)
		_, _, err := r.SubmitAnswer("intruso", 0, start)
		assert.ErrorIs(t, err, ErrNaoParticipante)
	})

	t.Run("resposta dupla na mesma rodada", func(t *testing.T) {
		r := playingRoom(t, start)
		_, _, err := r.SubmitAnswer("guest-1", 0, start)
		require.NoError(t, err)

		_, _, err = r.SubmitAnswer("guest-1", 2, start)
		assert.ErrorIs(t, err, ErrJaRespondeu)
	})
}

func TestSubmitAnswerAllAnswered(t *testing.T) {
	start := time.Now()
	r := playingRoom(t, start)

	allAnswered, questionIndex, err := r.SubmitAnswer("host-1", 2, start.Add(time.Second))
	require.NoError(t, err)
	assert.False(t, allAnswered)
	assert.Equal(t, 0, questionIndex)

	allAnswered, questionIndex, err = r.SubmitAnswer("guest-1", 0, start.Add(2*time.Second))
	require.NoError(t, err)
	assert.True(t, allAnswered, "último pendente fecha a rodada")
	assert.Equal(t, 0, questionIndex)
}

func TestAdvanceRound(t *testing.T) {
	start := time.Now()

	t.Run("avança e limpa o estado da rodada", func(t *testing.T) {
		r := playingRoom(t, start)
		_, _, err := r.SubmitAnswer("host-1", 2, start.Add(time.Second))
		require.NoError(t, err)
		_, _, err = r.SubmitAnswer("guest-1", 0, start.Add(time.Second))
		require.NoError(t, err)

		next := start.Add(3 * time.Second)
		advanced, finished := r.AdvanceRound(0, next)
		assert.True(t, advanced)
		assert.False(t, finished)
		assert.Equal(t, 1, r.CurrentQuestionIndex)
		assert.Equal(t, next, *r.RoundStartTime)

		for _, p := range r.Players {
			assert.False(t, p.HasAnsweredCurrent)
			assert.Nil(t, p.CurrentAnswer)
		}
		// A pontuação acumulada sobrevive ao avanço.
		assert.NotZero(t, r.Players[0].Score)
	})

	t.Run("timer obsoleto é no-op", func(t *testing.T) {
		r := playingRoom(t, start)
		advanced, finished := r.AdvanceRound(0, start.Add(time.Second))
		require.True(t, advanced)

		// Timer antigo agendado para o índice 0 dispara tarde demais.
		advanced, finished = r.AdvanceRound(0, start.Add(2*time.Second))
		assert.False(t, advanced)
		assert.False(t, finished)
		assert.Equal(t, 1, r.CurrentQuestionIndex)
	})

	t.Run("última pergunta finaliza a partida", func(t *testing.T) {
		r := playingRoom(t, start) // 3 perguntas

		_, finished := r.AdvanceRound(0, start)
		require.False(t, finished)
		_, finished = r.AdvanceRound(1, start)
		require.False(t, finished)

		advanced, finished := r.AdvanceRound(2, start)
		assert.False(t, advanced)
		assert.True(t, finished)
		assert.Equal(t, StatusFinished, r.Status)
		assert.True(t, r.IsFinished())
	})

	t.Run("não avança sala finalizada", func(t *testing.T) {
		r := playingRoom(t, start)
		r.AdvanceRound(0, start)
		r.AdvanceRound(1, start)
		r.AdvanceRound(2, start)

		advanced, finished := r.AdvanceRound(2, start)
		assert.False(t, advanced)
		assert.False(t, finished)
	})
}

func TestRemovePlayer(t *testing.T) {
	t.Run("saída de convidado em WAITING", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		_, err := r.Join(guestIdentity())
		require.NoError(t, err)

		res, err := r.RemovePlayer("guest-1")
		require.NoError(t, err)
		assert.Nil(t, res.NewHost)
		assert.False(t, res.Deleted)
		assert.False(t, res.Finished)
		assert.Len(t, r.Players, 1)
	})

	t.Run("anfitrião sai e o primeiro da ordem assume", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		_, err := r.Join(guestIdentity())
		require.NoError(t, err)

		res, err := r.RemovePlayer("host-1")
		require.NoError(t, err)
		require.NotNil(t, res.NewHost)
		assert.Equal(t, "guest-1", res.NewHost.ID)
		assert.Equal(t, "guest-1", r.Host.ID)
	})

	t.Run("anfitrião sai de WAITING vazio: sala apagada", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))

		res, err := r.RemovePlayer("host-1")
		require.NoError(t, err)
		assert.True(t, res.Deleted)
	})

	t.Run("PLAYING com menos de 2 restantes encerra", func(t *testing.T) {
		r := playingRoom(t, time.Now())

		res, err := r.RemovePlayer("guest-1")
		require.NoError(t, err)
		assert.True(t, res.Finished)
		assert.Equal(t, StatusFinished, r.Status)
	})

	t.Run("saída de sala FINISHED é no-op aceito", func(t *testing.T) {
		r := playingRoom(t, time.Now())
		r.AdvanceRound(0, time.Now())
		r.AdvanceRound(1, time.Now())
		r.AdvanceRound(2, time.Now())
		require.True(t, r.IsFinished())

		res, err := r.RemovePlayer("guest-1")
		require.NoError(t, err)
		assert.False(t, res.Deleted)
		assert.False(t, res.Finished)
		assert.Len(t, r.Players, 2, "estado terminal é somente leitura")
	})

	t.Run("não participante", func(t *testing.T) {
		r := NewRoom("123456", hostIdentity(), Config{IsHostPlaying: true}, testQuestions(2))
		_, err := r.RemovePlayer("intruso")
		assert.ErrorIs(t, err, ErrNaoParticipante)
	})
}

func TestSnapshot(t *testing.T) {
	start := time.Now()
	r := playingRoom(t, start)
	_, _, err := r.SubmitAnswer("guest-1", 2, start.Add(time.Second))
	require.NoError(t, err)

	snap := r.Snapshot()

	assert.Equal(t, "123456", snap.Code)
	assert.Equal(t, StatusPlaying, snap.Status)
	require.Len(t, snap.Players, 2)
	require.NotNil(t, snap.Players[1].CurrentAnswer)
	assert.Equal(t, 2, *snap.Players[1].CurrentAnswer)
	assert.Equal(t, "Paris", snap.Questions[0].CorrectAnswer)

	// O snapshot é uma cópia profunda: mutações posteriores da sala não
	// vazam para um snapshot já emitido.
	r.AdvanceRound(0, start.Add(5*time.Second))
	assert.Equal(t, 0, snap.CurrentQuestionIndex)
	assert.True(t, snap.Players[1].HasAnsweredCurrent)
	assert.NotNil(t, snap.Players[1].CurrentAnswer)
}
