package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vrstep/geomaster/internal/domain/game"
	"github.com/vrstep/geomaster/internal/domain/result"
	"github.com/vrstep/geomaster/internal/infra/logger"
	"github.com/vrstep/geomaster/internal/ports"
)

// ResultUseCases arquiva partidas finalizadas e acumula estatísticas.
type ResultUseCases struct {
	resultRepo ports.ResultRepository
	userRepo   ports.UserRepository
}

func NewResultUseCases(resultRepo ports.ResultRepository, userRepo ports.UserRepository) *ResultUseCases {
	return &ResultUseCases{resultRepo: resultRepo, userRepo: userRepo}
}

// ArchiveRoom converte uma sala FINISHED em um registro persistente e
// credita o resultado nas estatísticas de cada jogador. O vencedor é o
// maior placar; empate fica com o primeiro na ordem da sala.
func (uc *ResultUseCases) ArchiveRoom(ctx context.Context, room *game.Room) error {
	snap := room.Snapshot()

	res := &result.GameResult{
		ID:       uuid.NewString(),
		RoomCode: snap.Code,
		QuizType: snap.Config.QuizType,
		PlayedAt: time.Now(),
	}

	bestScore := -1
	for _, p := range snap.Players {
		res.Scores = append(res.Scores, result.PlayerScore{
			UserID:   p.UserID,
			Username: p.Username,
			Score:    p.Score,
		})
		if p.Score > bestScore {
			bestScore = p.Score
			res.WinnerID = p.UserID
			res.WinnerName = p.Username
		}
	}

	if err := uc.resultRepo.Save(ctx, res); err != nil {
		return err
	}

	for _, p := range snap.Players {
		won := p.UserID == res.WinnerID
		if err := uc.userRepo.RecordGame(ctx, p.UserID, p.Score, p.BestStreak, won); err != nil {
			// Estatística é melhor-esforço; não desfaz o arquivamento.
			logger.Error("Falha ao atualizar estatísticas", "userId", p.UserID, "erro", err)
		}
	}

	return nil
}

// ListRecent retorna os últimos resultados arquivados.
func (uc *ResultUseCases) ListRecent(ctx context.Context, limit int) ([]*result.GameResult, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	return uc.resultRepo.ListRecent(ctx, limit)
}
