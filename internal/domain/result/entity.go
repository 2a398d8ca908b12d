package result

import "time"

// GameResult é o registro persistente de uma partida finalizada,
// gravado quando a sala atinge FINISHED.
type GameResult struct {
	ID         string        `json:"id"`
	RoomCode   string        `json:"roomCode"`
	QuizType   string        `json:"quizType"`
	WinnerID   string        `json:"winnerId,omitempty"`
	WinnerName string        `json:"winnerName,omitempty"`
	Scores     []PlayerScore `json:"scores"`
	PlayedAt   time.Time     `json:"playedAt"`
}

// PlayerScore é o placar final de um jogador na partida.
type PlayerScore struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}
