package handlers

import (
	"net/http"
	"strconv"

	"github.com/vrstep/geomaster/internal/application/usecases"
)

// RankHandler expõe o ranking global e os resultados recentes.
type RankHandler struct {
	leaderboardUC *usecases.LeaderboardUseCase
	resultUC      *usecases.ResultUseCases
}

func NewRankHandler(leaderboardUC *usecases.LeaderboardUseCase, resultUC *usecases.ResultUseCases) *RankHandler {
	return &RankHandler{leaderboardUC: leaderboardUC, resultUC: resultUC}
}

// Leaderboard godoc
// @Summary Top 20 jogadores por pontuação acumulada
// @Tags Rank
// @Produce json
// @Success 200 {array} user.User
// @Router /leaderboard [get]
func (h *RankHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := h.leaderboardUC.Execute(r.Context())
	if err != nil {
		http.Error(w, "Erro ao buscar ranking", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// RecentResults godoc
// @Summary Últimos resultados de partidas
// @Tags Rank
// @Produce json
// @Param limit query int false "Quantidade (máx. 50)"
// @Success 200 {array} result.GameResult
// @Router /results [get]
func (h *RankHandler) RecentResults(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	results, err := h.resultUC.ListRecent(r.Context(), limit)
	if err != nil {
		http.Error(w, "Erro ao buscar resultados", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, results)
}
