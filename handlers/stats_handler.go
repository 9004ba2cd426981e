package handlers

import (
	"net/http"

	"github.com/Dosada05/turf-kings/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(ss services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: ss}
}

// Teams godoc
// @Summary Таблица команд
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "teams"
// @Router /stats/teams [get]
func (h *StatsHandler) Teams(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": h.statsService.TeamLeaderboard(r.Context())}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Players godoc
// @Summary Таблица игроков
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "players"
// @Router /stats/players [get]
func (h *StatsHandler) Players(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": h.statsService.PlayerLeaderboard(r.Context())}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// TopScorer godoc
// @Summary Лучший бомбардир
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{} "top_scorer (null пока нет голов)"
// @Router /stats/top-scorer [get]
func (h *StatsHandler) TopScorer(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, jsonResponse{"top_scorer": h.statsService.TopScorer(r.Context())}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
