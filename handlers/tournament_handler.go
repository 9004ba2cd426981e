package handlers

import (
	"net/http"

	"github.com/Dosada05/turf-kings/models"
	"github.com/Dosada05/turf-kings/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(ts services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

// GetState godoc
// @Summary Полное состояние турнира
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{} "tournament"
// @Router /tournament [get]
func (h *TournamentHandler) GetState(w http.ResponseWriter, r *http.Request) {
	state := h.tournamentService.State(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": state}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSummary godoc
// @Summary Номер матча, пара на поле, серии и лучший бомбардир
// @Tags tournament
// @Produce json
// @Success 200 {object} map[string]interface{} "summary"
// @Router /tournament/summary [get]
func (h *TournamentHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary := h.tournamentService.Summary(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"summary": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// SetPairing godoc
// @Summary Вручную задать пару на поле и запасную команду
// @Tags tournament
// @Accept json
// @Produce json
// @Param input body models.Pairing true "Новая пара"
// @Success 200 {object} map[string]interface{} "pairing"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 422 {object} map[string]string "Пара не является перестановкой команд"
// @Security BearerAuth
// @Router /tournament/pairing [put]
func (h *TournamentHandler) SetPairing(w http.ResponseWriter, r *http.Request) {
	var input models.Pairing
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pairing, err := h.tournamentService.SetPairing(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairing": pairing}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

type replaceRosterInput struct {
	Teams []models.Team `json:"teams"`
}

// ReplaceRoster godoc
// @Summary Обновить составы команд
// @Tags tournament
// @Description Состав id команд не меняется; названия, капитаны и игроки могут.
// @Accept json
// @Produce json
// @Param input body replaceRosterInput true "Три команды"
// @Success 200 {object} map[string]interface{} "teams"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /tournament/roster [put]
func (h *TournamentHandler) ReplaceRoster(w http.ResponseWriter, r *http.Request) {
	var input replaceRosterInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	teams, err := h.tournamentService.ReplaceRoster(r.Context(), input.Teams)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset godoc
// @Summary Сбросить турнир к первому матчу
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "summary"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 403 {object} map[string]string "Нет прав"
// @Security BearerAuth
// @Router /admin/reset [post]
func (h *TournamentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.tournamentService.Reset(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	summary := h.tournamentService.Summary(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"summary": summary}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
