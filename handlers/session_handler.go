package handlers

import (
	"net/http"

	"github.com/Dosada05/turf-kings/services"
)

type SessionHandler struct {
	sessionService services.SessionService
}

func NewSessionHandler(ss services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: ss}
}

func (h *SessionHandler) respond(w http.ResponseWriter, r *http.Request, status int, session *services.SessionView, err error) {
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, status, jsonResponse{"session": session}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Start godoc
// @Summary Начать следующий матч
// @Tags session
// @Produce json
// @Success 201 {object} map[string]interface{} "session"
// @Failure 401 {object} map[string]string "Неавторизован"
// @Failure 409 {object} map[string]string "Матч уже идёт"
// @Security BearerAuth
// @Router /session [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Start(r.Context())
	h.respond(w, r, http.StatusCreated, session, err)
}

// Current godoc
// @Summary Текущий матч и его события
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "session"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Router /session [get]
func (h *SessionHandler) Current(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Current(r.Context())
	h.respond(w, r, http.StatusOK, session, err)
}

// AddGoal godoc
// @Summary Записать гол
// @Tags session
// @Accept json
// @Produce json
// @Param input body services.AddGoalInput true "Гол"
// @Success 201 {object} map[string]interface{} "session"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Failure 422 {object} map[string]string "Команда не на поле или игрок не из команды"
// @Security BearerAuth
// @Router /session/events/goal [post]
func (h *SessionHandler) AddGoal(w http.ResponseWriter, r *http.Request) {
	var input services.AddGoalInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	session, err := h.sessionService.AddGoal(r.Context(), input)
	h.respond(w, r, http.StatusCreated, session, err)
}

// AddShibobo godoc
// @Summary Записать шибобо
// @Tags session
// @Accept json
// @Produce json
// @Param input body services.AddShiboboInput true "Шибобо"
// @Success 201 {object} map[string]interface{} "session"
// @Failure 400 {object} map[string]string "Некорректный JSON"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Failure 422 {object} map[string]string "Команда не на поле или игрок не из команды"
// @Security BearerAuth
// @Router /session/events/shibobo [post]
func (h *SessionHandler) AddShibobo(w http.ResponseWriter, r *http.Request) {
	var input services.AddShiboboInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	session, err := h.sessionService.AddShibobo(r.Context(), input)
	h.respond(w, r, http.StatusCreated, session, err)
}

// UndoLast godoc
// @Summary Отменить последнее событие
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "session"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Security BearerAuth
// @Router /session/events/last [delete]
func (h *SessionHandler) UndoLast(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.UndoLast(r.Context())
	h.respond(w, r, http.StatusOK, session, err)
}

// DeleteEvent godoc
// @Summary Удалить событие по позиции
// @Tags session
// @Produce json
// @Param index path int true "Позиция события, с нуля"
// @Success 200 {object} map[string]interface{} "session"
// @Failure 400 {object} map[string]string "Некорректный индекс"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Failure 422 {object} map[string]string "Нет события на этой позиции"
// @Security BearerAuth
// @Router /session/events/{index} [delete]
func (h *SessionHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	index, err := getIndexFromURL(r, "index")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	session, err := h.sessionService.DeleteEvent(r.Context(), index)
	h.respond(w, r, http.StatusOK, session, err)
}

// Discard godoc
// @Summary Отменить матч без записи в таблицу
// @Tags session
// @Success 204 "Матч отменён"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Security BearerAuth
// @Router /session [delete]
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Discard(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// End godoc
// @Summary Завершить матч и записать результат
// @Tags session
// @Produce json
// @Success 200 {object} map[string]interface{} "result, next_pairing, form"
// @Failure 404 {object} map[string]string "Матч не начат"
// @Failure 409 {object} map[string]string "Пара или номер матча устарели"
// @Failure 422 {object} map[string]string "Ошибка валидации"
// @Security BearerAuth
// @Router /session/end [post]
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessionService.End(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"commit": result}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
