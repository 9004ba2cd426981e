package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/turf-kings/brackets"
	"github.com/Dosada05/turf-kings/services"
	"github.com/gorilla/websocket"
)

// MessageInitialState is sent once to a screen right after it connects.
const MessageInitialState = "INITIAL_STATE"

type WebSocketHandler struct {
	hub               *brackets.Hub
	tournamentService services.TournamentService
	upgrader          websocket.Upgrader
	logger            *slog.Logger
}

// NewWebSocketHandler accepts connections from allowedOrigins only; an
// empty list or "*" allows any origin.
func NewWebSocketHandler(hub *brackets.Hub, ts services.TournamentService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger.With(slog.String("handler", "websocket")),
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// ServeWs подключает экран табло к живым обновлениям турнира.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам отвечает клиенту ошибкой.
		h.logger.Warn("failed to upgrade connection", slog.String("remote", r.RemoteAddr), slog.Any("error", err))
		return
	}

	client := h.hub.Attach(conn)
	if err := client.Send(MessageInitialState, h.tournamentService.Summary(r.Context())); err != nil {
		h.logger.Warn("failed to send initial state", slog.Any("error", err))
	}
}
