package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Dosada05/turf-kings/brackets"
	"github.com/Dosada05/turf-kings/models"
	"github.com/google/uuid"
)

// SessionView is the live state of the match being played.
type SessionView struct {
	MatchNo int                 `json:"match_no"`
	Pairing models.Pairing      `json:"pairing"`
	GoalsA  int                 `json:"goals_a"`
	GoalsB  int                 `json:"goals_b"`
	Events  []models.MatchEvent `json:"events"`
}

type AddGoalInput struct {
	TeamID      string `json:"team_id"`
	Scorer      string `json:"scorer"`
	Assist      string `json:"assist"`
	TimeSeconds int    `json:"time_seconds"`
}

type AddShiboboInput struct {
	TeamID      string `json:"team_id"`
	Scorer      string `json:"scorer"`
	TimeSeconds int    `json:"time_seconds"`
}

// SessionService owns the event buffer of the match in progress. Nothing
// in the buffer reaches the ledger until End commits it.
type SessionService interface {
	Start(ctx context.Context) (*SessionView, error)
	Current(ctx context.Context) (*SessionView, error)
	AddGoal(ctx context.Context, input AddGoalInput) (*SessionView, error)
	AddShibobo(ctx context.Context, input AddShiboboInput) (*SessionView, error)
	UndoLast(ctx context.Context) (*SessionView, error)
	DeleteEvent(ctx context.Context, index int) (*SessionView, error)
	Discard(ctx context.Context) error
	End(ctx context.Context) (*CommitResult, error)
}

type matchSession struct {
	matchNo int
	pairing models.Pairing
	events  []models.MatchEvent
}

type sessionService struct {
	mu          sync.Mutex
	active      *matchSession
	tournament  TournamentService
	broadcaster Broadcaster
	newID       func() string
	logger      *slog.Logger
}

func NewSessionService(tournament TournamentService, broadcaster Broadcaster, logger *slog.Logger) SessionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionService{
		tournament:  tournament,
		broadcaster: broadcaster,
		newID:       uuid.NewString,
		logger:      logger.With(slog.String("service", "session")),
	}
}

func (s *sessionService) Start(ctx context.Context) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil {
		return nil, ErrSessionAlreadyActive
	}
	matchNo, pairing := s.tournament.StartNextMatch(ctx)
	s.active = &matchSession{matchNo: matchNo, pairing: pairing, events: []models.MatchEvent{}}
	s.logger.Info("match started",
		slog.Int("match_no", matchNo),
		slog.String("team_a", pairing.TeamAID),
		slog.String("team_b", pairing.TeamBID),
	)
	return s.publish(), nil
}

func (s *sessionService) Current(ctx context.Context) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	return s.view(), nil
}

func (s *sessionService) AddGoal(ctx context.Context, input AddGoalInput) (*SessionView, error) {
	return s.add(ctx, input.TeamID, input.TimeSeconds, models.Goal{Scorer: input.Scorer, Assist: input.Assist})
}

func (s *sessionService) AddShibobo(ctx context.Context, input AddShiboboInput) (*SessionView, error) {
	return s.add(ctx, input.TeamID, input.TimeSeconds, models.Shibobo{Scorer: input.Scorer})
}

// add checks the event against the roster as it is now, the same roster
// CommitMatch will check it against.
func (s *sessionService) add(ctx context.Context, teamID string, timeSeconds int, play models.Play) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	event := models.MatchEvent{
		ID:          s.newID(),
		MatchNo:     s.active.matchNo,
		TeamID:      teamID,
		TimeSeconds: timeSeconds,
		Play:        play,
	}
	if err := models.ValidateEvent(event, s.tournament.Teams(ctx), s.active.pairing); err != nil {
		return nil, err
	}
	s.active.events = append(s.active.events, event)
	return s.publish(), nil
}

// UndoLast drops the newest buffered event. An empty buffer is left as is.
func (s *sessionService) UndoLast(ctx context.Context) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if n := len(s.active.events); n > 0 {
		s.active.events = s.active.events[:n-1]
	}
	return s.publish(), nil
}

func (s *sessionService) DeleteEvent(ctx context.Context, index int) (*SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	if index < 0 || index >= len(s.active.events) {
		return nil, models.NewValidationError("index", "no event at position %d", index)
	}
	s.active.events = append(s.active.events[:index], s.active.events[index+1:]...)
	return s.publish(), nil
}

func (s *sessionService) Discard(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ErrNoActiveSession
	}
	s.logger.Info("match discarded", slog.Int("match_no", s.active.matchNo), slog.Int("events", len(s.active.events)))
	s.active = nil
	s.broadcast(nil)
	return nil
}

// End commits the buffer with a score taken from its own goal events.
// If the commit is rejected the session stays open untouched.
func (s *sessionService) End(ctx context.Context) (*CommitResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return nil, ErrNoActiveSession
	}
	view := s.view()
	outcome := models.MatchOutcome{
		TeamAID:   view.Pairing.TeamAID,
		TeamBID:   view.Pairing.TeamBID,
		StandbyID: view.Pairing.StandbyID,
		GoalsA:    view.GoalsA,
		GoalsB:    view.GoalsB,
	}
	result, err := s.tournament.CommitMatch(ctx, view.MatchNo, outcome, view.Events)
	if result == nil {
		return nil, err
	}
	// Матч записан в леджер; сессию закрываем даже если сохранение не удалось.
	s.active = nil
	s.broadcast(nil)
	return result, err
}

func (s *sessionService) view() *SessionView {
	v := &SessionView{
		MatchNo: s.active.matchNo,
		Pairing: s.active.pairing,
		Events:  make([]models.MatchEvent, len(s.active.events)),
	}
	copy(v.Events, s.active.events)
	for _, e := range v.Events {
		if !e.IsGoal() {
			continue
		}
		if e.TeamID == v.Pairing.TeamAID {
			v.GoalsA++
		} else if e.TeamID == v.Pairing.TeamBID {
			v.GoalsB++
		}
	}
	return v
}

func (s *sessionService) publish() *SessionView {
	v := s.view()
	s.broadcast(v)
	return v
}

func (s *sessionService) broadcast(v *SessionView) {
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(brackets.MessageSessionUpdated, v)
	}
}
