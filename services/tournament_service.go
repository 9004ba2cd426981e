package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Dosada05/turf-kings/brackets"
	"github.com/Dosada05/turf-kings/models"
	"github.com/Dosada05/turf-kings/repositories"
)

// Broadcaster pushes live updates to connected screens.
type Broadcaster interface {
	Broadcast(messageType string, payload interface{})
}

// TournamentSummary is what the landing page ribbon shows.
type TournamentSummary struct {
	MatchNo       int                 `json:"match_no"`
	Pairing       models.Pairing      `json:"pairing"`
	Streaks       map[string]int      `json:"streaks"`
	MatchesPlayed int                 `json:"matches_played"`
	LastResult    *models.MatchResult `json:"last_result,omitempty"`
	TopScorer     *models.TopScorer   `json:"top_scorer,omitempty"`
}

type TournamentService interface {
	Restore(ctx context.Context) error
	State(ctx context.Context) models.Snapshot
	Summary(ctx context.Context) TournamentSummary
	StartNextMatch(ctx context.Context) (int, models.Pairing)
	Teams(ctx context.Context) []models.Team
	CommitMatch(ctx context.Context, matchNo int, outcome models.MatchOutcome, events []models.MatchEvent) (*CommitResult, error)
	SetPairing(ctx context.Context, pairing models.Pairing) (models.Pairing, error)
	ReplaceRoster(ctx context.Context, teams []models.Team) ([]models.Team, error)
	Reset(ctx context.Context) error
	ResetIfUnchanged(ctx context.Context, matchNo int, pairing models.Pairing) error
}

type tournamentService struct {
	persistMu    sync.Mutex
	ledger       *Ledger
	snapshotRepo repositories.SnapshotRepository
	broadcaster  Broadcaster
	logger       *slog.Logger
}

func NewTournamentService(
	ledger *Ledger,
	snapshotRepo repositories.SnapshotRepository,
	broadcaster Broadcaster,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		ledger:       ledger,
		snapshotRepo: snapshotRepo,
		broadcaster:  broadcaster,
		logger:       logger.With(slog.String("service", "tournament")),
	}
}

// Restore loads the persisted snapshot into the ledger. An empty store is
// seeded with the ledger's current (fresh) state.
func (s *tournamentService) Restore(ctx context.Context) error {
	snapshot, err := s.snapshotRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSnapshotNotFound) {
			s.logger.Info("no saved tournament found, starting fresh")
			return s.persist(ctx)
		}
		return fmt.Errorf("failed to load tournament snapshot: %w", err)
	}
	if err := s.ledger.Restore(*snapshot); err != nil {
		return fmt.Errorf("saved tournament snapshot is invalid: %w", err)
	}
	s.logger.Info("tournament restored",
		slog.Int("match_no", snapshot.MatchNo),
		slog.Int("results", len(snapshot.Results)),
		slog.Int("events", len(snapshot.Events)),
	)
	return nil
}

func (s *tournamentService) State(ctx context.Context) models.Snapshot {
	return s.ledger.Snapshot()
}

func (s *tournamentService) Summary(ctx context.Context) TournamentSummary {
	snapshot := s.ledger.Snapshot()
	summary := TournamentSummary{
		MatchNo:       snapshot.MatchNo,
		Pairing:       snapshot.Pairing,
		Streaks:       snapshot.Form.Streaks,
		MatchesPlayed: len(snapshot.Results),
		TopScorer:     snapshot.Form.TopScorer,
	}
	if n := len(snapshot.Results); n > 0 {
		last := snapshot.Results[n-1]
		summary.LastResult = &last
	}
	return summary
}

func (s *tournamentService) StartNextMatch(ctx context.Context) (int, models.Pairing) {
	snapshot := s.ledger.Snapshot()
	return snapshot.MatchNo, snapshot.Pairing
}

func (s *tournamentService) Teams(ctx context.Context) []models.Team {
	return s.ledger.Teams()
}

func (s *tournamentService) CommitMatch(ctx context.Context, matchNo int, outcome models.MatchOutcome, events []models.MatchEvent) (*CommitResult, error) {
	result, err := s.ledger.CommitMatch(matchNo, outcome, events)
	if err != nil {
		s.logger.Warn("match commit rejected", slog.Int("match_no", matchNo), slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("match committed",
		slog.Int("match_no", matchNo),
		slog.String("score", fmt.Sprintf("%d-%d", outcome.GoalsA, outcome.GoalsB)),
		slog.Bool("draw", result.Result.IsDraw),
		slog.String("next_a", result.Pairing.TeamAID),
		slog.String("next_b", result.Pairing.TeamBID),
		slog.String("next_standby", result.Pairing.StandbyID),
	)
	s.broadcast(brackets.MessageMatchCommitted, result)

	if err := s.persist(ctx); err != nil {
		return result, err
	}
	return result, nil
}

func (s *tournamentService) SetPairing(ctx context.Context, pairing models.Pairing) (models.Pairing, error) {
	if err := s.ledger.SetPairing(pairing); err != nil {
		return models.Pairing{}, err
	}
	s.logger.Info("pairing overridden",
		slog.String("team_a", pairing.TeamAID),
		slog.String("team_b", pairing.TeamBID),
		slog.String("standby", pairing.StandbyID),
	)
	s.broadcast(brackets.MessagePairingUpdated, pairing)
	return pairing, s.persist(ctx)
}

func (s *tournamentService) ReplaceRoster(ctx context.Context, teams []models.Team) ([]models.Team, error) {
	if err := s.ledger.ReplaceRoster(teams); err != nil {
		return nil, err
	}
	updated := s.ledger.Teams()
	s.logger.Info("roster replaced")
	s.broadcast(brackets.MessageRosterUpdated, updated)
	return updated, s.persist(ctx)
}

func (s *tournamentService) Reset(ctx context.Context) error {
	s.ledger.Reset()
	s.logger.Warn("tournament reset")
	s.broadcast(brackets.MessageTournamentReset, s.Summary(ctx))
	return s.persist(ctx)
}

// ResetIfUnchanged resets only when the tournament is still at matchNo with
// pairing. Otherwise it returns a ConsistencyError and keeps every record.
func (s *tournamentService) ResetIfUnchanged(ctx context.Context, matchNo int, pairing models.Pairing) error {
	if err := s.ledger.ResetIfUnchanged(matchNo, pairing); err != nil {
		s.logger.Warn("tournament reset skipped", slog.Int("match_no", matchNo), slog.Any("error", err))
		return err
	}
	s.logger.Warn("tournament reset")
	s.broadcast(brackets.MessageTournamentReset, s.Summary(ctx))
	return s.persist(ctx)
}

// persist stores the current ledger snapshot. The ledger keeps its state
// when the save fails; the next successful save catches up.
// Snapshot and Save run under persistMu so an older snapshot never
// overwrites a newer one.
func (s *tournamentService) persist(ctx context.Context) error {
	if s.snapshotRepo == nil {
		return nil
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if err := s.snapshotRepo.Save(ctx, s.ledger.Snapshot()); err != nil {
		s.logger.Error("failed to save tournament snapshot", slog.Any("error", err))
		return fmt.Errorf("%w: %w", ErrSnapshotSaveFailed, err)
	}
	return nil
}

func (s *tournamentService) broadcast(messageType string, payload interface{}) {
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(messageType, payload)
	}
}
