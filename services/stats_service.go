package services

import (
	"context"

	"github.com/Dosada05/turf-kings/models"
)

// Leaderboards holds both tables built from the same ledger snapshot.
type Leaderboards struct {
	MatchesPlayed int                     `json:"matches_played"`
	Teams         []models.TeamStanding   `json:"teams"`
	Players       []models.PlayerStanding `json:"players"`
	TopScorer     *models.TopScorer       `json:"top_scorer"`
}

type StatsService interface {
	TeamLeaderboard(ctx context.Context) []models.TeamStanding
	PlayerLeaderboard(ctx context.Context) []models.PlayerStanding
	TopScorer(ctx context.Context) *models.TopScorer
	Leaderboards(ctx context.Context) Leaderboards
}

type statsService struct {
	ledger *Ledger
}

func NewStatsService(ledger *Ledger) StatsService {
	return &statsService{ledger: ledger}
}

func (s *statsService) TeamLeaderboard(ctx context.Context) []models.TeamStanding {
	snapshot := s.ledger.Snapshot()
	return TeamLeaderboard(snapshot.Teams, snapshot.Results)
}

func (s *statsService) PlayerLeaderboard(ctx context.Context) []models.PlayerStanding {
	snapshot := s.ledger.Snapshot()
	return PlayerLeaderboard(snapshot.Teams, snapshot.Events)
}

func (s *statsService) TopScorer(ctx context.Context) *models.TopScorer {
	return TopScorer(s.ledger.Events())
}

func (s *statsService) Leaderboards(ctx context.Context) Leaderboards {
	snapshot := s.ledger.Snapshot()
	return Leaderboards{
		MatchesPlayed: len(snapshot.Results),
		Teams:         TeamLeaderboard(snapshot.Teams, snapshot.Results),
		Players:       PlayerLeaderboard(snapshot.Teams, snapshot.Events),
		TopScorer:     TopScorer(snapshot.Events),
	}
}
