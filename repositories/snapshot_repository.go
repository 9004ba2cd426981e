package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/turf-kings/models"
	"github.com/lib/pq"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSnapshotNotFound = errors.New("tournament snapshot not found")
	ErrSnapshotConflict = errors.New("tournament snapshot conflict")
	ErrSnapshotCorrupt  = errors.New("tournament snapshot is corrupt")
)

// SnapshotRepository persists the whole tournament state as one unit.
type SnapshotRepository interface {
	EnsureSchema(ctx context.Context) error
	Load(ctx context.Context) (*models.Snapshot, error)
	Save(ctx context.Context, snapshot models.Snapshot) error
}

type sqlSnapshotRepository struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewSnapshotRepository(db *sql.DB, dialect Dialect) SnapshotRepository {
	return &sqlSnapshotRepository{db: db, dialect: dialect, now: time.Now}
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS tournament_state (
		id                 INTEGER PRIMARY KEY,
		match_no           INTEGER NOT NULL,
		team_a_id          TEXT NOT NULL,
		team_b_id          TEXT NOT NULL,
		standby_id         TEXT NOT NULL,
		top_scorer_player  TEXT,
		top_scorer_team_id TEXT,
		top_scorer_goals   INTEGER NOT NULL DEFAULT 0,
		updated_at         BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		label    TEXT NOT NULL,
		captain  TEXT NOT NULL,
		streak   INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS team_players (
		team_id  TEXT NOT NULL,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		PRIMARY KEY (team_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS match_results (
		match_no   INTEGER PRIMARY KEY,
		team_a_id  TEXT NOT NULL,
		team_b_id  TEXT NOT NULL,
		standby_id TEXT NOT NULL,
		goals_a    INTEGER NOT NULL,
		goals_b    INTEGER NOT NULL,
		winner_id  TEXT,
		is_draw    INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS match_events (
		id           TEXT PRIMARY KEY,
		seq          INTEGER NOT NULL,
		match_no     INTEGER NOT NULL,
		type         TEXT NOT NULL,
		team_id      TEXT NOT NULL,
		scorer       TEXT NOT NULL,
		assist       TEXT,
		time_seconds INTEGER NOT NULL
	)`,
}

func (r *sqlSnapshotRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func (r *sqlSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, error) {
	snapshot := &models.Snapshot{}
	var (
		topPlayer, topTeam sql.NullString
		topGoals           int
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT match_no, team_a_id, team_b_id, standby_id, top_scorer_player, top_scorer_team_id, top_scorer_goals
		FROM tournament_state
		WHERE id = 1`,
	).Scan(
		&snapshot.MatchNo,
		&snapshot.Pairing.TeamAID,
		&snapshot.Pairing.TeamBID,
		&snapshot.Pairing.StandbyID,
		&topPlayer,
		&topTeam,
		&topGoals,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to load tournament state: %w", err)
	}
	if topPlayer.Valid {
		snapshot.Form.TopScorer = &models.TopScorer{Player: topPlayer.String, TeamID: topTeam.String, Goals: topGoals}
	}

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Команды, серии побед и составы
	g.Go(func() error {
		teams, streaks, err := r.loadTeams(gCtx)
		if err != nil {
			return err
		}
		snapshot.Teams = teams
		snapshot.Form.Streaks = streaks
		return nil
	})

	// 2. Результаты матчей
	g.Go(func() error {
		results, err := r.loadResults(gCtx)
		if err != nil {
			return err
		}
		snapshot.Results = results
		return nil
	})

	// 3. События матчей
	g.Go(func() error {
		events, err := r.loadEvents(gCtx)
		if err != nil {
			return err
		}
		snapshot.Events = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *sqlSnapshotRepository) loadTeams(ctx context.Context) ([]models.Team, map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, label, captain, streak FROM teams ORDER BY position ASC`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0, models.TeamsPerTournament)
	streaks := make(map[string]int, models.TeamsPerTournament)
	index := make(map[string]int, models.TeamsPerTournament)
	for rows.Next() {
		var (
			t      models.Team
			streak int
		)
		if err := rows.Scan(&t.ID, &t.Label, &t.Captain, &streak); err != nil {
			return nil, nil, fmt.Errorf("failed to scan team: %w", err)
		}
		t.Players = []string{}
		index[t.ID] = len(teams)
		teams = append(teams, t)
		streaks[t.ID] = streak
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	rows.Close()

	playerRows, err := r.db.QueryContext(ctx, `SELECT team_id, name FROM team_players ORDER BY team_id ASC, position ASC`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load players: %w", err)
	}
	defer playerRows.Close()
	for playerRows.Next() {
		var teamID, name string
		if err := playerRows.Scan(&teamID, &name); err != nil {
			return nil, nil, fmt.Errorf("failed to scan player: %w", err)
		}
		i, ok := index[teamID]
		if !ok {
			return nil, nil, fmt.Errorf("%w: player %q references unknown team %q", ErrSnapshotCorrupt, name, teamID)
		}
		teams[i].Players = append(teams[i].Players, name)
	}
	if err := playerRows.Err(); err != nil {
		return nil, nil, err
	}
	return teams, streaks, nil
}

func (r *sqlSnapshotRepository) loadResults(ctx context.Context) ([]models.MatchResult, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT match_no, team_a_id, team_b_id, standby_id, goals_a, goals_b, winner_id, is_draw
		FROM match_results
		ORDER BY match_no ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	defer rows.Close()

	results := make([]models.MatchResult, 0)
	for rows.Next() {
		var (
			res    models.MatchResult
			winner sql.NullString
			isDraw int
		)
		if err := rows.Scan(&res.MatchNo, &res.TeamAID, &res.TeamBID, &res.StandbyID,
			&res.GoalsA, &res.GoalsB, &winner, &isDraw); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		if winner.Valid {
			w := winner.String
			res.WinnerID = &w
		}
		res.IsDraw = isDraw != 0
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *sqlSnapshotRepository) loadEvents(ctx context.Context) ([]models.MatchEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, match_no, type, team_id, scorer, assist, time_seconds
		FROM match_events
		ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}
	defer rows.Close()

	events := make([]models.MatchEvent, 0)
	for rows.Next() {
		var (
			e         models.MatchEvent
			eventType string
			scorer    string
			assist    sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.MatchNo, &eventType, &e.TeamID, &scorer, &assist, &e.TimeSeconds); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		switch models.EventType(eventType) {
		case models.EventTypeGoal:
			e.Play = models.Goal{Scorer: scorer, Assist: assist.String}
		case models.EventTypeShibobo:
			if assist.Valid && assist.String != "" {
				return nil, fmt.Errorf("%w: event %s: %w", ErrSnapshotCorrupt, e.ID, models.ErrShiboboAssist)
			}
			e.Play = models.Shibobo{Scorer: scorer}
		default:
			return nil, fmt.Errorf("%w: event %s: %w %q", ErrSnapshotCorrupt, e.ID, models.ErrUnknownEventType, eventType)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

// Save replaces everything stored with snapshot inside one transaction.
func (r *sqlSnapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, table := range []string{"match_events", "match_results", "team_players", "teams", "tournament_state"} {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err = r.saveState(ctx, tx, snapshot); err != nil {
		return err
	}
	if err = r.saveTeams(ctx, tx, snapshot); err != nil {
		return err
	}
	if err = r.saveResults(ctx, tx, snapshot.Results); err != nil {
		return err
	}
	return r.saveEvents(ctx, tx, snapshot.Events)
}

func (r *sqlSnapshotRepository) saveState(ctx context.Context, exec SQLExecutor, s models.Snapshot) error {
	var (
		topPlayer, topTeam string
		topGoals           int
	)
	if s.Form.TopScorer != nil {
		topPlayer, topTeam, topGoals = s.Form.TopScorer.Player, s.Form.TopScorer.TeamID, s.Form.TopScorer.Goals
	}
	query := rebind(r.dialect, `
		INSERT INTO tournament_state
			(id, match_no, team_a_id, team_b_id, standby_id, top_scorer_player, top_scorer_team_id, top_scorer_goals, updated_at)
		VALUES (`+placeholders(1, 9)+`)`)
	result, err := exec.ExecContext(ctx, query,
		1, s.MatchNo, s.Pairing.TeamAID, s.Pairing.TeamBID, s.Pairing.StandbyID,
		nullString(topPlayer), nullString(topTeam), topGoals, r.now().UnixMilli(),
	)
	if err != nil {
		return r.handleSnapshotError(err)
	}
	return checkAffectedRows(result, fmt.Errorf("%w: tournament state was not written", ErrSnapshotConflict))
}

func (r *sqlSnapshotRepository) saveTeams(ctx context.Context, exec SQLExecutor, s models.Snapshot) error {
	teamQuery := rebind(r.dialect, `INSERT INTO teams (id, position, label, captain, streak) VALUES (`+placeholders(1, 5)+`)`)
	playerQuery := rebind(r.dialect, `INSERT INTO team_players (team_id, position, name) VALUES (`+placeholders(1, 3)+`)`)
	for i, t := range s.Teams {
		if _, err := exec.ExecContext(ctx, teamQuery, t.ID, i, t.Label, t.Captain, s.Form.Streaks[t.ID]); err != nil {
			return fmt.Errorf("failed to save team %s: %w", t.ID, r.handleSnapshotError(err))
		}
		for j, name := range t.Players {
			if _, err := exec.ExecContext(ctx, playerQuery, t.ID, j, name); err != nil {
				return fmt.Errorf("failed to save player %q of team %s: %w", name, t.ID, r.handleSnapshotError(err))
			}
		}
	}
	return nil
}

func (r *sqlSnapshotRepository) saveResults(ctx context.Context, exec SQLExecutor, results []models.MatchResult) error {
	query := rebind(r.dialect, `
		INSERT INTO match_results (match_no, team_a_id, team_b_id, standby_id, goals_a, goals_b, winner_id, is_draw)
		VALUES (`+placeholders(1, 8)+`)`)
	for _, res := range results {
		var winner sql.NullString
		if res.WinnerID != nil {
			winner = nullString(*res.WinnerID)
		}
		if _, err := exec.ExecContext(ctx, query,
			res.MatchNo, res.TeamAID, res.TeamBID, res.StandbyID, res.GoalsA, res.GoalsB, winner, boolToInt(res.IsDraw),
		); err != nil {
			return fmt.Errorf("failed to save result of match %d: %w", res.MatchNo, r.handleSnapshotError(err))
		}
	}
	return nil
}

func (r *sqlSnapshotRepository) saveEvents(ctx context.Context, exec SQLExecutor, events []models.MatchEvent) error {
	query := rebind(r.dialect, `
		INSERT INTO match_events (id, seq, match_no, type, team_id, scorer, assist, time_seconds)
		VALUES (`+placeholders(1, 8)+`)`)
	for i, e := range events {
		if e.Play == nil {
			return fmt.Errorf("%w: event %s has no play", ErrSnapshotCorrupt, e.ID)
		}
		var assist sql.NullString
		if g, ok := e.Play.(models.Goal); ok {
			assist = nullString(g.Assist)
		}
		if _, err := exec.ExecContext(ctx, query,
			e.ID, i, e.MatchNo, string(e.Play.Type()), e.TeamID, e.Play.ScorerName(), assist, e.TimeSeconds,
		); err != nil {
			return fmt.Errorf("failed to save event %s: %w", e.ID, r.handleSnapshotError(err))
		}
	}
	return nil
}

func (r *sqlSnapshotRepository) handleSnapshotError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" { // unique_violation
		return fmt.Errorf("%w: %s", ErrSnapshotConflict, pqErr.Constraint)
	}
	return err
}
