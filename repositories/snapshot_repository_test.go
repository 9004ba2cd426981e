package repositories

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/Dosada05/turf-kings/models"
	_ "modernc.org/sqlite"
)

func newTestRepo(t *testing.T) SnapshotRepository {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repo := NewSnapshotRepository(db, DialectSQLite)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return repo
}

func sampleSnapshot() models.Snapshot {
	s := models.DefaultSnapshot(models.DefaultTeams())
	winner := "team-enoch"
	s.MatchNo = 3
	s.Pairing = models.Pairing{TeamAID: "team-nk", TeamBID: "team-mdu", StandbyID: "team-enoch"}
	s.Form.Streaks["team-enoch"] = 0
	s.Form.TopScorer = &models.TopScorer{Player: "Enoch", TeamID: "team-enoch", Goals: 2}
	s.Results = []models.MatchResult{
		{MatchNo: 1, TeamAID: "team-enoch", TeamBID: "team-mdu", StandbyID: "team-nk", GoalsA: 2, GoalsB: 0, WinnerID: &winner},
		{MatchNo: 2, TeamAID: "team-enoch", TeamBID: "team-nk", StandbyID: "team-mdu", GoalsA: 1, GoalsB: 1, IsDraw: true},
	}
	s.Events = []models.MatchEvent{
		{ID: "e1", MatchNo: 1, TeamID: "team-enoch", TimeSeconds: 12, Play: models.Goal{Scorer: "Enoch", Assist: "Mark"}},
		{ID: "e2", MatchNo: 1, TeamID: "team-mdu", TimeSeconds: 40, Play: models.Shibobo{Scorer: "Chad"}},
		{ID: "e3", MatchNo: 1, TeamID: "team-enoch", TimeSeconds: 300, Play: models.Goal{Scorer: "Enoch"}},
		{ID: "e4", MatchNo: 2, TeamID: "team-nk", TimeSeconds: 5, Play: models.Goal{Scorer: "Dr Babs"}},
		{ID: "e5", MatchNo: 2, TeamID: "team-enoch", TimeSeconds: 9, Play: models.Goal{Scorer: "Munya", Assist: "Uhone"}},
	}
	return s
}

func TestSnapshotRepository_LoadEmpty(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Load(context.Background())

	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Errorf("expected ErrSnapshotNotFound, got %v", err)
	}
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	want := sampleSnapshot()

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if !reflect.DeepEqual(*got, want) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, *got)
	}
}

func TestSnapshotRepository_SaveReplacesEverything(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	if err := repo.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	fresh := models.DefaultSnapshot(models.DefaultTeams())
	fresh.Teams[0].Players = []string{"Solo"}
	if err := repo.Save(ctx, fresh); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(*got, fresh) {
		t.Errorf("expected fresh snapshot, got %+v", *got)
	}
}

func TestSnapshotRepository_FailedSaveKeepsPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	want := sampleSnapshot()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	broken := sampleSnapshot()
	broken.Events = append(broken.Events, broken.Events[0]) // повтор id нарушает PRIMARY KEY
	if err := repo.Save(ctx, broken); err == nil {
		t.Fatal("expected save to fail")
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !reflect.DeepEqual(*got, want) {
		t.Error("failed save must roll back")
	}
}

func TestSnapshotRepository_SaveRejectsEventWithoutPlay(t *testing.T) {
	repo := newTestRepo(t)
	s := sampleSnapshot()
	s.Events[0].Play = nil

	if err := repo.Save(context.Background(), s); !errors.Is(err, ErrSnapshotCorrupt) {
		t.Errorf("expected ErrSnapshotCorrupt, got %v", err)
	}
}
