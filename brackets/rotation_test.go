package brackets

import (
	"errors"
	"sort"
	"testing"

	"github.com/Dosada05/turf-kings/models"
)

func formFor(ids ...string) models.FormState {
	streaks := make(map[string]int, len(ids))
	for _, id := range ids {
		streaks[id] = 0
	}
	return models.FormState{Streaks: streaks}
}

func sortedIDs(p models.Pairing) []string {
	ids := p.IDs()
	out := ids[:]
	sort.Strings(out)
	return out
}

func TestComputeNextFromResult_PermutationInvariant(t *testing.T) {
	ids := []string{"x", "y", "z"}
	pairings := []models.Pairing{
		{TeamAID: "x", TeamBID: "y", StandbyID: "z"},
		{TeamAID: "x", TeamBID: "z", StandbyID: "y"},
		{TeamAID: "y", TeamBID: "x", StandbyID: "z"},
		{TeamAID: "y", TeamBID: "z", StandbyID: "x"},
		{TeamAID: "z", TeamBID: "x", StandbyID: "y"},
		{TeamAID: "z", TeamBID: "y", StandbyID: "x"},
	}

	for _, p := range pairings {
		for goalsA := 0; goalsA <= 4; goalsA++ {
			for goalsB := 0; goalsB <= 4; goalsB++ {
				outcome := models.MatchOutcome{TeamAID: p.TeamAID, TeamBID: p.TeamBID, StandbyID: p.StandbyID, GoalsA: goalsA, GoalsB: goalsB}
				res, err := ComputeNextFromResult(formFor(ids...), outcome)
				if err != nil {
					t.Fatalf("%+v: unexpected error: %v", outcome, err)
				}
				got := sortedIDs(res.Next)
				if got[0] != "x" || got[1] != "y" || got[2] != "z" {
					t.Errorf("%+v: next pairing %+v is not a permutation of x,y,z", outcome, res.Next)
				}
				if len(res.UpdatedForm.Streaks) != 3 {
					t.Errorf("%+v: expected 3 streaks, got %d", outcome, len(res.UpdatedForm.Streaks))
				}
			}
		}
	}
}

func TestComputeNextFromResult_Decisive(t *testing.T) {
	tests := []struct {
		name        string
		goalsA      int
		goalsB      int
		wantWinner  string
		wantNext    models.Pairing
		wantStreaks map[string]int
	}{
		{
			name:        "team A wins",
			goalsA:      2,
			goalsB:      0,
			wantWinner:  "x",
			wantNext:    models.Pairing{TeamAID: "x", TeamBID: "z", StandbyID: "y"},
			wantStreaks: map[string]int{"x": 1, "y": 0, "z": 0},
		},
		{
			name:        "team B wins",
			goalsA:      1,
			goalsB:      4,
			wantWinner:  "y",
			wantNext:    models.Pairing{TeamAID: "y", TeamBID: "z", StandbyID: "x"},
			wantStreaks: map[string]int{"x": 0, "y": 1, "z": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "z", GoalsA: tt.goalsA, GoalsB: tt.goalsB}

			res, err := ComputeNextFromResult(formFor("x", "y", "z"), outcome)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.IsDraw {
				t.Error("expected decisive result")
			}
			if res.WinnerID == nil || *res.WinnerID != tt.wantWinner {
				t.Fatalf("expected winner %q, got %v", tt.wantWinner, res.WinnerID)
			}
			if res.Next != tt.wantNext {
				t.Errorf("expected next %+v, got %+v", tt.wantNext, res.Next)
			}
			if !res.Next.OnField(outcome.StandbyID) {
				t.Errorf("standby %q must come on", outcome.StandbyID)
			}
			for id, want := range tt.wantStreaks {
				if got := res.UpdatedForm.Streaks[id]; got != want {
					t.Errorf("streak of %q: expected %d, got %d", id, want, got)
				}
			}
		})
	}
}

func TestComputeNextFromResult_StreakCountsConsecutiveWins(t *testing.T) {
	form := formFor("x", "y", "z")
	pairing := models.Pairing{TeamAID: "x", TeamBID: "y", StandbyID: "z"}

	for n := 1; n <= 5; n++ {
		outcome := models.MatchOutcome{TeamAID: pairing.TeamAID, TeamBID: pairing.TeamBID, StandbyID: pairing.StandbyID, GoalsA: 1}
		res, err := ComputeNextFromResult(form, outcome)
		if err != nil {
			t.Fatalf("match %d: %v", n, err)
		}
		if got := res.UpdatedForm.Streaks["x"]; got != n {
			t.Fatalf("after %d wins expected streak %d, got %d", n, n, got)
		}
		form, pairing = res.UpdatedForm, res.Next
	}

	// x теряет серию после поражения.
	outcome := models.MatchOutcome{TeamAID: pairing.TeamAID, TeamBID: pairing.TeamBID, StandbyID: pairing.StandbyID, GoalsB: 1}
	res, err := ComputeNextFromResult(form, outcome)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.UpdatedForm.Streaks["x"]; got != 0 {
		t.Errorf("expected streak reset after loss, got %d", got)
	}
	if got := res.UpdatedForm.Streaks[pairing.TeamBID]; got != 1 {
		t.Errorf("expected new winner streak 1, got %d", got)
	}
}

func TestComputeNextFromResult_Scenario(t *testing.T) {
	form := formFor("x", "y", "z")

	first, err := ComputeNextFromResult(form, models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "z", GoalsA: 3, GoalsB: 1})
	if err != nil {
		t.Fatalf("match 1: %v", err)
	}
	if want := (models.Pairing{TeamAID: "x", TeamBID: "z", StandbyID: "y"}); first.Next != want {
		t.Fatalf("match 1: expected %+v, got %+v", want, first.Next)
	}
	if s := first.UpdatedForm.Streaks; s["x"] != 1 || s["y"] != 0 || s["z"] != 0 {
		t.Fatalf("match 1: unexpected streaks %v", s)
	}

	second, err := ComputeNextFromResult(first.UpdatedForm, models.MatchOutcome{TeamAID: "x", TeamBID: "z", StandbyID: "y", GoalsA: 2, GoalsB: 2})
	if err != nil {
		t.Fatalf("match 2: %v", err)
	}
	if !second.IsDraw || second.WinnerID != nil {
		t.Fatalf("match 2: expected draw with no winner, got draw=%v winner=%v", second.IsDraw, second.WinnerID)
	}
	for id, n := range second.UpdatedForm.Streaks {
		if n != 0 {
			t.Errorf("match 2: streak of %q should reset, got %d", id, n)
		}
	}
	if want := (models.Pairing{TeamAID: "z", TeamBID: "y", StandbyID: "x"}); second.Next != want {
		t.Errorf("match 2: expected %+v, got %+v", want, second.Next)
	}
}

func TestComputeNextFromResult_IsPure(t *testing.T) {
	form := formFor("x", "y", "z")
	form.Streaks["x"] = 2
	form.TopScorer = &models.TopScorer{Player: "Enoch", TeamID: "x", Goals: 3}
	outcome := models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "z", GoalsA: 1}

	first, _ := ComputeNextFromResult(form, outcome)
	second, _ := ComputeNextFromResult(form, outcome)

	if form.Streaks["x"] != 2 {
		t.Errorf("input form was mutated: %v", form.Streaks)
	}
	if first.Next != second.Next || first.UpdatedForm.Streaks["x"] != second.UpdatedForm.Streaks["x"] {
		t.Error("same input produced different results")
	}
	if first.UpdatedForm.TopScorer == form.TopScorer {
		t.Error("top scorer must be copied, not shared")
	}
	if *first.UpdatedForm.TopScorer != *form.TopScorer {
		t.Errorf("top scorer should pass through unchanged, got %+v", first.UpdatedForm.TopScorer)
	}
}

func TestComputeNextFromResult_Rejects(t *testing.T) {
	tests := []struct {
		name      string
		outcome   models.MatchOutcome
		wantField string
	}{
		{"negative goals A", models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "z", GoalsA: -1}, "goals_a"},
		{"negative goals B", models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "z", GoalsB: -2}, "goals_b"},
		{"duplicate id", models.MatchOutcome{TeamAID: "x", TeamBID: "x", StandbyID: "z"}, "team_b_id"},
		{"unknown id", models.MatchOutcome{TeamAID: "x", TeamBID: "y", StandbyID: "w"}, "standby_id"},
		{"missing id", models.MatchOutcome{TeamAID: "", TeamBID: "y", StandbyID: "z"}, "team_a_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeNextFromResult(formFor("x", "y", "z"), tt.outcome)

			if res != nil {
				t.Errorf("expected no result, got %+v", res)
			}
			if !errors.Is(err, models.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var vErr *models.ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestWinnerStaysOn_Name(t *testing.T) {
	if got := NewWinnerStaysOn().GetName(); got != "WinnerStaysOn" {
		t.Errorf("unexpected policy name %q", got)
	}
}
