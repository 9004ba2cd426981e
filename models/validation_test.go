package models

import (
	"errors"
	"testing"
)

func TestValidatePairing(t *testing.T) {
	known := []string{"a", "b", "c"}
	tests := []struct {
		name      string
		pairing   Pairing
		known     []string
		wantField string
	}{
		{"valid", Pairing{TeamAID: "b", TeamBID: "c", StandbyID: "a"}, known, ""},
		{"empty slot", Pairing{TeamAID: "a", TeamBID: "", StandbyID: "c"}, known, "team_b_id"},
		{"unknown team", Pairing{TeamAID: "a", TeamBID: "b", StandbyID: "d"}, known, "standby_id"},
		{"repeated team", Pairing{TeamAID: "a", TeamBID: "b", StandbyID: "a"}, known, "standby_id"},
		{"wrong roster size", Pairing{TeamAID: "a", TeamBID: "b", StandbyID: "c"}, []string{"a", "b"}, "pairing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePairing(tt.pairing, tt.known)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("expected errors.Is(err, ErrValidation)")
			}
		})
	}
}

func TestValidateTeams(t *testing.T) {
	valid := DefaultTeams()
	if err := ValidateTeams(valid); err != nil {
		t.Fatalf("default teams should be valid: %v", err)
	}

	tests := []struct {
		name   string
		mutate func([]Team) []Team
	}{
		{"two teams", func(ts []Team) []Team { return ts[:2] }},
		{"duplicate id", func(ts []Team) []Team { ts[1].ID = ts[0].ID; return ts }},
		{"blank id", func(ts []Team) []Team { ts[2].ID = "  "; return ts }},
		{"no label", func(ts []Team) []Team { ts[0].Label = ""; return ts }},
		{"empty player", func(ts []Team) []Team { ts[0].Players = append(ts[0].Players, ""); return ts }},
		{"repeated player", func(ts []Team) []Team { ts[1].Players = append(ts[1].Players, ts[1].Players[0]); return ts }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams := tt.mutate(CloneTeams(DefaultTeams()))
			if err := ValidateTeams(teams); !errors.Is(err, ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestValidateEvent(t *testing.T) {
	teams := DefaultTeams()
	onField := Pairing{TeamAID: "team-enoch", TeamBID: "team-mdu", StandbyID: "team-nk"}

	tests := []struct {
		name      string
		event     MatchEvent
		wantField string
	}{
		{"valid goal", MatchEvent{TeamID: "team-enoch", Play: Goal{Scorer: "Enoch", Assist: "Mark"}}, ""},
		{"valid shibobo", MatchEvent{TeamID: "team-mdu", Play: Shibobo{Scorer: "Chad"}}, ""},
		{"no play", MatchEvent{TeamID: "team-enoch"}, "type"},
		{"standby team", MatchEvent{TeamID: "team-nk", Play: Goal{Scorer: "Zizou"}}, "team_id"},
		{"negative time", MatchEvent{TeamID: "team-enoch", TimeSeconds: -1, Play: Goal{Scorer: "Enoch"}}, "time_seconds"},
		{"no scorer", MatchEvent{TeamID: "team-enoch", Play: Goal{}}, "scorer"},
		{"scorer from other team", MatchEvent{TeamID: "team-enoch", Play: Goal{Scorer: "Scott"}}, "scorer"},
		{"self assist", MatchEvent{TeamID: "team-enoch", Play: Goal{Scorer: "Enoch", Assist: "Enoch"}}, "assist"},
		{"assist from other team", MatchEvent{TeamID: "team-enoch", Play: Goal{Scorer: "Enoch", Assist: "Josh"}}, "assist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEvent(tt.event, teams, onField)

			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.wantField {
				t.Errorf("expected error on %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestMatchResult_LoserID(t *testing.T) {
	winner := "b"
	r := MatchResult{TeamAID: "a", TeamBID: "b", WinnerID: &winner}
	if got := r.LoserID(); got != "a" {
		t.Errorf("expected loser a, got %q", got)
	}
	draw := MatchResult{TeamAID: "a", TeamBID: "b", IsDraw: true}
	if got := draw.LoserID(); got != "" {
		t.Errorf("expected no loser on draw, got %q", got)
	}
}
