package models

import "strings"

// ValidatePairing checks that p is a permutation of knownIDs.
func ValidatePairing(p Pairing, knownIDs []string) error {
	known := make(map[string]bool, len(knownIDs))
	for _, id := range knownIDs {
		known[id] = true
	}
	if len(known) != TeamsPerTournament {
		return NewValidationError("pairing", "expected %d known teams, got %d", TeamsPerTournament, len(known))
	}
	seen := make(map[string]bool, TeamsPerTournament)
	for i, id := range p.IDs() {
		slot := [...]string{"team_a_id", "team_b_id", "standby_id"}[i]
		switch {
		case id == "":
			return NewValidationError(slot, "team id is required")
		case !known[id]:
			return NewValidationError(slot, "unknown team %q", id)
		case seen[id]:
			return NewValidationError(slot, "team %q appears in more than one slot", id)
		}
		seen[id] = true
	}
	return nil
}

// TeamIDs lists team ids in roster order.
func TeamIDs(teams []Team) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}

// ValidateTeams checks roster shape: three teams, unique ids, unique
// non-empty player names within each team.
func ValidateTeams(teams []Team) error {
	if len(teams) != TeamsPerTournament {
		return NewValidationError("teams", "expected %d teams, got %d", TeamsPerTournament, len(teams))
	}
	ids := make(map[string]bool, len(teams))
	for _, t := range teams {
		if strings.TrimSpace(t.ID) == "" {
			return NewValidationError("teams", "team id is required")
		}
		if ids[t.ID] {
			return NewValidationError("teams", "duplicate team id %q", t.ID)
		}
		ids[t.ID] = true

		if strings.TrimSpace(t.Label) == "" {
			return NewValidationError("teams", "team %q has no label", t.ID)
		}
		players := make(map[string]bool, len(t.Players))
		for _, p := range t.Players {
			if strings.TrimSpace(p) == "" {
				return NewValidationError("teams", "team %q has an empty player name", t.ID)
			}
			if players[p] {
				return NewValidationError("teams", "team %q lists %q twice", t.ID, p)
			}
			players[p] = true
		}
	}
	return nil
}

// ValidateEvent checks an event against the roster and the teams on the field.
func ValidateEvent(e MatchEvent, teams []Team, onField Pairing) error {
	if e.Play == nil {
		return NewValidationError("type", "event %q has no play", e.ID)
	}
	if !onField.OnField(e.TeamID) {
		return NewValidationError("team_id", "team %q is not on the field", e.TeamID)
	}
	team, ok := FindTeam(teams, e.TeamID)
	if !ok {
		return NewValidationError("team_id", "unknown team %q", e.TeamID)
	}
	if e.TimeSeconds < 0 {
		return NewValidationError("time_seconds", "must not be negative")
	}
	scorer := e.Play.ScorerName()
	if scorer == "" {
		return NewValidationError("scorer", "scorer is required")
	}
	if !team.HasPlayer(scorer) {
		return NewValidationError("scorer", "%q does not play for %s", scorer, team.Label)
	}
	if g, ok := e.Play.(Goal); ok && g.Assist != "" {
		if g.Assist == scorer {
			return NewValidationError("assist", "%q cannot assist their own goal", scorer)
		}
		if !team.HasPlayer(g.Assist) {
			return NewValidationError("assist", "%q does not play for %s", g.Assist, team.Label)
		}
	}
	return nil
}
