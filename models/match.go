package models

// Pairing распределяет три команды по слотам: A, B (на поле) и запасной.
type Pairing struct {
	TeamAID   string `json:"team_a_id"`
	TeamBID   string `json:"team_b_id"`
	StandbyID string `json:"standby_id"`
}

// IDs returns the three ids in slot order.
func (p Pairing) IDs() [3]string {
	return [3]string{p.TeamAID, p.TeamBID, p.StandbyID}
}

// OnField reports whether teamID plays in the current match.
func (p Pairing) OnField(teamID string) bool {
	return teamID != "" && (teamID == p.TeamAID || teamID == p.TeamBID)
}

// DefaultPairing puts the first two teams on the field.
func DefaultPairing(teams []Team) Pairing {
	var p Pairing
	if len(teams) >= TeamsPerTournament {
		p = Pairing{TeamAID: teams[0].ID, TeamBID: teams[1].ID, StandbyID: teams[2].ID}
	}
	return p
}

// MatchOutcome is the final summary handed over when a match ends.
type MatchOutcome struct {
	TeamAID   string `json:"team_a_id"`
	TeamBID   string `json:"team_b_id"`
	StandbyID string `json:"standby_id"`
	GoalsA    int    `json:"goals_a"`
	GoalsB    int    `json:"goals_b"`
}

func (o MatchOutcome) Pairing() Pairing {
	return Pairing{TeamAID: o.TeamAID, TeamBID: o.TeamBID, StandbyID: o.StandbyID}
}

// MatchResult is a committed match. It never changes once in the ledger.
type MatchResult struct {
	MatchNo   int     `json:"match_no"`
	TeamAID   string  `json:"team_a_id"`
	TeamBID   string  `json:"team_b_id"`
	StandbyID string  `json:"standby_id"`
	GoalsA    int     `json:"goals_a"`
	GoalsB    int     `json:"goals_b"`
	WinnerID  *string `json:"winner_id"`
	IsDraw    bool    `json:"is_draw"`
}

// LoserID returns the beaten team, or "" for a draw.
func (r MatchResult) LoserID() string {
	if r.WinnerID == nil {
		return ""
	}
	if *r.WinnerID == r.TeamAID {
		return r.TeamBID
	}
	return r.TeamAID
}
