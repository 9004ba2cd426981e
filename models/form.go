package models

// TopScorer is the player with most goals across the tournament.
type TopScorer struct {
	Player string `json:"player"`
	TeamID string `json:"team_id"`
	Goals  int    `json:"goals"`
}

// FormState holds the consecutive-win counter of every team.
// Only the rotation engine produces new values; nobody edits one in place.
type FormState struct {
	Streaks   map[string]int `json:"streaks"`
	TopScorer *TopScorer     `json:"top_scorer"`
}

// NewFormState returns zero streaks for the given teams.
func NewFormState(teams []Team) FormState {
	streaks := make(map[string]int, len(teams))
	for _, t := range teams {
		streaks[t.ID] = 0
	}
	return FormState{Streaks: streaks}
}

// Clone returns a copy that shares nothing with f.
func (f FormState) Clone() FormState {
	out := FormState{Streaks: make(map[string]int, len(f.Streaks))}
	for id, n := range f.Streaks {
		out.Streaks[id] = n
	}
	if f.TopScorer != nil {
		ts := *f.TopScorer
		out.TopScorer = &ts
	}
	return out
}
