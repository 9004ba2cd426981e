package models

// Snapshot is the whole serializable tournament state.
type Snapshot struct {
	Teams   []Team        `json:"teams"`
	MatchNo int           `json:"match_no"`
	Pairing Pairing       `json:"pairing"`
	Form    FormState     `json:"form"`
	Results []MatchResult `json:"results"`
	Events  []MatchEvent  `json:"events"`
}

// DefaultSnapshot is the state of a brand-new tournament.
func DefaultSnapshot(teams []Team) Snapshot {
	return Snapshot{
		Teams:   CloneTeams(teams),
		MatchNo: 1,
		Pairing: DefaultPairing(teams),
		Form:    NewFormState(teams),
		Results: []MatchResult{},
		Events:  []MatchEvent{},
	}
}
