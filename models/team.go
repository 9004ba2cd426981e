package models

// Team описывает одну из трёх команд турнира.
type Team struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Captain string   `json:"captain"`
	Players []string `json:"players"`
}

// HasPlayer reports whether name is on the team's roster.
func (t Team) HasPlayer(name string) bool {
	for _, p := range t.Players {
		if p == name {
			return true
		}
	}
	return false
}

// Clone returns a copy that does not share the players slice.
func (t Team) Clone() Team {
	players := make([]string, len(t.Players))
	copy(players, t.Players)
	t.Players = players
	return t
}

// TeamsPerTournament is fixed: two teams on the field, one on standby.
const TeamsPerTournament = 3

// DefaultTeams returns the opening roster.
func DefaultTeams() []Team {
	return []Team{
		{
			ID:      "team-enoch",
			Label:   "Team-Enoch",
			Captain: "Enoch",
			Players: []string{"Enoch", "Uhone", "Mark", "Barlo", "Nkumbuzo", "Munya"},
		},
		{
			ID:      "team-mdu",
			Label:   "Team-Mdu",
			Captain: "Mdu",
			Players: []string{"Mdu", "Scott", "Chad", "Taku", "Josh", "Humbu"},
		},
		{
			ID:      "team-nk",
			Label:   "Team-NK",
			Captain: "Nkululeko",
			Players: []string{"Nkululeko", "Zizou", "Dayaan", "Dr Babs", "Kolobe", "Anathi"},
		},
	}
}

// FindTeam looks a team up by id.
func FindTeam(teams []Team, id string) (Team, bool) {
	for _, t := range teams {
		if t.ID == id {
			return t, true
		}
	}
	return Team{}, false
}

// CloneTeams deep-copies a roster.
func CloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = t.Clone()
	}
	return out
}
