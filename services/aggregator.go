package services

import (
	"sort"

	"github.com/Dosada05/turf-kings/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// TeamLeaderboard builds one row per team from committed results.
// Order: points, goal difference, goals for; then roster order.
func TeamLeaderboard(teams []models.Team, results []models.MatchResult) []models.TeamStanding {
	rows := make([]models.TeamStanding, len(teams))
	index := make(map[string]int, len(teams))
	for i, t := range teams {
		rows[i] = models.TeamStanding{TeamID: t.ID, Label: t.Label, Captain: t.Captain}
		index[t.ID] = i
	}

	for _, r := range results {
		ai, okA := index[r.TeamAID]
		bi, okB := index[r.TeamBID]
		if !okA || !okB {
			continue
		}
		a, b := &rows[ai], &rows[bi]
		a.GamesPlayed++
		b.GamesPlayed++
		a.GoalsFor += r.GoalsA
		a.GoalsAgainst += r.GoalsB
		b.GoalsFor += r.GoalsB
		b.GoalsAgainst += r.GoalsA

		switch {
		case r.GoalsA > r.GoalsB:
			a.Wins++
			b.Losses++
			a.Points += pointsForWin
		case r.GoalsB > r.GoalsA:
			b.Wins++
			a.Losses++
			b.Points += pointsForWin
		default:
			a.Draws++
			b.Draws++
			a.Points += pointsForDraw
			b.Points += pointsForDraw
		}
	}

	for i := range rows {
		rows[i].GoalDifference = rows[i].GoalsFor - rows[i].GoalsAgainst
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Points != rows[j].Points {
			return rows[i].Points > rows[j].Points
		}
		if rows[i].GoalDifference != rows[j].GoalDifference {
			return rows[i].GoalDifference > rows[j].GoalDifference
		}
		return rows[i].GoalsFor > rows[j].GoalsFor
	})
	return rows
}

func playerKey(teamID, player string) string {
	return teamID + "::" + player
}

// PlayerLeaderboard builds one row per (team, player) seen as scorer or
// assist-giver. Order: total, goals; then first appearance.
func PlayerLeaderboard(teams []models.Team, events []models.MatchEvent) []models.PlayerStanding {
	rows := make([]models.PlayerStanding, 0)
	index := make(map[string]int)

	row := func(teamID, player string) *models.PlayerStanding {
		key := playerKey(teamID, player)
		if i, ok := index[key]; ok {
			return &rows[i]
		}
		label := ""
		if t, ok := models.FindTeam(teams, teamID); ok {
			label = t.Label
		}
		rows = append(rows, models.PlayerStanding{Key: key, Player: player, TeamID: teamID, TeamLabel: label})
		index[key] = len(rows) - 1
		return &rows[len(rows)-1]
	}

	for _, e := range events {
		switch play := e.Play.(type) {
		case models.Goal:
			row(e.TeamID, play.Scorer).Goals++
			if play.Assist != "" {
				row(e.TeamID, play.Assist).Assists++
			}
		case models.Shibobo:
			row(e.TeamID, play.Scorer).Shibobos++
		}
	}

	for i := range rows {
		rows[i].Total = rows[i].Goals + rows[i].Assists + rows[i].Shibobos
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Total != rows[j].Total {
			return rows[i].Total > rows[j].Total
		}
		return rows[i].Goals > rows[j].Goals
	})
	return rows
}

// TopScorer returns the player with most goals, or nil if nobody scored.
// On a tie the player who reached the count first keeps the lead.
func TopScorer(events []models.MatchEvent) *models.TopScorer {
	goals := make(map[string]int)
	var best *models.TopScorer
	for _, e := range events {
		g, ok := e.Play.(models.Goal)
		if !ok {
			continue
		}
		key := playerKey(e.TeamID, g.Scorer)
		goals[key]++
		if best == nil || goals[key] > best.Goals {
			best = &models.TopScorer{Player: g.Scorer, TeamID: e.TeamID, Goals: goals[key]}
		}
	}
	return best
}
