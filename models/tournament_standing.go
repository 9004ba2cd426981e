package models

// TeamStanding is one row of the team leaderboard.
type TeamStanding struct {
	TeamID         string `json:"team_id"`
	Label          string `json:"label"`
	Captain        string `json:"captain"`
	GamesPlayed    int    `json:"gp"`
	Wins           int    `json:"w"`
	Draws          int    `json:"d"`
	Losses         int    `json:"l"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
	Points         int    `json:"pts"`
}

// PlayerStanding is one row of the player leaderboard.
type PlayerStanding struct {
	Key       string `json:"key"`
	Player    string `json:"player"`
	TeamID    string `json:"team_id"`
	TeamLabel string `json:"team_label"`
	Goals     int    `json:"goals"`
	Assists   int    `json:"assists"`
	Shibobos  int    `json:"shibobos"`
	Total     int    `json:"total"`
}
