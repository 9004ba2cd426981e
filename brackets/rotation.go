package brackets

import (
	"sort"

	"github.com/Dosada05/turf-kings/models"
)

// WinnerStaysOn: победитель остаётся на поле, запасные заменяют проигравших.
//
// On a draw the slot-A team sits out: next is {A: teamB, B: standby,
// standby: teamA}. All streaks reset.
type WinnerStaysOn struct{}

func NewWinnerStaysOn() RotationPolicy {
	return &WinnerStaysOn{}
}

func (p *WinnerStaysOn) GetName() string {
	return "WinnerStaysOn"
}

func (p *WinnerStaysOn) ComputeNextFromResult(form models.FormState, outcome models.MatchOutcome) (*RotationResult, error) {
	if err := validateOutcome(form, outcome); err != nil {
		return nil, err
	}

	result := &RotationResult{
		UpdatedForm: models.FormState{
			Streaks:   make(map[string]int, len(form.Streaks)),
			TopScorer: form.Clone().TopScorer,
		},
	}
	for id := range form.Streaks {
		result.UpdatedForm.Streaks[id] = 0
	}

	var winnerID, loserID string
	switch {
	case outcome.GoalsA > outcome.GoalsB:
		winnerID, loserID = outcome.TeamAID, outcome.TeamBID
	case outcome.GoalsB > outcome.GoalsA:
		winnerID, loserID = outcome.TeamBID, outcome.TeamAID
	default:
		result.IsDraw = true
		result.Next = models.Pairing{
			TeamAID:   outcome.TeamBID,
			TeamBID:   outcome.StandbyID,
			StandbyID: outcome.TeamAID,
		}
		return result, nil
	}

	result.WinnerID = &winnerID
	result.Next = models.Pairing{
		TeamAID:   winnerID,
		TeamBID:   outcome.StandbyID,
		StandbyID: loserID,
	}
	result.UpdatedForm.Streaks[winnerID] = form.Streaks[winnerID] + 1
	return result, nil
}

// ComputeNextFromResult applies the default winner-stays-on policy.
func ComputeNextFromResult(form models.FormState, outcome models.MatchOutcome) (*RotationResult, error) {
	return NewWinnerStaysOn().ComputeNextFromResult(form, outcome)
}

func validateOutcome(form models.FormState, outcome models.MatchOutcome) error {
	if outcome.GoalsA < 0 {
		return models.NewValidationError("goals_a", "must not be negative, got %d", outcome.GoalsA)
	}
	if outcome.GoalsB < 0 {
		return models.NewValidationError("goals_b", "must not be negative, got %d", outcome.GoalsB)
	}
	known := make([]string, 0, len(form.Streaks))
	for id := range form.Streaks {
		known = append(known, id)
	}
	sort.Strings(known)
	return models.ValidatePairing(outcome.Pairing(), known)
}
