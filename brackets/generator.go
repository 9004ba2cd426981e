package brackets

import "github.com/Dosada05/turf-kings/models"

// RotationResult is what a policy decides after a match.
type RotationResult struct {
	WinnerID    *string          `json:"winner_id"`
	IsDraw      bool             `json:"is_draw"`
	Next        models.Pairing   `json:"next"`
	UpdatedForm models.FormState `json:"updated_form"`
}

// RotationPolicy decides the next pairing and form from a finished match.
// Implementations must be pure: same input, same output.
type RotationPolicy interface {
	ComputeNextFromResult(form models.FormState, outcome models.MatchOutcome) (*RotationResult, error)

	GetName() string
}
