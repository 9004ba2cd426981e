package services

import (
	"sync"

	"github.com/Dosada05/turf-kings/brackets"
	"github.com/Dosada05/turf-kings/models"
)

// CommitResult is what a successful commit hands back to the caller.
type CommitResult struct {
	Result  models.MatchResult `json:"result"`
	Pairing models.Pairing     `json:"next_pairing"`
	Form    models.FormState   `json:"form"`
}

// Ledger owns the committed history plus the match counter, the current
// pairing and the form state. Every mutation happens under one write lock,
// so readers see either the state before a commit or the state after it.
type Ledger struct {
	mu     sync.RWMutex
	policy brackets.RotationPolicy
	state  models.Snapshot
}

// NewLedger starts a fresh tournament for teams. A nil policy means
// winner-stays-on.
func NewLedger(teams []models.Team, policy brackets.RotationPolicy) (*Ledger, error) {
	if err := models.ValidateTeams(teams); err != nil {
		return nil, err
	}
	if policy == nil {
		policy = brackets.NewWinnerStaysOn()
	}
	return &Ledger{
		policy: policy,
		state:  models.DefaultSnapshot(teams),
	}, nil
}

// PolicyName names the rotation policy in use.
func (l *Ledger) PolicyName() string {
	return l.policy.GetName()
}

// StartNextMatch returns the number to stamp on the events of the match
// about to start. It does not change the ledger.
func (l *Ledger) StartNextMatch() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.MatchNo
}

// CommitMatch validates the final summary and its events, runs the rotation
// and applies everything as one state transition. On error nothing changes.
func (l *Ledger) CommitMatch(matchNo int, outcome models.MatchOutcome, events []models.MatchEvent) (*CommitResult, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if matchNo != l.state.MatchNo {
		return nil, models.NewConsistencyError("match %d is stale, current match is %d", matchNo, l.state.MatchNo)
	}
	if outcome.Pairing() != l.state.Pairing {
		return nil, models.NewConsistencyError("outcome pairing %+v does not match current pairing %+v", outcome.Pairing(), l.state.Pairing)
	}

	goalsA, goalsB := 0, 0
	for i, e := range events {
		if e.MatchNo != matchNo {
			return nil, models.NewConsistencyError("event %d belongs to match %d, not %d", i, e.MatchNo, matchNo)
		}
		if err := models.ValidateEvent(e, l.state.Teams, outcome.Pairing()); err != nil {
			return nil, err
		}
		if e.IsGoal() {
			if e.TeamID == outcome.TeamAID {
				goalsA++
			} else {
				goalsB++
			}
		}
	}

	// The engine rejects negative goals before the tally comparison would.
	rotation, err := l.policy.ComputeNextFromResult(l.state.Form, outcome)
	if err != nil {
		return nil, err
	}
	if goalsA != outcome.GoalsA || goalsB != outcome.GoalsB {
		return nil, models.NewConsistencyError("score %d-%d does not match logged goals %d-%d",
			outcome.GoalsA, outcome.GoalsB, goalsA, goalsB)
	}

	result := models.MatchResult{
		MatchNo:   matchNo,
		TeamAID:   outcome.TeamAID,
		TeamBID:   outcome.TeamBID,
		StandbyID: outcome.StandbyID,
		GoalsA:    outcome.GoalsA,
		GoalsB:    outcome.GoalsB,
		WinnerID:  rotation.WinnerID,
		IsDraw:    rotation.IsDraw,
	}

	committed := make([]models.MatchEvent, len(events))
	copy(committed, events)

	l.state.Results = append(l.state.Results, result)
	l.state.Events = append(l.state.Events, committed...)
	l.state.MatchNo++
	l.state.Pairing = rotation.Next
	form := rotation.UpdatedForm
	form.TopScorer = TopScorer(l.state.Events)
	l.state.Form = form

	return &CommitResult{Result: result, Pairing: rotation.Next, Form: form.Clone()}, nil
}

// Reset clears every record and restores the opening state for the
// current roster.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = models.DefaultSnapshot(l.state.Teams)
}

// ResetIfUnchanged resets only if no match was committed and the pairing
// was not overridden since matchNo and pairing were read.
func (l *Ledger) ResetIfUnchanged(matchNo int, pairing models.Pairing) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state.MatchNo != matchNo || l.state.Pairing != pairing {
		return models.NewConsistencyError("tournament moved to match %d with %+v since match %d with %+v was read",
			l.state.MatchNo, l.state.Pairing, matchNo, pairing)
	}
	l.state = models.DefaultSnapshot(l.state.Teams)
	return nil
}

// SetPairing overrides who plays next.
func (l *Ledger) SetPairing(p models.Pairing) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := models.ValidatePairing(p, models.TeamIDs(l.state.Teams)); err != nil {
		return err
	}
	l.state.Pairing = p
	return nil
}

// ReplaceRoster swaps labels, captains and players. The team ids must stay
// the same because pairing, form and history refer to them.
func (l *Ledger) ReplaceRoster(teams []models.Team) error {
	if err := models.ValidateTeams(teams); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, t := range teams {
		if _, ok := models.FindTeam(l.state.Teams, t.ID); !ok {
			return models.NewValidationError("teams", "team %q is not part of this tournament", t.ID)
		}
	}
	l.state.Teams = models.CloneTeams(teams)
	return nil
}

// Snapshot returns a deep copy of the whole state.
func (l *Ledger) Snapshot() models.Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneSnapshot(l.state)
}

// Restore replaces the state with a previously saved snapshot.
func (l *Ledger) Restore(s models.Snapshot) error {
	if err := validateSnapshot(s); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = cloneSnapshot(s)
	return nil
}

func (l *Ledger) Teams() []models.Team {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return models.CloneTeams(l.state.Teams)
}

func (l *Ledger) Pairing() models.Pairing {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Pairing
}

func (l *Ledger) Form() models.FormState {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Form.Clone()
}

func (l *Ledger) Results() []models.MatchResult {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneResults(l.state.Results)
}

func (l *Ledger) Events() []models.MatchEvent {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.MatchEvent, len(l.state.Events))
	copy(out, l.state.Events)
	return out
}

func cloneResults(results []models.MatchResult) []models.MatchResult {
	out := make([]models.MatchResult, len(results))
	for i, r := range results {
		if r.WinnerID != nil {
			winner := *r.WinnerID
			r.WinnerID = &winner
		}
		out[i] = r
	}
	return out
}

// Play values are immutable, so copying the event slice is a deep copy.
func cloneSnapshot(s models.Snapshot) models.Snapshot {
	events := make([]models.MatchEvent, len(s.Events))
	copy(events, s.Events)
	return models.Snapshot{
		Teams:   models.CloneTeams(s.Teams),
		MatchNo: s.MatchNo,
		Pairing: s.Pairing,
		Form:    s.Form.Clone(),
		Results: cloneResults(s.Results),
		Events:  events,
	}
}

func validateSnapshot(s models.Snapshot) error {
	if err := models.ValidateTeams(s.Teams); err != nil {
		return err
	}
	ids := models.TeamIDs(s.Teams)
	if err := models.ValidatePairing(s.Pairing, ids); err != nil {
		return err
	}
	if s.MatchNo < 1 {
		return models.NewValidationError("match_no", "must be at least 1, got %d", s.MatchNo)
	}
	for _, id := range ids {
		n, ok := s.Form.Streaks[id]
		if !ok {
			return models.NewValidationError("form", "no streak for %q", id)
		}
		if n < 0 {
			return models.NewValidationError("form", "negative streak for %q", id)
		}
	}
	if len(s.Form.Streaks) != len(ids) {
		return models.NewValidationError("form", "expected streaks for %d teams, got %d", len(ids), len(s.Form.Streaks))
	}
	for _, r := range s.Results {
		if r.MatchNo < 1 || r.MatchNo >= s.MatchNo {
			return models.NewValidationError("results", "result for match %d is outside 1..%d", r.MatchNo, s.MatchNo-1)
		}
		if err := models.ValidatePairing(models.Pairing{TeamAID: r.TeamAID, TeamBID: r.TeamBID, StandbyID: r.StandbyID}, ids); err != nil {
			return err
		}
		if r.GoalsA < 0 || r.GoalsB < 0 {
			return models.NewValidationError("results", "result for match %d has negative goals", r.MatchNo)
		}
	}
	for _, e := range s.Events {
		if e.Play == nil {
			return models.NewValidationError("events", "event %q has no play", e.ID)
		}
		if e.MatchNo < 1 || e.MatchNo >= s.MatchNo {
			return models.NewValidationError("events", "event %q of match %d is outside 1..%d", e.ID, e.MatchNo, s.MatchNo-1)
		}
		if _, ok := models.FindTeam(s.Teams, e.TeamID); !ok {
			return models.NewValidationError("events", "event %q belongs to unknown team %q", e.ID, e.TeamID)
		}
	}
	return nil
}
