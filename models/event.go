package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

type EventType string

const (
	EventTypeGoal    EventType = "goal"
	EventTypeShibobo EventType = "shibobo"
)

var (
	ErrUnknownEventType = errors.New("unknown event type")
	ErrShiboboAssist    = errors.New("shibobo cannot carry an assist")
	ErrEventWithoutPlay = errors.New("event has no play")
)

// Play is what happened in an event: a Goal or a Shibobo.
// The set is closed; other packages cannot add variants.
type Play interface {
	Type() EventType
	ScorerName() string
	isPlay()
}

// Goal credits the scorer and, optionally, one assist-giver.
type Goal struct {
	Scorer string
	Assist string // "" when unassisted
}

func (Goal) Type() EventType      { return EventTypeGoal }
func (g Goal) ScorerName() string { return g.Scorer }
func (Goal) isPlay()              {}

// Shibobo is a skill move. It has no assist.
type Shibobo struct {
	Scorer string
}

func (Shibobo) Type() EventType      { return EventTypeShibobo }
func (s Shibobo) ScorerName() string { return s.Scorer }
func (Shibobo) isPlay()              {}

// MatchEvent is one logged play stamped with the match it belongs to.
type MatchEvent struct {
	ID          string
	MatchNo     int
	TeamID      string
	TimeSeconds int
	Play        Play
}

func (e MatchEvent) IsGoal() bool {
	_, ok := e.Play.(Goal)
	return ok
}

type matchEventJSON struct {
	ID          string    `json:"id"`
	MatchNo     int       `json:"match_no"`
	Type        EventType `json:"type"`
	TeamID      string    `json:"team_id"`
	Scorer      string    `json:"scorer"`
	Assist      *string   `json:"assist"`
	TimeSeconds int       `json:"time_seconds"`
}

func (e MatchEvent) MarshalJSON() ([]byte, error) {
	if e.Play == nil {
		return nil, ErrEventWithoutPlay
	}
	out := matchEventJSON{
		ID:          e.ID,
		MatchNo:     e.MatchNo,
		Type:        e.Play.Type(),
		TeamID:      e.TeamID,
		Scorer:      e.Play.ScorerName(),
		TimeSeconds: e.TimeSeconds,
	}
	if g, ok := e.Play.(Goal); ok && g.Assist != "" {
		assist := g.Assist
		out.Assist = &assist
	}
	return json.Marshal(out)
}

func (e *MatchEvent) UnmarshalJSON(data []byte) error {
	var in matchEventJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Type {
	case EventTypeGoal:
		g := Goal{Scorer: in.Scorer}
		if in.Assist != nil {
			g.Assist = *in.Assist
		}
		e.Play = g
	case EventTypeShibobo:
		if in.Assist != nil && *in.Assist != "" {
			return fmt.Errorf("event %s: %w", in.ID, ErrShiboboAssist)
		}
		e.Play = Shibobo{Scorer: in.Scorer}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, in.Type)
	}
	e.ID = in.ID
	e.MatchNo = in.MatchNo
	e.TeamID = in.TeamID
	e.TimeSeconds = in.TimeSeconds
	return nil
}
