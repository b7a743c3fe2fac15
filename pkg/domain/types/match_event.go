package types

import "fmt"

// MatchEvent represents the outcome of a recorded in-match action
type MatchEvent string

const (
	MatchEventGoal        MatchEvent = "GOAL"
	MatchEventShotStopped MatchEvent = "SHOT_STOPPED"
	MatchEventShotMissed  MatchEvent = "SHOT_MISSED"
	MatchEventTurnover    MatchEvent = "TURNOVER"
)

// AllMatchEvents returns all valid match events
func AllMatchEvents() []MatchEvent {
	return []MatchEvent{
		MatchEventGoal,
		MatchEventShotStopped,
		MatchEventShotMissed,
		MatchEventTurnover,
	}
}

// IsValid checks if the match event is valid
func (e MatchEvent) IsValid() bool {
	switch e {
	case MatchEventGoal,
		MatchEventShotStopped,
		MatchEventShotMissed,
		MatchEventTurnover:
		return true
	default:
		return false
	}
}

// IsShotAttempt reports whether the event involves a throw at the goal
func (e MatchEvent) IsShotAttempt() bool {
	switch e {
	case MatchEventGoal, MatchEventShotStopped, MatchEventShotMissed:
		return true
	default:
		return false
	}
}

// String returns the string representation of the match event
func (e MatchEvent) String() string {
	return string(e)
}

// ParseMatchEvent parses a string into a MatchEvent
func ParseMatchEvent(s string) (MatchEvent, error) {
	event := MatchEvent(s)
	if !event.IsValid() {
		return "", fmt.Errorf("invalid match event: %s", s)
	}
	return event, nil
}
