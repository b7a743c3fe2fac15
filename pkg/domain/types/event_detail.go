package types

import "fmt"

// EventDetail sub-classifies a shot stop, a missed shot or a turnover. It is
// nullable on an action: goals carry no event detail.
type EventDetail string

const (
	// Details for SHOT_STOPPED
	EventDetailGoalkeeperSave EventDetail = "GOALKEEPER_SAVE"
	EventDetailDefenderBlock  EventDetail = "DEFENDER_BLOCK"

	// Details for SHOT_MISSED
	EventDetailPost        EventDetail = "POST"
	EventDetailDirectlyOut EventDetail = "DIRECTLY_OUT"

	// Details for TURNOVER
	EventDetailSteps         EventDetail = "STEPS"
	EventDetailDoubleDribble EventDetail = "DOUBLE_DRIBBLE"
	EventDetailOffensiveFoul EventDetail = "OFFENSIVE_FOUL"
	EventDetailPassive       EventDetail = "PASSIVE"
	EventDetailAreaViolation EventDetail = "AREA_VIOLATION"
	EventDetailSteal         EventDetail = "STEAL"
	EventDetailFoot          EventDetail = "FOOT"
	EventDetailBallOut       EventDetail = "BALL_OUT"
)

// AllEventDetails returns all valid event details
func AllEventDetails() []EventDetail {
	return []EventDetail{
		EventDetailGoalkeeperSave,
		EventDetailDefenderBlock,
		EventDetailPost,
		EventDetailDirectlyOut,
		EventDetailSteps,
		EventDetailDoubleDribble,
		EventDetailOffensiveFoul,
		EventDetailPassive,
		EventDetailAreaViolation,
		EventDetailSteal,
		EventDetailFoot,
		EventDetailBallOut,
	}
}

// IsValid checks if the event detail is valid
func (d EventDetail) IsValid() bool {
	switch d {
	case EventDetailGoalkeeperSave,
		EventDetailDefenderBlock,
		EventDetailPost,
		EventDetailDirectlyOut,
		EventDetailSteps,
		EventDetailDoubleDribble,
		EventDetailOffensiveFoul,
		EventDetailPassive,
		EventDetailAreaViolation,
		EventDetailSteal,
		EventDetailFoot,
		EventDetailBallOut:
		return true
	default:
		return false
	}
}

// IsShotStoppedDetail reports whether the detail is valid for SHOT_STOPPED
func (d EventDetail) IsShotStoppedDetail() bool {
	return d == EventDetailGoalkeeperSave || d == EventDetailDefenderBlock
}

// IsShotMissedDetail reports whether the detail is valid for SHOT_MISSED
func (d EventDetail) IsShotMissedDetail() bool {
	return d == EventDetailPost || d == EventDetailDirectlyOut
}

// IsTurnoverDetail reports whether the detail is valid for TURNOVER
func (d EventDetail) IsTurnoverDetail() bool {
	switch d {
	case EventDetailSteps,
		EventDetailDoubleDribble,
		EventDetailOffensiveFoul,
		EventDetailPassive,
		EventDetailAreaViolation,
		EventDetailSteal,
		EventDetailFoot,
		EventDetailBallOut:
		return true
	default:
		return false
	}
}

// String returns the string representation of the event detail
func (d EventDetail) String() string {
	return string(d)
}

// ParseEventDetail parses a string into an EventDetail
func ParseEventDetail(s string) (EventDetail, error) {
	detail := EventDetail(s)
	if !detail.IsValid() {
		return "", fmt.Errorf("invalid event detail: %s", s)
	}
	return detail, nil
}
