package types

import "fmt"

// ActionOrigin represents how the possession that produced an action started
type ActionOrigin string

const (
	ActionOriginContinuousPlay  ActionOrigin = "CONTINUOUS_PLAY"
	ActionOriginDirectRebound   ActionOrigin = "DIRECT_REBOUND"
	ActionOriginIndirectRebound ActionOrigin = "INDIRECT_REBOUND"
	ActionOriginSevenMeter      ActionOrigin = "SEVEN_METER"
)

// AllActionOrigins returns all valid action origins
func AllActionOrigins() []ActionOrigin {
	return []ActionOrigin{
		ActionOriginContinuousPlay,
		ActionOriginDirectRebound,
		ActionOriginIndirectRebound,
		ActionOriginSevenMeter,
	}
}

// IsValid checks if the action origin is valid
func (o ActionOrigin) IsValid() bool {
	switch o {
	case ActionOriginContinuousPlay,
		ActionOriginDirectRebound,
		ActionOriginIndirectRebound,
		ActionOriginSevenMeter:
		return true
	default:
		return false
	}
}

// IsRebound reports whether the origin is a direct or indirect rebound
func (o ActionOrigin) IsRebound() bool {
	return o == ActionOriginDirectRebound || o == ActionOriginIndirectRebound
}

// String returns the string representation of the action origin
func (o ActionOrigin) String() string {
	return string(o)
}

// ParseActionOrigin parses a string into an ActionOrigin
func ParseActionOrigin(s string) (ActionOrigin, error) {
	origin := ActionOrigin(s)
	if !origin.IsValid() {
		return "", fmt.Errorf("invalid action origin: %s", s)
	}
	return origin, nil
}
