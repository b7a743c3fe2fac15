package types

import "fmt"

// FinishDetail sub-classifies how a shot attempt was finished. It is nullable
// on an action: turnovers carry no finish detail.
type FinishDetail string

const (
	FinishDetailSevenMeter   FinishDetail = "SEVEN_METER"
	FinishDetailCounterGoal  FinishDetail = "COUNTER_GOAL"
	FinishDetailFirstWave    FinishDetail = "FIRST_WAVE"
	FinishDetailSecondWave   FinishDetail = "SECOND_WAVE"
	FinishDetailThirdWave    FinishDetail = "THIRD_WAVE"
	FinishDetailPivot        FinishDetail = "PIVOT"
	FinishDetailWing         FinishDetail = "WING"
	FinishDetailBackcourt    FinishDetail = "BACKCOURT"
	FinishDetailBreakthrough FinishDetail = "BREAKTHROUGH"
)

// AllFinishDetails returns all valid finish details
func AllFinishDetails() []FinishDetail {
	return []FinishDetail{
		FinishDetailSevenMeter,
		FinishDetailCounterGoal,
		FinishDetailFirstWave,
		FinishDetailSecondWave,
		FinishDetailThirdWave,
		FinishDetailPivot,
		FinishDetailWing,
		FinishDetailBackcourt,
		FinishDetailBreakthrough,
	}
}

// IsValid checks if the finish detail is valid
func (d FinishDetail) IsValid() bool {
	switch d {
	case FinishDetailSevenMeter,
		FinishDetailCounterGoal,
		FinishDetailFirstWave,
		FinishDetailSecondWave,
		FinishDetailThirdWave,
		FinishDetailPivot,
		FinishDetailWing,
		FinishDetailBackcourt,
		FinishDetailBreakthrough:
		return true
	default:
		return false
	}
}

// IsCounterFinish reports whether the detail belongs to a counter attack:
// a counter goal or one of the three waves.
func (d FinishDetail) IsCounterFinish() bool {
	switch d {
	case FinishDetailCounterGoal,
		FinishDetailFirstWave,
		FinishDetailSecondWave,
		FinishDetailThirdWave:
		return true
	default:
		return false
	}
}

// String returns the string representation of the finish detail
func (d FinishDetail) String() string {
	return string(d)
}

// ParseFinishDetail parses a string into a FinishDetail
func ParseFinishDetail(s string) (FinishDetail, error) {
	detail := FinishDetail(s)
	if !detail.IsValid() {
		return "", fmt.Errorf("invalid finish detail: %s", s)
	}
	return detail, nil
}
