package types

import "fmt"

// ShotZone represents the court zone a shot attempt was taken from. It is
// nullable on an action: only shot attempts carry a zone.
type ShotZone string

const (
	ShotZoneLeftWing   ShotZone = "LEFT_WING"
	ShotZoneLeftBack   ShotZone = "LEFT_BACK"
	ShotZoneCenterBack ShotZone = "CENTER_BACK"
	ShotZoneRightBack  ShotZone = "RIGHT_BACK"
	ShotZoneRightWing  ShotZone = "RIGHT_WING"
	ShotZoneSixMeter   ShotZone = "SIX_METER"
)

// AllShotZones returns all valid shot zones
func AllShotZones() []ShotZone {
	return []ShotZone{
		ShotZoneLeftWing,
		ShotZoneLeftBack,
		ShotZoneCenterBack,
		ShotZoneRightBack,
		ShotZoneRightWing,
		ShotZoneSixMeter,
	}
}

// IsValid checks if the shot zone is valid
func (z ShotZone) IsValid() bool {
	switch z {
	case ShotZoneLeftWing,
		ShotZoneLeftBack,
		ShotZoneCenterBack,
		ShotZoneRightBack,
		ShotZoneRightWing,
		ShotZoneSixMeter:
		return true
	default:
		return false
	}
}

// String returns the string representation of the shot zone
func (z ShotZone) String() string {
	return string(z)
}

// ParseShotZone parses a string into a ShotZone
func ParseShotZone(s string) (ShotZone, error) {
	zone := ShotZone(s)
	if !zone.IsValid() {
		return "", fmt.Errorf("invalid shot zone: %s", s)
	}
	return zone, nil
}
