package types

import "fmt"

// AttackType represents how the attacking possession developed
type AttackType string

const (
	AttackTypePositional    AttackType = "POSITIONAL"
	AttackTypeCounterAttack AttackType = "COUNTER_ATTACK"
)

// AllAttackTypes returns all valid attack types
func AllAttackTypes() []AttackType {
	return []AttackType{
		AttackTypePositional,
		AttackTypeCounterAttack,
	}
}

// IsValid checks if the attack type is valid
func (t AttackType) IsValid() bool {
	switch t {
	case AttackTypePositional, AttackTypeCounterAttack:
		return true
	default:
		return false
	}
}

// String returns the string representation of the attack type
func (t AttackType) String() string {
	return string(t)
}

// ParseAttackType parses a string into an AttackType
func ParseAttackType(s string) (AttackType, error) {
	t := AttackType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid attack type: %s", s)
	}
	return t, nil
}
