package model

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
)

// ErrRuleViolation is the sentinel for every action validation failure. Each
// violation wraps it with a stable rule code so callers can map the failure
// to a machine-readable identifier without parsing messages.
var ErrRuleViolation = goerr.New("action violates validation rule")

// RuleCode identifies which validation rule rejected an action
type RuleCode string

const (
	// Rule 1: seven-meter consistency
	RuleInvalid7mDetail RuleCode = "INVALID_7M_DETAIL"
	RuleInvalid7mType   RuleCode = "INVALID_7M_TYPE"
	RuleInvalid7mOrigin RuleCode = "INVALID_7M_ORIGIN"

	// Rule 2: attack type / finish detail consistency
	RuleInvalidCounterAttackDetail RuleCode = "INVALID_COUNTERATTACK_DETAIL"
	RuleInvalidPositionalDetail    RuleCode = "INVALID_POSITIONAL_DETAIL"

	// Rule 3: event field consistency
	RuleGoalRequiredFields        RuleCode = "GOAL_REQUIRED_FIELDS"
	RuleGoalInvalidDetail         RuleCode = "GOAL_INVALID_DETAIL"
	RuleShotStoppedRequiredFields RuleCode = "SHOT_STOPPED_REQUIRED_FIELDS"
	RuleShotStoppedRequiredDetail RuleCode = "SHOT_STOPPED_REQUIRED_DETAIL"
	RuleShotStoppedInvalidDetail  RuleCode = "SHOT_STOPPED_INVALID_DETAIL"
	RuleShotMissedRequiredFields  RuleCode = "SHOT_MISSED_REQUIRED_FIELDS"
	RuleShotMissedRequiredDetail  RuleCode = "SHOT_MISSED_REQUIRED_DETAIL"
	RuleShotMissedInvalidDetail   RuleCode = "SHOT_MISSED_INVALID_DETAIL"
	RuleTurnoverInvalidFields     RuleCode = "TURNOVER_INVALID_FIELDS"
	RuleTurnoverRequiredDetail    RuleCode = "TURNOVER_REQUIRED_DETAIL"
	RuleTurnoverInvalidDetail     RuleCode = "TURNOVER_INVALID_DETAIL"

	// Rule 4: possession change inference
	RuleInvalidPossessionChange RuleCode = "INVALID_POSSESSION_CHANGE"

	// Rule 5: sequential consistency
	RuleInvalidReboundSequence        RuleCode = "INVALID_REBOUND_SEQUENCE"
	RuleInvalidContinuousGameSequence RuleCode = "INVALID_CONTINUOUS_GAME_SEQUENCE"
	RuleInvalidFirstAction            RuleCode = "INVALID_FIRST_ACTION"
)

// Context key for the rule code carried on validation errors
const RuleCodeKey = "rule_code"

func newRuleError(code RuleCode, msg string) error {
	return goerr.Wrap(ErrRuleViolation, msg, goerr.V(RuleCodeKey, code))
}

// RuleCodeOf extracts the rule code from a validation error. It returns an
// empty code when the error is not a rule violation.
func RuleCodeOf(err error) RuleCode {
	if !errors.Is(err, ErrRuleViolation) {
		return ""
	}
	var ge *goerr.Error
	if !errors.As(err, &ge) {
		return ""
	}
	if code, ok := ge.Values()[RuleCodeKey].(RuleCode); ok {
		return code
	}
	return ""
}
