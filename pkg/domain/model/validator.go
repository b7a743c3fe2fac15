package model

import (
	"context"

	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// LastActionFunc returns the most recently recorded action of the candidate's
// match, or nil when the match has no prior action. When validating an
// update, the lookup must exclude the action being updated so the candidate
// is checked against its true predecessor.
type LastActionFunc func(ctx context.Context) (*Action, error)

// ValidateAction decides whether a fully populated candidate action is
// acceptable. The five rules run in fixed order and the first violation is
// returned; every violation wraps ErrRuleViolation with its rule code. The
// function never mutates the candidate and performs no I/O beyond a single
// call to lastAction, which only happens when the sequential rule applies.
//
// Callers are responsible for serializing concurrent validations against the
// same match: the sequential rule is only sound when the last-action read and
// the subsequent write cannot interleave with another writer.
func ValidateAction(ctx context.Context, a *Action, lastAction LastActionFunc) error {
	if err := validateSevenMeter(a); err != nil {
		return err
	}
	if err := validateAttackType(a); err != nil {
		return err
	}
	if err := validateEvent(a); err != nil {
		return err
	}
	if err := validatePossessionChange(a); err != nil {
		return err
	}
	return validateSequence(ctx, a, lastAction)
}

// validateSevenMeter checks both directions of the seven-meter pairing:
// a seven-meter origin forces the seven-meter finish and a positional
// attack, and a seven-meter finish forces the seven-meter origin.
func validateSevenMeter(a *Action) error {
	if a.ActionOrigin == types.ActionOriginSevenMeter {
		if a.FinishDetail == nil || *a.FinishDetail != types.FinishDetailSevenMeter {
			return newRuleError(RuleInvalid7mDetail,
				"seven meter origin requires the seven meter finish detail")
		}
		if a.AttackType != types.AttackTypePositional {
			return newRuleError(RuleInvalid7mType,
				"seven meter origin requires a positional attack")
		}
	}

	if a.FinishDetail != nil && *a.FinishDetail == types.FinishDetailSevenMeter {
		if a.ActionOrigin != types.ActionOriginSevenMeter {
			return newRuleError(RuleInvalid7mOrigin,
				"seven meter finish detail requires the seven meter origin")
		}
	}

	return nil
}

func validateAttackType(a *Action) error {
	switch a.AttackType {
	case types.AttackTypeCounterAttack:
		if a.FinishDetail == nil || !a.FinishDetail.IsCounterFinish() {
			return newRuleError(RuleInvalidCounterAttackDetail,
				"counter attack requires a counter goal or wave finish detail")
		}
	case types.AttackTypePositional:
		if a.FinishDetail != nil && a.FinishDetail.IsCounterFinish() {
			return newRuleError(RuleInvalidPositionalDetail,
				"positional attack cannot carry a counter attack finish detail")
		}
	}
	return nil
}

// validateEvent dispatches on the event and checks which of the nullable
// fields must be present, absent, or drawn from the event's detail subset.
func validateEvent(a *Action) error {
	switch a.Event {
	case types.MatchEventGoal:
		if a.FinishDetail == nil || a.ShotZone == nil {
			return newRuleError(RuleGoalRequiredFields,
				"goal requires finish detail and shot zone")
		}
		if a.EventDetail != nil {
			return newRuleError(RuleGoalInvalidDetail,
				"goal cannot carry an event detail")
		}
		return nil

	case types.MatchEventShotStopped:
		if a.FinishDetail == nil || a.ShotZone == nil {
			return newRuleError(RuleShotStoppedRequiredFields,
				"stopped shot requires finish detail and shot zone")
		}
		if a.EventDetail == nil {
			return newRuleError(RuleShotStoppedRequiredDetail,
				"stopped shot requires an event detail")
		}
		if !a.EventDetail.IsShotStoppedDetail() {
			return newRuleError(RuleShotStoppedInvalidDetail,
				"stopped shot detail must be a goalkeeper save or defender block")
		}
		return nil

	case types.MatchEventShotMissed:
		if a.FinishDetail == nil || a.ShotZone == nil {
			return newRuleError(RuleShotMissedRequiredFields,
				"missed shot requires finish detail and shot zone")
		}
		if a.EventDetail == nil {
			return newRuleError(RuleShotMissedRequiredDetail,
				"missed shot requires an event detail")
		}
		if !a.EventDetail.IsShotMissedDetail() {
			return newRuleError(RuleShotMissedInvalidDetail,
				"missed shot detail must be a post hit or directly out")
		}
		return nil

	case types.MatchEventTurnover:
		if a.FinishDetail != nil || a.ShotZone != nil {
			return newRuleError(RuleTurnoverInvalidFields,
				"turnover cannot carry finish detail or shot zone")
		}
		if a.EventDetail == nil {
			return newRuleError(RuleTurnoverRequiredDetail,
				"turnover requires an event detail")
		}
		if !a.EventDetail.IsTurnoverDetail() {
			return newRuleError(RuleTurnoverInvalidDetail,
				"turnover detail must be one of the turnover causes")
		}
		return nil

	default:
		return goerr.New("unsupported match event", goerr.V("event", a.Event))
	}
}

// validatePossessionChange checks that the recorded flag equals the value
// the event deterministically implies. Possession is kept only when the
// goalkeeper or a defender stops the shot, or the ball comes back off the
// post; a shot directly out still changes possession.
func validatePossessionChange(a *Action) error {
	expected := true

	if a.Event == types.MatchEventShotStopped &&
		a.EventDetail != nil && a.EventDetail.IsShotStoppedDetail() {
		expected = false
	}
	if a.Event == types.MatchEventShotMissed &&
		a.EventDetail != nil && *a.EventDetail == types.EventDetailPost {
		expected = false
	}

	if a.PossessionChanged != expected {
		return newRuleError(RuleInvalidPossessionChange,
			"possession change flag does not match the value implied by the event")
	}
	return nil
}

// validateSequence checks the candidate's origin against the previous action
// of the match. Seven-meter actions are exempt: a penalty throw can follow
// anything.
func validateSequence(ctx context.Context, a *Action, lastAction LastActionFunc) error {
	if a.ActionOrigin == types.ActionOriginSevenMeter {
		return nil
	}

	prev, err := lastAction(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to look up last action of match",
			goerr.V("match_id", a.MatchID))
	}

	if prev == nil {
		// First action of the match: a new possession can only start with
		// continuous play.
		if a.ActionOrigin != types.ActionOriginContinuousPlay {
			return newRuleError(RuleInvalidFirstAction,
				"first action of a match must originate from continuous play")
		}
		return nil
	}

	if a.ActionOrigin.IsRebound() && prev.PossessionChanged {
		return newRuleError(RuleInvalidReboundSequence,
			"rebound requires the previous action to have kept possession")
	}
	if a.ActionOrigin == types.ActionOriginContinuousPlay && !prev.PossessionChanged {
		return newRuleError(RuleInvalidContinuousGameSequence,
			"continuous play requires the previous action to have changed possession")
	}

	return nil
}
