package model

import (
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/types"
)

// Action is one recorded handball event within a possession of a match.
// For a fixed match, actions form a strict total order by ID (creation
// order); the sequential validation rule constrains each new action's origin
// as a function of the immediately preceding action's PossessionChanged.
type Action struct {
	ID           int64
	MatchID      int64 // Required: an Action always belongs to one Match
	PossessionID int64
	ActingTeam   types.TeamSide
	AttackType   types.AttackType
	ActionOrigin types.ActionOrigin
	Event        types.MatchEvent
	FinishDetail *types.FinishDetail
	ShotZone     *types.ShotZone
	EventDetail  *types.EventDetail

	// PossessionChanged must equal the value the validation rules imply
	// from Event and EventDetail.
	PossessionChanged bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ActionPatch carries a partial update. Nil fields keep the stored value.
// Clear flags reset the corresponding nullable field; a nil pointer with the
// clear flag unset means "unchanged", so clearing must be explicit.
type ActionPatch struct {
	PossessionID      *int64
	ActingTeam        *types.TeamSide
	AttackType        *types.AttackType
	ActionOrigin      *types.ActionOrigin
	Event             *types.MatchEvent
	FinishDetail      *types.FinishDetail
	ClearFinishDetail bool
	ShotZone          *types.ShotZone
	ClearShotZone     bool
	EventDetail       *types.EventDetail
	ClearEventDetail  bool
	PossessionChanged *bool
}

// ApplyTo merges the patch over a copy of the stored action. The merged
// candidate is what gets re-validated in full before persisting.
func (p *ActionPatch) ApplyTo(stored *Action) *Action {
	merged := stored.Clone()

	if p.PossessionID != nil {
		merged.PossessionID = *p.PossessionID
	}
	if p.ActingTeam != nil {
		merged.ActingTeam = *p.ActingTeam
	}
	if p.AttackType != nil {
		merged.AttackType = *p.AttackType
	}
	if p.ActionOrigin != nil {
		merged.ActionOrigin = *p.ActionOrigin
	}
	if p.Event != nil {
		merged.Event = *p.Event
	}
	if p.ClearFinishDetail {
		merged.FinishDetail = nil
	} else if p.FinishDetail != nil {
		d := *p.FinishDetail
		merged.FinishDetail = &d
	}
	if p.ClearShotZone {
		merged.ShotZone = nil
	} else if p.ShotZone != nil {
		z := *p.ShotZone
		merged.ShotZone = &z
	}
	if p.ClearEventDetail {
		merged.EventDetail = nil
	} else if p.EventDetail != nil {
		d := *p.EventDetail
		merged.EventDetail = &d
	}
	if p.PossessionChanged != nil {
		merged.PossessionChanged = *p.PossessionChanged
	}

	return merged
}

// Clone returns a deep copy of the action
func (a *Action) Clone() *Action {
	c := *a
	if a.FinishDetail != nil {
		d := *a.FinishDetail
		c.FinishDetail = &d
	}
	if a.ShotZone != nil {
		z := *a.ShotZone
		c.ShotZone = &z
	}
	if a.EventDetail != nil {
		d := *a.EventDetail
		c.EventDetail = &d
	}
	return &c
}
