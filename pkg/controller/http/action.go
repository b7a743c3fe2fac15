package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

type actionResponse struct {
	ID                int64     `json:"id"`
	MatchID           int64     `json:"match_id"`
	PossessionID      int64     `json:"possession_id"`
	ActingTeam        string    `json:"acting_team"`
	AttackType        string    `json:"attack_type"`
	ActionOrigin      string    `json:"action_origin"`
	Event             string    `json:"event"`
	FinishDetail      *string   `json:"finish_detail,omitempty"`
	ShotZone          *string   `json:"shot_zone,omitempty"`
	EventDetail       *string   `json:"event_detail,omitempty"`
	PossessionChanged bool      `json:"possession_changed"`
	HomeTeamName      string    `json:"home_team_name"`
	AwayTeamName      string    `json:"away_team_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newActionResponse(d *usecase.ActionDetail) *actionResponse {
	resp := &actionResponse{
		ID:                d.ID,
		MatchID:           d.MatchID,
		PossessionID:      d.PossessionID,
		ActingTeam:        string(d.ActingTeam),
		AttackType:        string(d.AttackType),
		ActionOrigin:      string(d.ActionOrigin),
		Event:             string(d.Event),
		PossessionChanged: d.PossessionChanged,
		HomeTeamName:      d.HomeTeamName,
		AwayTeamName:      d.AwayTeamName,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
	if d.FinishDetail != nil {
		s := string(*d.FinishDetail)
		resp.FinishDetail = &s
	}
	if d.ShotZone != nil {
		s := string(*d.ShotZone)
		resp.ShotZone = &s
	}
	if d.EventDetail != nil {
		s := string(*d.EventDetail)
		resp.EventDetail = &s
	}
	return resp
}

type actionRequest struct {
	PossessionID      int64   `json:"possession_id"`
	ActingTeam        string  `json:"acting_team"`
	AttackType        string  `json:"attack_type"`
	ActionOrigin      string  `json:"action_origin"`
	Event             string  `json:"event"`
	FinishDetail      *string `json:"finish_detail"`
	ShotZone          *string `json:"shot_zone"`
	EventDetail       *string `json:"event_detail"`
	PossessionChanged bool    `json:"possession_changed"`
}

func (req *actionRequest) toModel(matchID int64) (*model.Action, string) {
	if req.PossessionID <= 0 {
		return nil, "possession_id is required"
	}
	actingTeam, err := types.ParseTeamSide(req.ActingTeam)
	if err != nil {
		return nil, "invalid acting_team"
	}
	attackType, err := types.ParseAttackType(req.AttackType)
	if err != nil {
		return nil, "invalid attack_type"
	}
	origin, err := types.ParseActionOrigin(req.ActionOrigin)
	if err != nil {
		return nil, "invalid action_origin"
	}
	event, err := types.ParseMatchEvent(req.Event)
	if err != nil {
		return nil, "invalid event"
	}

	action := &model.Action{
		MatchID:           matchID,
		PossessionID:      req.PossessionID,
		ActingTeam:        actingTeam,
		AttackType:        attackType,
		ActionOrigin:      origin,
		Event:             event,
		PossessionChanged: req.PossessionChanged,
	}

	if req.FinishDetail != nil {
		d, err := types.ParseFinishDetail(*req.FinishDetail)
		if err != nil {
			return nil, "invalid finish_detail"
		}
		action.FinishDetail = &d
	}
	if req.ShotZone != nil {
		z, err := types.ParseShotZone(*req.ShotZone)
		if err != nil {
			return nil, "invalid shot_zone"
		}
		action.ShotZone = &z
	}
	if req.EventDetail != nil {
		d, err := types.ParseEventDetail(*req.EventDetail)
		if err != nil {
			return nil, "invalid event_detail"
		}
		action.EventDetail = &d
	}

	return action, ""
}

func createActionHandler(actionUC *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		matchID, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid match ID")
			return
		}

		var req actionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		action, msg := req.toModel(matchID)
		if msg != "" {
			respondBadRequest(r.Context(), w, msg)
			return
		}

		created, err := actionUC.CreateAction(r.Context(), p, action)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, newActionResponse(created))
	}
}

func listMatchActionsHandler(actionUC *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		matchID, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid match ID")
			return
		}

		details, err := actionUC.ListActionsByMatch(r.Context(), p, matchID)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		resp := make([]*actionResponse, len(details))
		for i, d := range details {
			resp[i] = newActionResponse(d)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func getActionHandler(actionUC *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid action ID")
			return
		}

		detail, err := actionUC.GetAction(r.Context(), p, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newActionResponse(detail))
	}
}

// actionPatchRequest distinguishes "leave unchanged" (field absent) from
// "clear" (explicit clear flag) for the nullable detail fields.
type actionPatchRequest struct {
	PossessionID      *int64  `json:"possession_id"`
	ActingTeam        *string `json:"acting_team"`
	AttackType        *string `json:"attack_type"`
	ActionOrigin      *string `json:"action_origin"`
	Event             *string `json:"event"`
	FinishDetail      *string `json:"finish_detail"`
	ClearFinishDetail bool    `json:"clear_finish_detail"`
	ShotZone          *string `json:"shot_zone"`
	ClearShotZone     bool    `json:"clear_shot_zone"`
	EventDetail       *string `json:"event_detail"`
	ClearEventDetail  bool    `json:"clear_event_detail"`
	PossessionChanged *bool   `json:"possession_changed"`
}

func (req *actionPatchRequest) toPatch() (*model.ActionPatch, string) {
	if req.PossessionID != nil && *req.PossessionID <= 0 {
		return nil, "possession_id must be positive"
	}
	patch := &model.ActionPatch{
		PossessionID:      req.PossessionID,
		ClearFinishDetail: req.ClearFinishDetail,
		ClearShotZone:     req.ClearShotZone,
		ClearEventDetail:  req.ClearEventDetail,
		PossessionChanged: req.PossessionChanged,
	}

	if req.ActingTeam != nil {
		v, err := types.ParseTeamSide(*req.ActingTeam)
		if err != nil {
			return nil, "invalid acting_team"
		}
		patch.ActingTeam = &v
	}
	if req.AttackType != nil {
		v, err := types.ParseAttackType(*req.AttackType)
		if err != nil {
			return nil, "invalid attack_type"
		}
		patch.AttackType = &v
	}
	if req.ActionOrigin != nil {
		v, err := types.ParseActionOrigin(*req.ActionOrigin)
		if err != nil {
			return nil, "invalid action_origin"
		}
		patch.ActionOrigin = &v
	}
	if req.Event != nil {
		v, err := types.ParseMatchEvent(*req.Event)
		if err != nil {
			return nil, "invalid event"
		}
		patch.Event = &v
	}
	if req.FinishDetail != nil {
		v, err := types.ParseFinishDetail(*req.FinishDetail)
		if err != nil {
			return nil, "invalid finish_detail"
		}
		patch.FinishDetail = &v
	}
	if req.ShotZone != nil {
		v, err := types.ParseShotZone(*req.ShotZone)
		if err != nil {
			return nil, "invalid shot_zone"
		}
		patch.ShotZone = &v
	}
	if req.EventDetail != nil {
		v, err := types.ParseEventDetail(*req.EventDetail)
		if err != nil {
			return nil, "invalid event_detail"
		}
		patch.EventDetail = &v
	}

	return patch, ""
}

func updateActionHandler(actionUC *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid action ID")
			return
		}

		var req actionPatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		patch, msg := req.toPatch()
		if msg != "" {
			respondBadRequest(r.Context(), w, msg)
			return
		}

		updated, err := actionUC.UpdateAction(r.Context(), p, id, patch)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newActionResponse(updated))
	}
}

func deleteActionHandler(actionUC *usecase.ActionUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid action ID")
			return
		}

		if err := actionUC.DeleteAction(r.Context(), p, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
