package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

type matchResponse struct {
	ID           int64     `json:"id"`
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamName string    `json:"away_team_name"`
	HomeTeamID   *int64    `json:"home_team_id,omitempty"`
	AwayTeamID   *int64    `json:"away_team_id,omitempty"`
	Result       string    `json:"result"`
	Competition  string    `json:"competition"`
	MatchDate    time.Time `json:"match_date"`
	RecordedBy   int64     `json:"recorded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newMatchResponse(m *model.Match) *matchResponse {
	return &matchResponse{
		ID:           m.ID,
		HomeTeamName: m.HomeTeamName,
		AwayTeamName: m.AwayTeamName,
		HomeTeamID:   m.HomeTeamID,
		AwayTeamID:   m.AwayTeamID,
		Result:       m.Result,
		Competition:  m.Competition,
		MatchDate:    m.MatchDate,
		RecordedBy:   m.RecordedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type matchRequest struct {
	HomeTeamName string    `json:"home_team_name"`
	AwayTeamName string    `json:"away_team_name"`
	HomeTeamID   *int64    `json:"home_team_id"`
	AwayTeamID   *int64    `json:"away_team_id"`
	Result       string    `json:"result"`
	Competition  string    `json:"competition"`
	MatchDate    time.Time `json:"match_date"`
}

func (req *matchRequest) toModel(id int64) *model.Match {
	return &model.Match{
		ID:           id,
		HomeTeamName: req.HomeTeamName,
		AwayTeamName: req.AwayTeamName,
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		Result:       req.Result,
		Competition:  req.Competition,
		MatchDate:    req.MatchDate,
	}
}

func createMatchHandler(matchUC *usecase.MatchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		created, err := matchUC.CreateMatch(r.Context(), p, req.toModel(0))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, newMatchResponse(created))
	}
}

func listMatchesHandler(matchUC *usecase.MatchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		matches, err := matchUC.ListMatches(r.Context(), p)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		resp := make([]*matchResponse, len(matches))
		for i, m := range matches {
			resp[i] = newMatchResponse(m)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func getMatchHandler(matchUC *usecase.MatchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid match ID")
			return
		}

		match, err := matchUC.GetMatch(r.Context(), p, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newMatchResponse(match))
	}
}

func updateMatchHandler(matchUC *usecase.MatchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid match ID")
			return
		}

		var req matchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		updated, err := matchUC.UpdateMatch(r.Context(), p, req.toModel(id))
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newMatchResponse(updated))
	}
}

func deleteMatchHandler(matchUC *usecase.MatchUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid match ID")
			return
		}

		if err := matchUC.DeleteMatch(r.Context(), p, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
