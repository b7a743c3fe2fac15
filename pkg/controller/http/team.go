package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

type teamResponse struct {
	ID        int64     `json:"id"`
	ClubID    *int64    `json:"club_id,omitempty"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Season    string    `json:"season"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newTeamResponse(t *model.Team) *teamResponse {
	return &teamResponse{
		ID:        t.ID,
		ClubID:    t.ClubID,
		Name:      t.Name,
		Category:  t.Category,
		Season:    t.Season,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func newTeamListResponse(teams []*model.Team) []*teamResponse {
	resp := make([]*teamResponse, len(teams))
	for i, t := range teams {
		resp[i] = newTeamResponse(t)
	}
	return resp
}

type teamRequest struct {
	ClubID   *int64 `json:"club_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Season   string `json:"season"`
}

func createTeamHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		var req teamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		created, err := teamUC.CreateTeam(r.Context(), p, &model.Team{
			ClubID:   req.ClubID,
			Name:     req.Name,
			Category: req.Category,
			Season:   req.Season,
		})
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, newTeamResponse(created))
	}
}

func listTeamsHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		teams, err := teamUC.ListTeams(r.Context(), p)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newTeamListResponse(teams))
	}
}

func listClubTeamsHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		clubID, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid club ID")
			return
		}

		teams, err := teamUC.ListTeamsByClub(r.Context(), p, clubID)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newTeamListResponse(teams))
	}
}

func getTeamHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid team ID")
			return
		}

		team, err := teamUC.GetTeam(r.Context(), p, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newTeamResponse(team))
	}
}

func updateTeamHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid team ID")
			return
		}

		var req teamRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		updated, err := teamUC.UpdateTeam(r.Context(), p, &model.Team{
			ID:       id,
			ClubID:   req.ClubID,
			Name:     req.Name,
			Category: req.Category,
			Season:   req.Season,
		})
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newTeamResponse(updated))
	}
}

func deleteTeamHandler(teamUC *usecase.TeamUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid team ID")
			return
		}

		if err := teamUC.DeleteTeam(r.Context(), p, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
