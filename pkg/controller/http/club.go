package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

type clubResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newClubResponse(c *model.Club) *clubResponse {
	return &clubResponse{
		ID:        c.ID,
		Name:      c.Name,
		City:      c.City,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type clubRequest struct {
	Name string `json:"name"`
	City string `json:"city"`
}

func createClubHandler(clubUC *usecase.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		var req clubRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		created, err := clubUC.CreateClub(r.Context(), p, &model.Club{
			Name: req.Name,
			City: req.City,
		})
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, newClubResponse(created))
	}
}

func listClubsHandler(clubUC *usecase.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		clubs, err := clubUC.ListClubs(r.Context(), p)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		resp := make([]*clubResponse, len(clubs))
		for i, c := range clubs {
			resp[i] = newClubResponse(c)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func getClubHandler(clubUC *usecase.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid club ID")
			return
		}

		club, err := clubUC.GetClub(r.Context(), p, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newClubResponse(club))
	}
}

func updateClubHandler(clubUC *usecase.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid club ID")
			return
		}

		var req clubRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		updated, err := clubUC.UpdateClub(r.Context(), p, &model.Club{
			ID:   id,
			Name: req.Name,
			City: req.City,
		})
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newClubResponse(updated))
	}
}

func deleteClubHandler(clubUC *usecase.ClubUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid club ID")
			return
		}

		if err := clubUC.DeleteClub(r.Context(), p, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
