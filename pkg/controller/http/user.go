package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

// userResponse never carries the password hash.
type userResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResponse(u *model.User) *userResponse {
	return &userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		created, err := userUC.Register(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusCreated, newUserResponse(created))
	}
}

func listUsersHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		users, err := userUC.ListUsers(r.Context(), p)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		resp := make([]*userResponse, len(users))
		for i, u := range users {
			resp[i] = newUserResponse(u)
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}

func getUserHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		user, err := userUC.GetUser(r.Context(), p, id)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newUserResponse(user))
	}
}

type updateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

func updateUserHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		var role *types.Role
		if req.Role != nil {
			parsed, err := types.ParseRole(*req.Role)
			if err != nil {
				respondBadRequest(r.Context(), w, "invalid role")
				return
			}
			role = &parsed
		}

		updated, err := userUC.UpdateUser(r.Context(), p, id, req.Name, req.Email, role)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, newUserResponse(updated))
	}
}

func deleteUserHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		id, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		if err := userUC.DeleteUser(r.Context(), p, id); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func assignManagerHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
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
		userID, ok := idParam(r, "userID")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		if err := userUC.AssignClubManager(r.Context(), p, userID, clubID); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func removeManagerHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
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
		userID, ok := idParam(r, "userID")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		if err := userUC.RemoveClubManager(r.Context(), p, userID, clubID); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func assignCoachHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		teamID, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid team ID")
			return
		}
		userID, ok := idParam(r, "userID")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		if err := userUC.AssignCoach(r.Context(), p, userID, teamID); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func removeCoachHandler(userUC *usecase.UserUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}
		teamID, ok := idParam(r, "id")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid team ID")
			return
		}
		userID, ok := idParam(r, "userID")
		if !ok {
			respondBadRequest(r.Context(), w, "invalid user ID")
			return
		}

		if err := userUC.RemoveCoach(r.Context(), p, userID, teamID); err != nil {
			respondError(r.Context(), w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
