package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/courtside-dev/courtside/pkg/usecase"
)

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  *userResponse `json:"user"`
}

func loginHandler(authUC *usecase.AuthUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondBadRequest(r.Context(), w, "invalid request body")
			return
		}

		token, user, err := authUC.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, loginResponse{
			Token: token,
			User:  newUserResponse(user),
		})
	}
}

func meHandler() http.HandlerFunc {
	type meResponse struct {
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := principalOrAbort(w, r)
		if !ok {
			return
		}

		respondJSON(r.Context(), w, http.StatusOK, meResponse{
			UserID: p.UserID,
			Email:  p.Email,
			Role:   string(p.Role),
		})
	}
}
