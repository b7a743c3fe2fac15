package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
	"github.com/courtside-dev/courtside/pkg/usecase"
	"github.com/courtside-dev/courtside/pkg/utils/errutil"
	"github.com/courtside-dev/courtside/pkg/utils/safe"
)

type errorResponse struct {
	Error    string `json:"error"`
	RuleCode string `json:"rule_code,omitempty"`
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	safe.Write(ctx, w, data)
}

// respondError maps use case sentinels onto HTTP statuses. Permission and
// internal failures get fixed bodies so nothing about other users' data or
// server internals leaks through the API.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrMatchNotFound),
		errors.Is(err, usecase.ErrActionNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrClubNotFound),
		errors.Is(err, usecase.ErrTeamNotFound):
		respondJSON(ctx, w, http.StatusNotFound, errorResponse{Error: "not found"})

	case errors.Is(err, usecase.ErrPermissionDenied):
		respondJSON(ctx, w, http.StatusForbidden, errorResponse{Error: "permission denied"})

	case errors.Is(err, model.ErrRuleViolation):
		respondJSON(ctx, w, http.StatusBadRequest, errorResponse{
			Error:    err.Error(),
			RuleCode: string(model.RuleCodeOf(err)),
		})

	case errors.Is(err, usecase.ErrInvalidCredentials), errors.Is(err, auth.ErrNoPrincipal):
		respondJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})

	case errors.Is(err, usecase.ErrDuplicateEmail):
		respondJSON(ctx, w, http.StatusConflict, errorResponse{Error: "email already registered"})

	default:
		errutil.HandleHTTP(ctx, w, err, http.StatusInternalServerError)
	}
}

func respondBadRequest(ctx context.Context, w http.ResponseWriter, msg string) {
	respondJSON(ctx, w, http.StatusBadRequest, errorResponse{Error: msg})
}
