package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/courtside-dev/courtside/pkg/controller/http"
	"github.com/courtside-dev/courtside/pkg/repository/memory"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

func setupServer() *server.Server {
	uc := usecase.New(memory.New(), usecase.WithJWTSecret([]byte("test-secret-0123456789abcdef")))
	return server.New(uc)
}

func doRequest(t *testing.T, srv *server.Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		gt.NoError(t, err).Required()
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
	return body
}

// registerAndLogin creates an account through the public endpoints and
// returns a usable bearer token.
func registerAndLogin(t *testing.T, srv *server.Server, email string) string {
	t.Helper()

	rec := doRequest(t, srv, http.MethodPost, "/api/users", "", map[string]any{
		"name":     "Test User",
		"email":    email,
		"password": "password123",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)

	rec = doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    email,
		"password": "password123",
	})
	gt.Equal(t, rec.Code, http.StatusOK)

	body := decodeBody(t, rec)
	token := gt.Cast[string](t, body["token"])
	gt.B(t, token != "").True()
	return token
}

func TestRegisterAndLogin(t *testing.T) {
	srv := setupServer()

	rec := doRequest(t, srv, http.MethodPost, "/api/users", "", map[string]any{
		"name":     "Ana",
		"email":    "ana@example.com",
		"password": "password123",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	created := decodeBody(t, rec)
	gt.Equal(t, created["role"], "COACH")
	gt.V(t, created["password"]).Nil()

	t.Run("duplicate email conflicts", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/users", "", map[string]any{
			"name":     "Ana Again",
			"email":    "ana@example.com",
			"password": "password123",
		})
		gt.Equal(t, rec.Code, http.StatusConflict)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "ana@example.com",
			"password": "wrong-password",
		})
		gt.Equal(t, rec.Code, http.StatusUnauthorized)
	})

	t.Run("token identifies the caller", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, "/api/auth/login", "", map[string]any{
			"email":    "ana@example.com",
			"password": "password123",
		})
		gt.Equal(t, rec.Code, http.StatusOK)
		token := gt.Cast[string](t, decodeBody(t, rec)["token"])

		rec = doRequest(t, srv, http.MethodGet, "/api/auth/me", token, nil)
		gt.Equal(t, rec.Code, http.StatusOK)
		me := decodeBody(t, rec)
		gt.Equal(t, me["email"], "ana@example.com")
		gt.Equal(t, me["role"], "COACH")
	})
}

func TestAuthRequired(t *testing.T) {
	srv := setupServer()

	rec := doRequest(t, srv, http.MethodGet, "/api/matches", "", nil)
	gt.Equal(t, rec.Code, http.StatusUnauthorized)

	rec = doRequest(t, srv, http.MethodGet, "/api/matches", "not-a-token", nil)
	gt.Equal(t, rec.Code, http.StatusUnauthorized)
}

func TestMatchAndActionFlow(t *testing.T) {
	srv := setupServer()
	token := registerAndLogin(t, srv, "scout@example.com")

	rec := doRequest(t, srv, http.MethodPost, "/api/matches", token, map[string]any{
		"home_team_name": "BM Granollers",
		"away_team_name": "FC Barcelona",
		"competition":    "Liga ASOBAL",
		"match_date":     "2026-03-14T18:00:00Z",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	match := decodeBody(t, rec)
	matchID := gt.Cast[float64](t, match["id"])
	gt.N(t, matchID).Greater(0)
	matchPath := "/api/matches/" + jsonID(matchID)

	t.Run("valid first action", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, matchPath+"/actions", token, map[string]any{
			"possession_id":      1,
			"acting_team":        "HOME",
			"attack_type":        "POSITIONAL",
			"action_origin":      "CONTINUOUS_PLAY",
			"event":              "GOAL",
			"finish_detail":      "BACKCOURT",
			"shot_zone":          "CENTER_BACK",
			"possession_changed": true,
		})
		gt.Equal(t, rec.Code, http.StatusCreated)
		action := decodeBody(t, rec)
		gt.Equal(t, action["home_team_name"], "BM Granollers")
		gt.Equal(t, action["away_team_name"], "FC Barcelona")
		gt.Equal(t, action["event"], "GOAL")
	})

	t.Run("rule violation returns rule code", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, matchPath+"/actions", token, map[string]any{
			"possession_id":      2,
			"acting_team":        "AWAY",
			"attack_type":        "POSITIONAL",
			"action_origin":      "DIRECT_REBOUND",
			"event":              "GOAL",
			"finish_detail":      "WING",
			"shot_zone":          "LEFT_WING",
			"possession_changed": true,
		})
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		body := decodeBody(t, rec)
		gt.Equal(t, body["rule_code"], "INVALID_REBOUND_SEQUENCE")
	})

	t.Run("unknown enum value is a bad request", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, matchPath+"/actions", token, map[string]any{
			"possession_id":      2,
			"acting_team":        "LEFT",
			"attack_type":        "POSITIONAL",
			"action_origin":      "CONTINUOUS_PLAY",
			"event":              "GOAL",
			"possession_changed": true,
		})
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, decodeBody(t, rec)["error"], "invalid acting_team")
	})

	t.Run("missing possession id is a bad request", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPost, matchPath+"/actions", token, map[string]any{
			"acting_team":        "HOME",
			"attack_type":        "POSITIONAL",
			"action_origin":      "CONTINUOUS_PLAY",
			"event":              "GOAL",
			"finish_detail":      "PIVOT",
			"shot_zone":          "SIX_METER",
			"possession_changed": true,
		})
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, decodeBody(t, rec)["error"], "possession_id is required")
	})

	t.Run("actions listed in creation order", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, matchPath+"/actions", token, nil)
		gt.Equal(t, rec.Code, http.StatusOK)

		var actions []map[string]any
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions)).Required()
		gt.A(t, actions).Length(1)
	})

	t.Run("missing match is not found", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodGet, "/api/matches/9999", token, nil)
		gt.Equal(t, rec.Code, http.StatusNotFound)
		gt.Equal(t, decodeBody(t, rec)["error"], "not found")
	})

	t.Run("scouting match hidden from other users", func(t *testing.T) {
		other := registerAndLogin(t, srv, "other@example.com")

		rec := doRequest(t, srv, http.MethodGet, matchPath, other, nil)
		gt.Equal(t, rec.Code, http.StatusForbidden)
		gt.Equal(t, decodeBody(t, rec)["error"], "permission denied")
	})

	t.Run("delete removes the match", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodDelete, matchPath, token, nil)
		gt.Equal(t, rec.Code, http.StatusNoContent)

		rec = doRequest(t, srv, http.MethodGet, matchPath, token, nil)
		gt.Equal(t, rec.Code, http.StatusNotFound)
	})
}

func TestActionUpdate(t *testing.T) {
	srv := setupServer()
	token := registerAndLogin(t, srv, "recorder@example.com")

	rec := doRequest(t, srv, http.MethodPost, "/api/matches", token, map[string]any{
		"home_team_name": "Home",
		"away_team_name": "Away",
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	matchID := jsonID(gt.Cast[float64](t, decodeBody(t, rec)["id"]))

	rec = doRequest(t, srv, http.MethodPost, "/api/matches/"+matchID+"/actions", token, map[string]any{
		"possession_id":      1,
		"acting_team":        "HOME",
		"attack_type":        "POSITIONAL",
		"action_origin":      "CONTINUOUS_PLAY",
		"event":              "GOAL",
		"finish_detail":      "PIVOT",
		"shot_zone":          "SIX_METER",
		"possession_changed": true,
	})
	gt.Equal(t, rec.Code, http.StatusCreated)
	actionID := jsonID(gt.Cast[float64](t, decodeBody(t, rec)["id"]))

	t.Run("patch keeps unspecified fields", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/api/actions/"+actionID, token, map[string]any{
			"shot_zone": "LEFT_WING",
		})
		gt.Equal(t, rec.Code, http.StatusOK)
		body := decodeBody(t, rec)
		gt.Equal(t, body["shot_zone"], "LEFT_WING")
		gt.Equal(t, body["finish_detail"], "PIVOT")
	})

	t.Run("zero possession id is rejected", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/api/actions/"+actionID, token, map[string]any{
			"possession_id": 0,
		})
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, decodeBody(t, rec)["error"], "possession_id must be positive")
	})

	t.Run("clearing a required field is rejected", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodPut, "/api/actions/"+actionID, token, map[string]any{
			"clear_shot_zone": true,
		})
		gt.Equal(t, rec.Code, http.StatusBadRequest)
		gt.Equal(t, decodeBody(t, rec)["rule_code"], "GOAL_REQUIRED_FIELDS")
	})

	t.Run("delete then fetch is not found", func(t *testing.T) {
		rec := doRequest(t, srv, http.MethodDelete, "/api/actions/"+actionID, token, nil)
		gt.Equal(t, rec.Code, http.StatusNoContent)

		rec = doRequest(t, srv, http.MethodGet, "/api/actions/"+actionID, token, nil)
		gt.Equal(t, rec.Code, http.StatusNotFound)
	})
}

func TestClubEndpointsRequireAdmin(t *testing.T) {
	srv := setupServer()
	token := registerAndLogin(t, srv, "coach@example.com")

	rec := doRequest(t, srv, http.MethodPost, "/api/clubs", token, map[string]any{
		"name": "BM Granollers",
		"city": "Granollers",
	})
	gt.Equal(t, rec.Code, http.StatusForbidden)
}

// jsonID renders a numeric JSON value back into a URL path segment.
func jsonID(v float64) string {
	return strconv.FormatInt(int64(v), 10)
}
