package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/courtside-dev/courtside/pkg/domain/model"
	"github.com/courtside-dev/courtside/pkg/domain/model/auth"
	"github.com/courtside-dev/courtside/pkg/domain/types"
	"github.com/courtside-dev/courtside/pkg/repository/memory"
	"github.com/courtside-dev/courtside/pkg/usecase"
)

var testSecret = []byte("test-secret-0123456789abcdef")

func setupUseCases() *usecase.UseCases {
	return usecase.New(memory.New(), usecase.WithJWTSecret(testSecret))
}

func newUser(t *testing.T, uc *usecase.UseCases, email string, role types.Role) (*model.User, *auth.Principal) {
	t.Helper()

	user, err := uc.User.CreateUser(context.Background(), "Test User", email, "password123", role)
	gt.NoError(t, err).Required()

	return user, &auth.Principal{UserID: user.ID, Email: user.Email, Role: user.Role}
}

// goalAction is valid as the first action of a match.
func goalAction(matchID int64) *model.Action {
	detail := types.FinishDetailBackcourt
	zone := types.ShotZoneCenterBack
	return &model.Action{
		MatchID:           matchID,
		PossessionID:      1,
		ActingTeam:        types.TeamSideHome,
		AttackType:        types.AttackTypePositional,
		ActionOrigin:      types.ActionOriginContinuousPlay,
		Event:             types.MatchEventGoal,
		FinishDetail:      &detail,
		ShotZone:          &zone,
		PossessionChanged: true,
	}
}

// stoppedAction keeps possession, so a rebound can follow it.
func stoppedAction(matchID int64) *model.Action {
	detail := types.FinishDetailPivot
	zone := types.ShotZoneSixMeter
	eventDetail := types.EventDetailGoalkeeperSave
	return &model.Action{
		MatchID:           matchID,
		PossessionID:      1,
		ActingTeam:        types.TeamSideHome,
		AttackType:        types.AttackTypePositional,
		ActionOrigin:      types.ActionOriginContinuousPlay,
		Event:             types.MatchEventShotStopped,
		FinishDetail:      &detail,
		ShotZone:          &zone,
		EventDetail:       &eventDetail,
		PossessionChanged: false,
	}
}

// reboundGoal is only valid when the previous action kept possession.
func reboundGoal(matchID int64) *model.Action {
	a := goalAction(matchID)
	a.ActionOrigin = types.ActionOriginDirectRebound
	return a
}
