package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/testutil"
)

func newUserDomain() UserDomain {
	return NewUserDomain(
		repository.NewUserRepository(),
		repository.NewQuestRepository(),
		repository.NewQuestParticipantRepository(),
		repository.NewNotificationRepository(),
		repository.NewTranscriptRepository(),
	)
}

func Test_userDomain_GetInfo(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID, entity.RoleUser)
	testutil.CreateFixtureDb(ctx, t)
	d := newUserDomain()

	transcriptRepo := repository.NewTranscriptRepository()
	require.NoError(t, transcriptRepo.Credit(ctx, testutil.User1.ID, entity.BucketUniversity, 5))
	require.NoError(t, transcriptRepo.Credit(ctx, testutil.User1.ID, entity.BucketThinking, 3))

	resp, err := d.GetInfo(ctx, &model.GetUserInfoRequest{})
	require.NoError(t, err)
	require.Equal(t, testutil.User1.Username, resp.Username)

	require.Len(t, resp.JoinedQuest, 1)
	require.Equal(t, testutil.Quest1.ID, resp.JoinedQuest[0].ID)

	require.Equal(t, float64(5), resp.ActivityTranscript.University.Hour)
	require.Equal(t, uint64(1), resp.ActivityTranscript.University.Count)
	require.Equal(t, float64(3), resp.ActivityTranscript.Empowerment["thinking"].Hour)

	// Buckets never credited report zero.
	require.Zero(t, resp.ActivityTranscript.Society.Hour)
	require.Zero(t, resp.ActivityTranscript.Empowerment["health"].Count)
}

func Test_userDomain_GetInfo_noActivity(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User3.ID, entity.RoleUser)
	testutil.CreateFixtureDb(ctx, t)
	d := newUserDomain()

	resp, err := d.GetInfo(ctx, &model.GetUserInfoRequest{})
	require.NoError(t, err)
	require.Empty(t, resp.JoinedQuest)
	require.Empty(t, resp.Notifications)
	require.Zero(t, resp.ActivityTranscript.University.Hour)
}

func Test_userDomain_Create(t *testing.T) {
	ctx := testutil.MockContext(t)
	d := newUserDomain()

	resp, err := d.Create(ctx, &model.CreateUserRequest{
		Username:    "newcomer",
		Password:    "a-password",
		FirstName:   "New",
		LastName:    "Comer",
		StudentCode: "650123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "newcomer", resp.Username)

	stored, err := repository.NewUserRepository().GetByUsername(ctx, "newcomer")
	require.NoError(t, err)
	require.NotEqual(t, "a-password", stored.HashedPassword)
}

func Test_userDomain_Create_duplicateUsername(t *testing.T) {
	ctx := testutil.MockContext(t)
	d := newUserDomain()

	req := &model.CreateUserRequest{
		Username:    "newcomer",
		Password:    "a-password",
		FirstName:   "New",
		LastName:    "Comer",
		StudentCode: "650123",
	}
	_, err := d.Create(ctx, req)
	require.NoError(t, err)

	_, err = d.Create(ctx, req)
	require.Equal(t, errorx.New(errorx.AlreadyExists, "Username already taken"), err)
}
