package domain

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/pubsub"
	"github.com/biskitsx/ZideQuest-Backend/pkg/testutil"
)

func newQuestDomain(publisher pubsub.Publisher, redisClient *testutil.MockRedisClient) QuestDomain {
	if redisClient == nil {
		redisClient = &testutil.MockRedisClient{}
	}

	return NewQuestDomain(
		repository.NewQuestRepository(),
		repository.NewQuestParticipantRepository(),
		repository.NewLocationRepository(),
		repository.NewNotificationRepository(),
		repository.NewTranscriptRepository(),
		repository.NewAdminRepository(),
		&testutil.MockStorage{},
		redisClient,
		publisher,
	)
}

func Test_questDomain_JoinOrLeave_toggle(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User3.ID, entity.RoleUser)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	resp, err := d.JoinOrLeave(ctx, &model.JoinOrLeaveQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Participant, 3)

	joined := false
	for _, p := range resp.Participant {
		if p.UserID == testutil.User3.ID {
			joined = true
			require.False(t, p.Status)
		}
	}
	require.True(t, joined)

	// The second call leaves and restores the original membership.
	resp, err = d.JoinOrLeave(ctx, &model.JoinOrLeaveQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Len(t, resp.Participant, 2)
	for _, p := range resp.Participant {
		require.NotEqual(t, testutil.User3.ID, p.UserID)
	}
}

func Test_questDomain_JoinOrLeave_notFound(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID, entity.RoleUser)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	_, err := d.JoinOrLeave(ctx, &model.JoinOrLeaveQuestRequest{ID: "no-such-quest"})
	require.Equal(t, errorx.New(errorx.NotFound, "Quest not found"), err)
}

func Test_questDomain_JoinOrLeave_trendingScore(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User3.ID, entity.RoleUser)
	testutil.CreateFixtureDb(ctx, t)

	var incrs []int64
	redisClient := &testutil.MockRedisClient{
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			require.Equal(t, testutil.Quest1.ID, member)
			incrs = append(incrs, incr)
			return nil
		},
	}
	d := newQuestDomain(nil, redisClient)

	_, err := d.JoinOrLeave(ctx, &model.JoinOrLeaveQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	_, err = d.JoinOrLeave(ctx, &model.JoinOrLeaveQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Equal(t, []int64{1, -1}, incrs)
}

func Test_questDomain_CheckUsers(t *testing.T) {
	ctx := testutil.MockContext(t)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)
	creatorCtx := testutil.WithUserID(ctx, testutil.Creator1.ID, entity.RoleCreator)

	// Unknown ids are silently ignored.
	_, err := d.CheckUsers(creatorCtx, &model.CheckUsersRequest{
		ID:    testutil.Quest1.ID,
		Users: []string{testutil.User1.ID, "not-joined"},
	})
	require.NoError(t, err)

	participants, err := d.GetParticipants(ctx, &model.GetParticipantsRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Len(t, participants.Participant, 2)
	for _, p := range participants.Participant {
		require.Equal(t, p.UserID == testutil.User1.ID, p.Status)
	}

	_, err = d.UncheckUsers(creatorCtx, &model.UncheckUsersRequest{
		ID:    testutil.Quest1.ID,
		Users: []string{testutil.User1.ID},
	})
	require.NoError(t, err)

	participants, err = d.GetParticipants(ctx, &model.GetParticipantsRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	for _, p := range participants.Participant {
		require.False(t, p.Status)
	}
}

func Test_questDomain_CheckUsers_permissionDenied(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Creator3.ID, entity.RoleCreator)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	_, err := d.CheckUsers(ctx, &model.CheckUsersRequest{
		ID:    testutil.Quest1.ID,
		Users: []string{testutil.User1.ID},
	})
	require.Equal(t, errorx.New(errorx.PermissionDenied, "Permission denied"), err)
}

func Test_questDomain_RemoveUsers(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Admin1.ID, entity.RoleAdmin)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	_, err := d.RemoveUsers(ctx, &model.RemoveUsersRequest{
		ID:    testutil.Quest1.ID,
		Users: []string{testutil.User1.ID, testutil.User2.ID, "not-joined"},
	})
	require.NoError(t, err)

	participants, err := d.GetParticipants(ctx, &model.GetParticipantsRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Empty(t, participants.Participant)
}

func Test_questDomain_Complete_authorization(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		role    string
		wantErr error
	}{
		{
			name:    "admin is always allowed",
			actorID: testutil.Admin1.ID,
			role:    entity.RoleAdmin,
		},
		{
			name:    "creator of the same organization is allowed",
			actorID: testutil.Creator2.ID,
			role:    entity.RoleCreator,
		},
		{
			name:    "creator of another organization is rejected",
			actorID: testutil.Creator3.ID,
			role:    entity.RoleCreator,
			wantErr: errorx.New(errorx.PermissionDenied, "Permission denied"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContextWithUserID(t, tt.actorID, tt.role)
			testutil.CreateFixtureDb(ctx, t)
			d := newQuestDomain(nil, nil)

			_, err := d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
			if tt.wantErr != nil {
				require.Equal(t, tt.wantErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_questDomain_Complete_creditsAllParticipants(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Admin1.ID, entity.RoleAdmin)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)
	transcriptRepo := repository.NewTranscriptRepository()

	resp, err := d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Equal(t, "quest: Beach Cleanup complete successfully", resp.Message)

	// Category "1" credits the university bucket of every joiner.
	for _, userID := range []string{testutil.User1.ID, testutil.User2.ID} {
		records, err := transcriptRepo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, entity.BucketUniversity, records[0].Bucket)
		require.Equal(t, float64(5), records[0].Hours)
		require.Equal(t, uint64(1), records[0].Count)
	}

	// Non-participants are unaffected.
	records, err := transcriptRepo.GetByUserID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Empty(t, records)

	quest, err := repository.NewQuestRepository().GetByID(ctx, testutil.Quest1.ID)
	require.NoError(t, err)
	require.True(t, quest.Completed)
}

func Test_questDomain_Complete_accumulatesExistingCredit(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Admin1.ID, entity.RoleAdmin)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	transcriptRepo := repository.NewTranscriptRepository()
	require.NoError(t, transcriptRepo.Credit(ctx, testutil.User1.ID, entity.BucketUniversity, 2))

	_, err := d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)

	records, err := transcriptRepo.GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, float64(7), records[0].Hours)
	require.Equal(t, uint64(2), records[0].Count)
}

func Test_questDomain_Complete_withoutActivityHour(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Admin1.ID, entity.RoleAdmin)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	resp, err := d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest2.ID})
	require.NoError(t, err)
	require.Equal(t, "quest: Blood Donation complete successfully", resp.Message)

	records, err := repository.NewTranscriptRepository().GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Empty(t, records)
}

func Test_questDomain_Complete_twiceRejected(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Admin1.ID, entity.RoleAdmin)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	_, err := d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)

	_, err = d.Complete(ctx, &model.CompleteQuestRequest{ID: testutil.Quest1.ID})
	require.Equal(t, errorx.New(errorx.Unavailable, "Quest is already completed"), err)

	// The second attempt must not double-credit.
	records, err := repository.NewTranscriptRepository().GetByUserID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, float64(5), records[0].Hours)
	require.Equal(t, uint64(1), records[0].Count)
}

func Test_questDomain_Cancel(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Creator1.ID, entity.RoleCreator)
	testutil.CreateFixtureDb(ctx, t)

	published := 0
	publisher := &testutil.MockPublisher{
		PublishFunc: func(ctx context.Context, topic string, pack *pubsub.Pack) error {
			published++
			require.Equal(t, testutil.Quest1.ID, string(pack.Key))
			return nil
		},
	}
	d := newQuestDomain(publisher, nil)

	resp, err := d.Cancel(ctx, &model.CancelQuestRequest{
		ID:      testutil.Quest1.ID,
		Message: "Rained out, see you next week",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, "Rained out, see you next week", resp.Message)
	require.Equal(t, 1, published)

	// Every current participant receives the shared notification.
	notificationRepo := repository.NewNotificationRepository()
	for _, userID := range []string{testutil.User1.ID, testutil.User2.ID} {
		notifications, err := notificationRepo.GetListByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, notifications, 1)
		require.Equal(t, resp.ID, notifications[0].ID)
		require.Equal(t, "Rained out, see you next week", notifications[0].Message)
	}

	notifications, err := notificationRepo.GetListByUserID(ctx, testutil.User3.ID)
	require.NoError(t, err)
	require.Empty(t, notifications)

	// Cancellation is a side-channel event, the quest stays open.
	quest, err := repository.NewQuestRepository().GetByID(ctx, testutil.Quest1.ID)
	require.NoError(t, err)
	require.False(t, quest.Completed)
}

func Test_questDomain_Recommend(t *testing.T) {
	ctx := testutil.MockContext(t)
	testutil.CreateFixtureDb(ctx, t)

	redisClient := &testutil.MockRedisClient{
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			return []redis.Z{
				{Member: testutil.Quest2.ID, Score: 10},
				{Member: testutil.Quest1.ID, Score: 2},
				{Member: "deleted-quest", Score: 1},
			}, nil
		},
	}
	d := newQuestDomain(nil, redisClient)

	resp, err := d.Recommend(ctx, &model.RecommendQuestsRequest{})
	require.NoError(t, err)
	require.Len(t, *resp, 2)
	require.Equal(t, testutil.Quest2.ID, (*resp)[0].ID)
	require.Equal(t, testutil.Quest1.ID, (*resp)[1].ID)
}

func Test_questDomain_Find_countsParticipants(t *testing.T) {
	ctx := testutil.MockContext(t)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	resp, err := d.Find(ctx, &model.FindQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Equal(t, 2, resp.CountParticipant)
	require.Equal(t, testutil.Quest1.Name, resp.QuestName)
}

func Test_questDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Creator2.ID, entity.RoleCreator)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	resp, err := d.Delete(ctx, &model.DeleteQuestRequest{ID: testutil.Quest1.ID})
	require.NoError(t, err)
	require.Equal(t, "quest: Beach Cleanup delete successfully", resp.Message)

	_, err = d.Get(ctx, &model.GetQuestRequest{ID: testutil.Quest1.ID})
	require.Equal(t, errorx.New(errorx.NotFound, "Quest not found"), err)
}

func Test_questDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.Creator1.ID, entity.RoleCreator)
	testutil.CreateFixtureDb(ctx, t)
	d := newQuestDomain(nil, nil)

	resp, err := d.Create(ctx, &model.CreateQuestRequest{
		LocationID: testutil.Location1.ID,
		QuestName:  "Tree Planting",
		ActivityHour: &model.ActivityHour{
			Category: "2.2",
			Hour:     3,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.Equal(t, testutil.Creator1.ID, resp.CreatorID)
	require.Equal(t, "2.2", resp.ActivityHour.Category)

	_, err = d.Create(ctx, &model.CreateQuestRequest{
		LocationID: "no-such-location",
		QuestName:  "Tree Planting",
	})
	require.Equal(t, errorx.New(errorx.NotFound, "Location not found"), err)
}
