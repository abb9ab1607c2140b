package domain

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/common"
	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/pubsub"
	"github.com/biskitsx/ZideQuest-Backend/pkg/storage"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xredis"
)

type QuestDomain interface {
	Create(context.Context, *model.CreateQuestRequest) (*model.CreateQuestResponse, error)
	Get(context.Context, *model.GetQuestRequest) (*model.GetQuestResponse, error)
	GetList(context.Context, *model.GetListQuestRequest) (*model.GetListQuestResponse, error)
	Update(context.Context, *model.UpdateQuestRequest) (*model.UpdateQuestResponse, error)
	Delete(context.Context, *model.DeleteQuestRequest) (*model.DeleteQuestResponse, error)
	GetCreatorQuests(context.Context, *model.GetCreatorQuestsRequest) (*model.GetCreatorQuestsResponse, error)
	GetCreatorUncompletedQuests(context.Context, *model.GetCreatorUncompletedQuestsRequest) (*model.GetCreatorUncompletedQuestsResponse, error)
	JoinOrLeave(context.Context, *model.JoinOrLeaveQuestRequest) (*model.JoinOrLeaveQuestResponse, error)
	GetParticipants(context.Context, *model.GetParticipantsRequest) (*model.GetParticipantsResponse, error)
	CheckUsers(context.Context, *model.CheckUsersRequest) (*model.CheckUsersResponse, error)
	UncheckUsers(context.Context, *model.UncheckUsersRequest) (*model.UncheckUsersResponse, error)
	RemoveUsers(context.Context, *model.RemoveUsersRequest) (*model.RemoveUsersResponse, error)
	Find(context.Context, *model.FindQuestRequest) (*model.FindQuestResponse, error)
	Complete(context.Context, *model.CompleteQuestRequest) (*model.CompleteQuestResponse, error)
	Cancel(context.Context, *model.CancelQuestRequest) (*model.CancelQuestResponse, error)
	ChangeImage(context.Context, *model.ChangeQuestImageRequest) (*model.ChangeQuestImageResponse, error)
	Recommend(context.Context, *model.RecommendQuestsRequest) (*model.RecommendQuestsResponse, error)
}

type questDomain struct {
	questRepo            repository.QuestRepository
	questParticipantRepo repository.QuestParticipantRepository
	locationRepo         repository.LocationRepository
	notificationRepo     repository.NotificationRepository
	transcriptRepo       repository.TranscriptRepository
	adminRepo            repository.AdminRepository
	roleVerifier         *common.QuestRoleVerifier
	fileStorage          storage.Storage
	redisClient          xredis.Client
	publisher            pubsub.Publisher
}

func NewQuestDomain(
	questRepo repository.QuestRepository,
	questParticipantRepo repository.QuestParticipantRepository,
	locationRepo repository.LocationRepository,
	notificationRepo repository.NotificationRepository,
	transcriptRepo repository.TranscriptRepository,
	adminRepo repository.AdminRepository,
	fileStorage storage.Storage,
	redisClient xredis.Client,
	publisher pubsub.Publisher,
) QuestDomain {
	return &questDomain{
		questRepo:            questRepo,
		questParticipantRepo: questParticipantRepo,
		locationRepo:         locationRepo,
		notificationRepo:     notificationRepo,
		transcriptRepo:       transcriptRepo,
		adminRepo:            adminRepo,
		roleVerifier:         common.NewQuestRoleVerifier(adminRepo),
		fileStorage:          fileStorage,
		redisClient:          redisClient,
		publisher:            publisher,
	}
}

func (d *questDomain) Create(
	ctx context.Context, req *model.CreateQuestRequest,
) (*model.CreateQuestResponse, error) {
	if req.QuestName == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest name")
	}

	if _, err := d.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Location not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get location: %v", err)
		return nil, errorx.Unknown
	}

	quest := &entity.Quest{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.QuestName,
		Description: req.Description,
		LocationID:  req.LocationID,
		CreatorID:   xcontext.RequestUserID(ctx),
		StartAt:     req.TimeStart,
		EndAt:       req.TimeEnd,
	}

	if req.ActivityHour != nil {
		quest.ActivityCategory = sql.NullString{Valid: true, String: req.ActivityHour.Category}
		quest.ActivityHours = req.ActivityHour.Hour
	}

	if err := d.questRepo.Create(ctx, quest); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create quest: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertQuest(quest, nil)
	return &resp, nil
}

func (d *questDomain) Get(
	ctx context.Context, req *model.GetQuestRequest,
) (*model.GetQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertQuest(quest, participants)
	return &resp, nil
}

func (d *questDomain) GetList(
	ctx context.Context, req *model.GetListQuestRequest,
) (*model.GetListQuestResponse, error) {
	quests, err := d.questRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetListQuestResponse{}
	for _, quest := range quests {
		resp = append(resp, convertQuest(&quest, nil))
	}

	return &resp, nil
}

func (d *questDomain) Update(
	ctx context.Context, req *model.UpdateQuestRequest,
) (*model.UpdateQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	update := &entity.Quest{
		Name:        req.QuestName,
		Description: req.Description,
		StartAt:     req.TimeStart,
		EndAt:       req.TimeEnd,
	}

	if req.ActivityHour != nil {
		update.ActivityCategory = sql.NullString{Valid: true, String: req.ActivityHour.Category}
		update.ActivityHours = req.ActivityHour.Hour
	}

	if err := d.questRepo.UpdateByID(ctx, quest.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update quest: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertQuest(updated, participants)
	return &resp, nil
}

func (d *questDomain) Delete(
	ctx context.Context, req *model.DeleteQuestRequest,
) (*model.DeleteQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if err := d.questRepo.DeleteByID(ctx, quest.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete quest: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.redisClient.ZRem(ctx, common.RedisKeyTrendingQuests, quest.ID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot remove quest from trending: %v", err)
	}

	return &model.DeleteQuestResponse{
		Message: fmt.Sprintf("quest: %s delete successfully", quest.Name),
	}, nil
}

func (d *questDomain) GetCreatorQuests(
	ctx context.Context, req *model.GetCreatorQuestsRequest,
) (*model.GetCreatorQuestsResponse, error) {
	quests, err := d.creatorQuests(ctx, false)
	if err != nil {
		return nil, err
	}

	resp := model.GetCreatorQuestsResponse{}
	for _, quest := range quests {
		resp = append(resp, convertQuest(&quest, nil))
	}

	return &resp, nil
}

func (d *questDomain) GetCreatorUncompletedQuests(
	ctx context.Context, req *model.GetCreatorUncompletedQuestsRequest,
) (*model.GetCreatorUncompletedQuestsResponse, error) {
	quests, err := d.creatorQuests(ctx, true)
	if err != nil {
		return nil, err
	}

	resp := model.GetCreatorUncompletedQuestsResponse{}
	for _, quest := range quests {
		resp = append(resp, convertQuest(&quest, nil))
	}

	return &resp, nil
}

// creatorQuests lists quests managed by the requesting admin. Admins see every
// quest, creators see the quests of every creator in their organization.
func (d *questDomain) creatorQuests(
	ctx context.Context, onlyUncompleted bool,
) ([]entity.Quest, error) {
	actor, err := d.adminRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get admin: %v", err)
		return nil, errorx.Unknown
	}

	if actor.Role == entity.AdminRoleAdmin && !onlyUncompleted {
		quests, err := d.questRepo.GetList(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
			return nil, errorx.Unknown
		}

		return quests, nil
	}

	var creatorIDs []string
	if actor.Role == entity.AdminRoleAdmin {
		admins, err := d.adminRepo.GetList(ctx)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get admins: %v", err)
			return nil, errorx.Unknown
		}

		for _, admin := range admins {
			creatorIDs = append(creatorIDs, admin.ID)
		}
	} else {
		admins, err := d.adminRepo.GetByOrganizeName(ctx, actor.OrganizeName)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get admins of organization: %v", err)
			return nil, errorx.Unknown
		}

		for _, admin := range admins {
			creatorIDs = append(creatorIDs, admin.ID)
		}
	}

	quests, err := d.questRepo.GetByCreatorIDs(ctx, creatorIDs, onlyUncompleted)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests by creators: %v", err)
		return nil, errorx.Unknown
	}

	return quests, nil
}

// JoinOrLeave toggles the requesting user's membership. Present means leave,
// absent means join with the check-in flag cleared.
func (d *questDomain) JoinOrLeave(
	ctx context.Context, req *model.JoinOrLeaveQuestRequest,
) (*model.JoinOrLeaveQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	userID := xcontext.RequestUserID(ctx)
	_, err = d.questParticipantRepo.Get(ctx, quest.ID, userID)
	switch {
	case err == nil:
		if err := d.questParticipantRepo.Delete(ctx, quest.ID, userID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot leave quest: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.redisClient.ZIncrBy(ctx, common.RedisKeyTrendingQuests, -1, quest.ID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decrease quest trending score: %v", err)
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		err := d.questParticipantRepo.Create(ctx, &entity.QuestParticipant{
			QuestID: quest.ID,
			UserID:  userID,
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot join quest: %v", err)
			return nil, errorx.Unknown
		}

		if err := d.redisClient.ZIncrBy(ctx, common.RedisKeyTrendingQuests, 1, quest.ID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot increase quest trending score: %v", err)
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get participant: %v", err)
		return nil, errorx.Unknown
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertQuest(quest, participants)
	return &resp, nil
}

func (d *questDomain) GetParticipants(
	ctx context.Context, req *model.GetParticipantsRequest,
) (*model.GetParticipantsResponse, error) {
	if _, err := d.getQuest(ctx, req.ID); err != nil {
		return nil, err
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, req.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetParticipantsResponse{Participant: []model.Participant{}}
	for _, p := range participants {
		resp.Participant = append(resp.Participant, convertParticipant(&p))
	}

	return resp, nil
}

func (d *questDomain) CheckUsers(
	ctx context.Context, req *model.CheckUsersRequest,
) (*model.CheckUsersResponse, error) {
	if err := d.setCheckedIn(ctx, req.ID, req.Users, true); err != nil {
		return nil, err
	}

	return &model.CheckUsersResponse{Message: "check in successfully"}, nil
}

func (d *questDomain) UncheckUsers(
	ctx context.Context, req *model.UncheckUsersRequest,
) (*model.UncheckUsersResponse, error) {
	if err := d.setCheckedIn(ctx, req.ID, req.Users, false); err != nil {
		return nil, err
	}

	return &model.UncheckUsersResponse{Message: "check out successfully"}, nil
}

func (d *questDomain) setCheckedIn(
	ctx context.Context, questID string, userIDs []string, checkedIn bool,
) error {
	quest, err := d.getQuest(ctx, questID)
	if err != nil {
		return err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if len(userIDs) == 0 {
		return nil
	}

	err = d.questParticipantRepo.SetCheckedInByUserIDs(ctx, quest.ID, userIDs, checkedIn)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update check-in statuses: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (d *questDomain) RemoveUsers(
	ctx context.Context, req *model.RemoveUsersRequest,
) (*model.RemoveUsersResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if len(req.Users) > 0 {
		if err := d.questParticipantRepo.DeleteByUserIDs(ctx, quest.ID, req.Users); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot remove participants: %v", err)
			return nil, errorx.Unknown
		}
	}

	return &model.RemoveUsersResponse{Message: "remove users successfully"}, nil
}

func (d *questDomain) Find(
	ctx context.Context, req *model.FindQuestRequest,
) (*model.FindQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	return &model.FindQuestResponse{
		Quest:            convertQuest(quest, participants),
		CountParticipant: len(participants),
	}, nil
}

// Complete closes the quest and credits activity hours to every participant.
// The status flip is a conditional update, so only the first of two concurrent
// calls proceeds to the crediting fan-out. The fan-out itself runs in a single
// transaction together with the flip: either every participant is credited or
// the quest stays open.
func (d *questDomain) Complete(
	ctx context.Context, req *model.CompleteQuestRequest,
) (*model.CompleteQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	txCtx := xcontext.BeginTx(ctx)
	defer xcontext.RollbackTx(txCtx)

	if err := d.questRepo.SetCompleted(txCtx, quest.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "Quest is already completed")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete quest: %v", err)
		return nil, errorx.Unknown
	}

	if quest.ActivityCategory.Valid {
		bucket := entity.BucketForCategory(quest.ActivityCategory.String)
		for _, p := range participants {
			err := d.transcriptRepo.Credit(txCtx, p.UserID, bucket, quest.ActivityHours)
			if err != nil {
				xcontext.Logger(ctx).Errorf("Cannot credit transcript: %v", err)
				return nil, errorx.Unknown
			}
		}

		common.PromCounters[common.QuestCompletionTotal].
			WithLabelValues(string(bucket)).Inc()
	}

	if err := xcontext.CommitTx(txCtx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit completion: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteQuestResponse{
		Message: fmt.Sprintf("quest: %s complete successfully", quest.Name),
	}, nil
}

// Cancel notifies every current participant that the quest was called off. A
// single notification record is shared by all recipients. The quest keeps its
// status and participants.
func (d *questDomain) Cancel(
	ctx context.Context, req *model.CancelQuestRequest,
) (*model.CancelQuestResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	participants, err := d.questParticipantRepo.GetListByQuestID(ctx, quest.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get participants: %v", err)
		return nil, errorx.Unknown
	}

	notification := &entity.Notification{
		Base:    entity.Base{ID: uuid.NewString()},
		QuestID: quest.ID,
		Message: req.Message,
	}

	recipients := make([]entity.NotificationRecipient, 0, len(participants))
	for _, p := range participants {
		recipients = append(recipients, entity.NotificationRecipient{
			NotificationID: notification.ID,
			UserID:         p.UserID,
		})
	}

	txCtx := xcontext.BeginTx(ctx)
	defer xcontext.RollbackTx(txCtx)

	if err := d.notificationRepo.Create(txCtx, notification); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.notificationRepo.CreateRecipients(txCtx, recipients); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create notification recipients: %v", err)
		return nil, errorx.Unknown
	}

	if err := xcontext.CommitTx(txCtx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit cancellation: %v", err)
		return nil, errorx.Unknown
	}

	d.publishCancellation(ctx, notification)

	return &model.CancelQuestResponse{
		ID:      notification.ID,
		Message: notification.Message,
	}, nil
}

func (d *questDomain) publishCancellation(ctx context.Context, notification *entity.Notification) {
	if d.publisher == nil {
		return
	}

	msg, err := json.Marshal(convertNotification(notification))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal notification event: %v", err)
		return
	}

	topic := xcontext.Configs(ctx).Kafka.NotificationTopic
	err = d.publisher.Publish(ctx, topic, &pubsub.Pack{
		Key: []byte(notification.QuestID),
		Msg: msg,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish notification event: %v", err)
	}
}

// ChangeImage replaces the quest picture with the uploaded file. The stored
// path points at the largest resized variant.
func (d *questDomain) ChangeImage(
	ctx context.Context, req *model.ChangeQuestImageRequest,
) (*model.ChangeQuestImageResponse, error) {
	quest, err := d.getQuest(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := d.roleVerifier.Verify(ctx, quest); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	uploaded, err := common.ProcessImage(ctx, d.fileStorage, "image", "quests")
	if err != nil {
		return nil, err
	}

	update := &entity.Quest{ImagePath: uploaded[0].Url}
	if err := d.questRepo.UpdateByID(ctx, quest.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update quest image: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ChangeQuestImageResponse{ImagePath: uploaded[0].Url}, nil
}

// Recommend returns the most joined open quests, ranked by the trending
// sorted set.
func (d *questDomain) Recommend(
	ctx context.Context, req *model.RecommendQuestsRequest,
) (*model.RecommendQuestsResponse, error) {
	limit := xcontext.Configs(ctx).Quest.RecommendLimit
	ranked, err := d.redisClient.ZRevRangeWithScores(ctx, common.RedisKeyTrendingQuests, 0, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get trending quests: %v", err)
		return nil, errorx.Unknown
	}

	ids := make([]string, 0, len(ranked))
	for _, z := range ranked {
		if id, ok := z.Member.(string); ok {
			ids = append(ids, id)
		}
	}

	resp := model.RecommendQuestsResponse{}
	if len(ids) == 0 {
		return &resp, nil
	}

	quests, err := d.questRepo.GetByIDs(ctx, ids)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return nil, errorx.Unknown
	}

	byID := map[string]entity.Quest{}
	for _, quest := range quests {
		byID[quest.ID] = quest
	}

	for _, id := range ids {
		quest, ok := byID[id]
		if !ok || quest.Completed {
			continue
		}

		resp = append(resp, convertQuest(&quest, nil))
	}

	return &resp, nil
}

func (d *questDomain) getQuest(ctx context.Context, id string) (*entity.Quest, error) {
	if id == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty quest id")
	}

	quest, err := d.questRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Quest not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get quest: %v", err)
		return nil, errorx.Unknown
	}

	return quest, nil
}
