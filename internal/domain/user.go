package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/crypto"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type UserDomain interface {
	Create(context.Context, *model.CreateUserRequest) (*model.CreateUserResponse, error)
	GetList(context.Context, *model.GetListUserRequest) (*model.GetListUserResponse, error)
	GetInfo(context.Context, *model.GetUserInfoRequest) (*model.GetUserInfoResponse, error)
}

type userDomain struct {
	userRepo             repository.UserRepository
	questRepo            repository.QuestRepository
	questParticipantRepo repository.QuestParticipantRepository
	notificationRepo     repository.NotificationRepository
	transcriptRepo       repository.TranscriptRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	questRepo repository.QuestRepository,
	questParticipantRepo repository.QuestParticipantRepository,
	notificationRepo repository.NotificationRepository,
	transcriptRepo repository.TranscriptRepository,
) UserDomain {
	return &userDomain{
		userRepo:             userRepo,
		questRepo:            questRepo,
		questParticipantRepo: questParticipantRepo,
		notificationRepo:     notificationRepo,
		transcriptRepo:       transcriptRepo,
	}
}

func (d *userDomain) Create(
	ctx context.Context, req *model.CreateUserRequest,
) (*model.CreateUserResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or password")
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	user := &entity.User{
		Base:           entity.Base{ID: uuid.NewString()},
		Username:       req.Username,
		HashedPassword: hashed,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		StudentCode:    req.StudentCode,
	}

	if err := d.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Username already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertUser(user)
	return &resp, nil
}

func (d *userDomain) GetList(
	ctx context.Context, req *model.GetListUserRequest,
) (*model.GetListUserResponse, error) {
	users, err := d.userRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetListUserResponse{}
	for _, user := range users {
		resp = append(resp, convertUser(&user))
	}

	return &resp, nil
}

// GetInfo bundles everything the profile page shows: the account, the quests
// the user joined, the notifications sent to them, and the accumulated
// activity transcript.
func (d *userDomain) GetInfo(
	ctx context.Context, req *model.GetUserInfoRequest,
) (*model.GetUserInfoResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	participants, err := d.questParticipantRepo.GetListByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get joined quests: %v", err)
		return nil, errorx.Unknown
	}

	questIDs := make([]string, 0, len(participants))
	for _, p := range participants {
		questIDs = append(questIDs, p.QuestID)
	}

	joined := []model.Quest{}
	if len(questIDs) > 0 {
		quests, err := d.questRepo.GetByIDs(ctx, questIDs)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
			return nil, errorx.Unknown
		}

		for _, quest := range quests {
			joined = append(joined, convertQuest(&quest, nil))
		}
	}

	notifications, err := d.notificationRepo.GetListByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get notifications: %v", err)
		return nil, errorx.Unknown
	}

	notificationResp := []model.Notification{}
	for _, notification := range notifications {
		notificationResp = append(notificationResp, convertNotification(&notification))
	}

	transcripts, err := d.transcriptRepo.GetByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get transcripts: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetUserInfoResponse{
		User:               convertUser(user),
		JoinedQuest:        joined,
		Notifications:      notificationResp,
		ActivityTranscript: convertTranscript(transcripts),
	}, nil
}
