package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type LocationDomain interface {
	Create(context.Context, *model.CreateLocationRequest) (*model.CreateLocationResponse, error)
	Get(context.Context, *model.GetLocationRequest) (*model.GetLocationResponse, error)
	GetList(context.Context, *model.GetListLocationRequest) (*model.GetListLocationResponse, error)
	Update(context.Context, *model.UpdateLocationRequest) (*model.UpdateLocationResponse, error)
	Delete(context.Context, *model.DeleteLocationRequest) (*model.DeleteLocationResponse, error)
}

type locationDomain struct {
	locationRepo         repository.LocationRepository
	questRepo            repository.QuestRepository
	questParticipantRepo repository.QuestParticipantRepository
}

func NewLocationDomain(
	locationRepo repository.LocationRepository,
	questRepo repository.QuestRepository,
	questParticipantRepo repository.QuestParticipantRepository,
) LocationDomain {
	return &locationDomain{
		locationRepo:         locationRepo,
		questRepo:            questRepo,
		questParticipantRepo: questParticipantRepo,
	}
}

func (d *locationDomain) Create(
	ctx context.Context, req *model.CreateLocationRequest,
) (*model.CreateLocationResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty location name")
	}

	location := &entity.Location{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PicturePath: req.PicturePath,
		AdminID:     xcontext.RequestUserID(ctx),
	}

	if err := d.locationRepo.Create(ctx, location); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create location: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertLocation(location)
	return &resp, nil
}

// Get reports the location and, for an authenticated user, whether they have
// joined or checked in at any quest held there.
func (d *locationDomain) Get(
	ctx context.Context, req *model.GetLocationRequest,
) (*model.GetLocationResponse, error) {
	location, err := d.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Location not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get location: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertLocation(location)

	userID := xcontext.RequestUserID(ctx)
	if userID != "" {
		isJoin, isCheckIn, err := d.participation(ctx, location.ID, userID)
		if err != nil {
			return nil, err
		}

		resp.IsJoin = &isJoin
		resp.IsCheckIn = &isCheckIn
	}

	return &resp, nil
}

func (d *locationDomain) participation(
	ctx context.Context, locationID, userID string,
) (isJoin, isCheckIn bool, err error) {
	participants, err := d.questParticipantRepo.GetListByUserID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get joined quests: %v", err)
		return false, false, errorx.Unknown
	}

	if len(participants) == 0 {
		return false, false, nil
	}

	questIDs := make([]string, 0, len(participants))
	checkedIn := map[string]bool{}
	for _, p := range participants {
		questIDs = append(questIDs, p.QuestID)
		checkedIn[p.QuestID] = p.CheckedIn
	}

	quests, err := d.questRepo.GetByIDs(ctx, questIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quests: %v", err)
		return false, false, errorx.Unknown
	}

	for _, quest := range quests {
		if quest.LocationID != locationID {
			continue
		}

		isJoin = true
		if checkedIn[quest.ID] {
			isCheckIn = true
		}
	}

	return isJoin, isCheckIn, nil
}

func (d *locationDomain) GetList(
	ctx context.Context, req *model.GetListLocationRequest,
) (*model.GetListLocationResponse, error) {
	locations, err := d.locationRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get locations: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetListLocationResponse{}
	for _, location := range locations {
		resp = append(resp, convertLocation(&location))
	}

	return &resp, nil
}

func (d *locationDomain) Update(
	ctx context.Context, req *model.UpdateLocationRequest,
) (*model.UpdateLocationResponse, error) {
	location, err := d.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Location not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get location: %v", err)
		return nil, errorx.Unknown
	}

	update := &entity.Location{
		Name:        req.Name,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		PicturePath: req.PicturePath,
	}

	if err := d.locationRepo.UpdateByID(ctx, location.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update location: %v", err)
		return nil, errorx.Unknown
	}

	updated, err := d.locationRepo.GetByID(ctx, location.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get location: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertLocation(updated)
	return &resp, nil
}

func (d *locationDomain) Delete(
	ctx context.Context, req *model.DeleteLocationRequest,
) (*model.DeleteLocationResponse, error) {
	location, err := d.locationRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Location not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get location: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.locationRepo.DeleteByID(ctx, location.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete location: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteLocationResponse{
		Message: fmt.Sprintf("location: %s delete successfully", location.Name),
	}, nil
}
