package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type TagDomain interface {
	Create(context.Context, *model.CreateTagRequest) (*model.CreateTagResponse, error)
	GetList(context.Context, *model.GetListTagRequest) (*model.GetListTagResponse, error)
}

type tagDomain struct {
	tagRepo repository.TagRepository
}

func NewTagDomain(tagRepo repository.TagRepository) TagDomain {
	return &tagDomain{tagRepo: tagRepo}
}

func (d *tagDomain) Create(
	ctx context.Context, req *model.CreateTagRequest,
) (*model.CreateTagResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty tag name")
	}

	tag := &entity.Tag{
		Base: entity.Base{ID: uuid.NewString()},
		Name: req.Name,
	}

	if err := d.tagRepo.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Tag already exists")
		}

		xcontext.Logger(ctx).Errorf("Cannot create tag: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertTag(tag)
	return &resp, nil
}

func (d *tagDomain) GetList(
	ctx context.Context, req *model.GetListTagRequest,
) (*model.GetListTagResponse, error) {
	tags, err := d.tagRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tags: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetListTagResponse{}
	for _, tag := range tags {
		resp = append(resp, convertTag(&tag))
	}

	return &resp, nil
}
