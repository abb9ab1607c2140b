package repository

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	GetList(ctx context.Context) ([]entity.Tag, error)
}

type tagRepository struct{}

func NewTagRepository() *tagRepository {
	return &tagRepository{}
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return xcontext.DB(ctx).Create(tag).Error
}

func (r *tagRepository) GetList(ctx context.Context) ([]entity.Tag, error) {
	var result []entity.Tag
	if err := xcontext.DB(ctx).Order("name ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}
