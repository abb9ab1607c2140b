package repository

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	GetList(ctx context.Context) ([]entity.Location, error)
	UpdateByID(ctx context.Context, id string, location *entity.Location) error
	DeleteByID(ctx context.Context, id string) error
}

type locationRepository struct{}

func NewLocationRepository() *locationRepository {
	return &locationRepository{}
}

func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	return xcontext.DB(ctx).Create(location).Error
}

func (r *locationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	result := entity.Location{}
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *locationRepository) GetList(ctx context.Context) ([]entity.Location, error) {
	var result []entity.Location
	if err := xcontext.DB(ctx).Order("created_at ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *locationRepository) UpdateByID(
	ctx context.Context, id string, location *entity.Location,
) error {
	return xcontext.DB(ctx).
		Model(&entity.Location{}).
		Where("id=?", id).
		Updates(location).Error
}

func (r *locationRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Location{}, "id=?", id).Error
}
