package repository

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type AdminRepository interface {
	Create(ctx context.Context, data *entity.Admin) error
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entity.Admin, error)
	GetByOrganizeName(ctx context.Context, organizeName string) ([]entity.Admin, error)
	GetList(ctx context.Context) ([]entity.Admin, error)
}

type adminRepository struct{}

func NewAdminRepository() *adminRepository {
	return &adminRepository{}
}

func (r *adminRepository) Create(ctx context.Context, data *entity.Admin) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	var record entity.Admin
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*entity.Admin, error) {
	var record entity.Admin
	if err := xcontext.DB(ctx).Take(&record, "username=?", username).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *adminRepository) GetByOrganizeName(ctx context.Context, organizeName string) ([]entity.Admin, error) {
	var records []entity.Admin
	if err := xcontext.DB(ctx).Find(&records, "organize_name=?", organizeName).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *adminRepository) GetList(ctx context.Context) ([]entity.Admin, error) {
	var records []entity.Admin
	if err := xcontext.DB(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
