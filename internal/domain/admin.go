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
	"github.com/biskitsx/ZideQuest-Backend/pkg/enum"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type AdminDomain interface {
	Create(context.Context, *model.CreateAdminRequest) (*model.CreateAdminResponse, error)
	GetList(context.Context, *model.GetListAdminRequest) (*model.GetListAdminResponse, error)
}

type adminDomain struct {
	adminRepo repository.AdminRepository
}

func NewAdminDomain(adminRepo repository.AdminRepository) AdminDomain {
	return &adminDomain{adminRepo: adminRepo}
}

func (d *adminDomain) Create(
	ctx context.Context, req *model.CreateAdminRequest,
) (*model.CreateAdminResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or password")
	}

	role, err := enum.ToEnum[entity.AdminRole](req.Role)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid role %s", req.Role)
	}

	hashed, err := crypto.HashPassword(req.Password)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot hash password: %v", err)
		return nil, errorx.Unknown
	}

	admin := &entity.Admin{
		Base:           entity.Base{ID: uuid.NewString()},
		Username:       req.Username,
		HashedPassword: hashed,
		OrganizeName:   req.OrganizeName,
		Role:           role,
	}

	if err := d.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.AlreadyExists, "Username already taken")
		}

		xcontext.Logger(ctx).Errorf("Cannot create admin: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertAdmin(admin)
	return &resp, nil
}

func (d *adminDomain) GetList(
	ctx context.Context, req *model.GetListAdminRequest,
) (*model.GetListAdminResponse, error) {
	admins, err := d.adminRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get admins: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetListAdminResponse{}
	for _, admin := range admins {
		resp = append(resp, convertAdmin(&admin))
	}

	return &resp, nil
}
