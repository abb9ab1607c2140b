package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/crypto"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type AuthDomain interface {
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
}

type authDomain struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	adminRepo repository.AdminRepository,
) AuthDomain {
	return &authDomain{userRepo: userRepo, adminRepo: adminRepo}
}

// Login resolves the username against admin accounts first, then user
// accounts, so one endpoint serves both kinds of principal.
func (d *authDomain) Login(
	ctx context.Context, req *model.LoginRequest,
) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty username or password")
	}

	admin, err := d.adminRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		return d.loginAdmin(ctx, admin, req.Password)
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get admin: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Username not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if !crypto.ComparePassword(user.HashedPassword, req.Password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		user.ID, model.AccessToken{ID: user.ID, Role: entity.RoleUser})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertUser(user)
	return &model.LoginResponse{Token: token, User: &resp}, nil
}

func (d *authDomain) loginAdmin(
	ctx context.Context, admin *entity.Admin, password string,
) (*model.LoginResponse, error) {
	if !crypto.ComparePassword(admin.HashedPassword, password) {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		admin.ID, model.AccessToken{ID: admin.ID, Role: string(admin.Role)})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	resp := convertAdmin(admin)
	return &model.LoginResponse{Token: token, Admin: &resp}, nil
}
