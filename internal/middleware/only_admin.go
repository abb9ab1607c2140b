package middleware

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/common"
	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/router"
)

type OnlyAdmin struct {
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewOnlyAdmin(adminRepo repository.AdminRepository) *OnlyAdmin {
	return &OnlyAdmin{
		globalRoleVerifier: common.NewGlobalRoleVerifier(adminRepo),
	}
}

func (a *OnlyAdmin) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		if err := a.globalRoleVerifier.Verify(ctx, entity.RoleAdmin); err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}

type OnlyCreator struct {
	globalRoleVerifier *common.GlobalRoleVerifier
}

func NewOnlyCreator(adminRepo repository.AdminRepository) *OnlyCreator {
	return &OnlyCreator{
		globalRoleVerifier: common.NewGlobalRoleVerifier(adminRepo),
	}
}

// Middleware lets both creators and admins through. Admin outranks creator
// everywhere a creator is allowed.
func (a *OnlyCreator) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		err := a.globalRoleVerifier.Verify(ctx, entity.RoleCreator, entity.RoleAdmin)
		if err != nil {
			return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
		}

		return nil, nil
	}
}
