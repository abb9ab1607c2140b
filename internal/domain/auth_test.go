package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/crypto"
	"github.com/biskitsx/ZideQuest-Backend/pkg/errorx"
	"github.com/biskitsx/ZideQuest-Backend/pkg/testutil"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

func Test_authDomain_Login(t *testing.T) {
	ctx := testutil.MockContext(t)

	hashed, err := crypto.HashPassword("correct-password")
	require.NoError(t, err)

	userRepo := repository.NewUserRepository()
	require.NoError(t, userRepo.Create(ctx, &entity.User{
		Base:           entity.Base{ID: "user1"},
		Username:       "student",
		HashedPassword: hashed,
	}))

	adminRepo := repository.NewAdminRepository()
	require.NoError(t, adminRepo.Create(ctx, &entity.Admin{
		Base:           entity.Base{ID: "admin1"},
		Username:       "staff",
		HashedPassword: hashed,
		OrganizeName:   "volunteer-center",
		Role:           entity.AdminRoleCreator,
	}))

	d := NewAuthDomain(userRepo, adminRepo)

	t.Run("user login", func(t *testing.T) {
		resp, err := d.Login(ctx, &model.LoginRequest{
			Username: "student",
			Password: "correct-password",
		})
		require.NoError(t, err)
		require.NotNil(t, resp.User)
		require.Nil(t, resp.Admin)

		token, err := xcontext.TokenEngine(ctx).Verify(resp.Token)
		require.NoError(t, err)
		require.Equal(t, "user1", token.ID)
		require.Equal(t, entity.RoleUser, token.Role)
	})

	t.Run("admin login carries the admin role", func(t *testing.T) {
		resp, err := d.Login(ctx, &model.LoginRequest{
			Username: "staff",
			Password: "correct-password",
		})
		require.NoError(t, err)
		require.Nil(t, resp.User)
		require.NotNil(t, resp.Admin)

		token, err := xcontext.TokenEngine(ctx).Verify(resp.Token)
		require.NoError(t, err)
		require.Equal(t, "admin1", token.ID)
		require.Equal(t, entity.RoleCreator, token.Role)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := d.Login(ctx, &model.LoginRequest{
			Username: "nobody",
			Password: "correct-password",
		})
		require.Equal(t, errorx.New(errorx.NotFound, "Username not found"), err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := d.Login(ctx, &model.LoginRequest{
			Username: "student",
			Password: "wrong-password",
		})
		require.Equal(t, errorx.New(errorx.Unauthenticated, "Invalid username or password"), err)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := d.Login(ctx, &model.LoginRequest{Username: "student"})
		require.Equal(t, errorx.New(errorx.BadRequest, "Not allow empty username or password"), err)
	})
}
