package testutil

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/config"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
	"github.com/biskitsx/ZideQuest-Backend/migration"
	"github.com/biskitsx/ZideQuest-Backend/pkg/authenticator"
	"github.com/biskitsx/ZideQuest-Backend/pkg/logger"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

func MockContext(t interface{ Fatalf(string, ...any) }) context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("cannot open sqlite: %v", err)
	}

	cfg := config.Configs{
		Env: "testing",
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
		},
		File:  config.FileConfigs{MaxSize: 2 << 20},
		Quest: config.QuestConfigs{RecommendLimit: 5},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.DEBUG))
	ctx = xcontext.WithTokenEngine(ctx,
		authenticator.NewTokenEngine[model.AccessToken](cfg.Auth))
	ctx = xcontext.WithDB(ctx, db)

	if err := migration.AutoMigrate(ctx); err != nil {
		t.Fatalf("cannot migrate tables: %v", err)
	}

	return ctx
}

func MockContextWithUserID(
	t interface{ Fatalf(string, ...any) }, userID, role string,
) context.Context {
	ctx := MockContext(t)
	ctx = xcontext.WithRequestUserID(ctx, userID)
	ctx = xcontext.WithRequestRole(ctx, role)
	return ctx
}

func WithUserID(ctx context.Context, userID, role string) context.Context {
	ctx = xcontext.WithRequestUserID(ctx, userID)
	return xcontext.WithRequestRole(ctx, role)
}
