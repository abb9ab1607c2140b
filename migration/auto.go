package migration

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

// AutoMigrate creates or updates every table. When this migrator is called,
// no need to call other migrators.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Admin{},
		&entity.Location{},
		&entity.Tag{},
		&entity.Quest{},
		&entity.QuestParticipant{},
		&entity.Transcript{},
		&entity.Notification{},
		&entity.NotificationRecipient{},
	)
}
