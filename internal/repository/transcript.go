package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type TranscriptRepository interface {
	Credit(ctx context.Context, userID string, bucket entity.TranscriptBucket, hours float64) error
	GetByUserID(ctx context.Context, userID string) ([]entity.Transcript, error)
}

type transcriptRepository struct{}

func NewTranscriptRepository() *transcriptRepository {
	return &transcriptRepository{}
}

// Credit adds hours to the user's bucket and bumps its count by one. The
// upsert keeps the increment atomic, so counters only ever go up.
func (r *transcriptRepository) Credit(
	ctx context.Context, userID string, bucket entity.TranscriptBucket, hours float64,
) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "bucket"}},
			DoUpdates: clause.Assignments(map[string]any{
				"hours": gorm.Expr("hours + ?", hours),
				"count": gorm.Expr("count + 1"),
			}),
		}).
		Create(&entity.Transcript{
			UserID: userID,
			Bucket: bucket,
			Hours:  hours,
			Count:  1,
		}).Error
}

func (r *transcriptRepository) GetByUserID(
	ctx context.Context, userID string,
) ([]entity.Transcript, error) {
	var records []entity.Transcript
	if err := xcontext.DB(ctx).Find(&records, "user_id=?", userID).Error; err != nil {
		return nil, err
	}

	return records, nil
}
