package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type QuestRepository interface {
	Create(ctx context.Context, data *entity.Quest) error
	GetByID(ctx context.Context, id string) (*entity.Quest, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error)
	GetList(ctx context.Context) ([]entity.Quest, error)
	GetByCreatorIDs(ctx context.Context, creatorIDs []string, onlyUncompleted bool) ([]entity.Quest, error)
	UpdateByID(ctx context.Context, id string, data *entity.Quest) error
	DeleteByID(ctx context.Context, id string) error
	SetCompleted(ctx context.Context, id string) error
}

type questRepository struct{}

func NewQuestRepository() *questRepository {
	return &questRepository{}
}

func (r *questRepository) Create(ctx context.Context, data *entity.Quest) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questRepository) GetByID(ctx context.Context, id string) (*entity.Quest, error) {
	var record entity.Quest
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *questRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Quest, error) {
	var records []entity.Quest
	if err := xcontext.DB(ctx).Find(&records, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questRepository) GetList(ctx context.Context) ([]entity.Quest, error) {
	var records []entity.Quest
	if err := xcontext.DB(ctx).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questRepository) GetByCreatorIDs(
	ctx context.Context, creatorIDs []string, onlyUncompleted bool,
) ([]entity.Quest, error) {
	tx := xcontext.DB(ctx).Where("creator_id IN (?)", creatorIDs)
	if onlyUncompleted {
		tx = tx.Where("completed=?", false)
	}

	var records []entity.Quest
	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questRepository) UpdateByID(ctx context.Context, id string, data *entity.Quest) error {
	updateMap := map[string]any{}
	if data.Name != "" {
		updateMap["name"] = data.Name
	}

	if data.Description != "" {
		updateMap["description"] = data.Description
	}

	if data.ImagePath != "" {
		updateMap["image_path"] = data.ImagePath
	}

	if !data.StartAt.IsZero() {
		updateMap["start_at"] = data.StartAt
	}

	if !data.EndAt.IsZero() {
		updateMap["end_at"] = data.EndAt
	}

	if data.ActivityCategory.Valid {
		updateMap["activity_category"] = data.ActivityCategory
		updateMap["activity_hours"] = data.ActivityHours
	}

	if len(updateMap) == 0 {
		return nil
	}

	return xcontext.DB(ctx).Model(&entity.Quest{}).Where("id=?", id).Updates(updateMap).Error
}

func (r *questRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Quest{}, "id=?", id).Error
}

// SetCompleted flips the quest to completed with a conditional update, so only
// one of two concurrent callers observes a successful transition. Returns
// gorm.ErrRecordNotFound when the quest is absent or already completed.
func (r *questRepository) SetCompleted(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).
		Model(&entity.Quest{}).
		Where("id=? AND completed=?", id, false).
		Update("completed", true)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
