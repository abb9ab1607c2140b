package repository

import (
	"context"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type QuestParticipantRepository interface {
	Get(ctx context.Context, questID, userID string) (*entity.QuestParticipant, error)
	GetListByQuestID(ctx context.Context, questID string) ([]entity.QuestParticipant, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.QuestParticipant, error)
	Create(ctx context.Context, data *entity.QuestParticipant) error
	Delete(ctx context.Context, questID, userID string) error
	DeleteByUserIDs(ctx context.Context, questID string, userIDs []string) error
	SetCheckedInByUserIDs(ctx context.Context, questID string, userIDs []string, checkedIn bool) error
	Count(ctx context.Context, questID string) (int64, error)
}

type questParticipantRepository struct{}

func NewQuestParticipantRepository() *questParticipantRepository {
	return &questParticipantRepository{}
}

func (r *questParticipantRepository) Get(
	ctx context.Context, questID, userID string,
) (*entity.QuestParticipant, error) {
	var record entity.QuestParticipant
	err := xcontext.DB(ctx).Take(&record, "quest_id=? AND user_id=?", questID, userID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *questParticipantRepository) GetListByQuestID(
	ctx context.Context, questID string,
) ([]entity.QuestParticipant, error) {
	var records []entity.QuestParticipant
	err := xcontext.DB(ctx).
		Preload("User").
		Order("created_at ASC").
		Find(&records, "quest_id=?", questID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questParticipantRepository) GetListByUserID(
	ctx context.Context, userID string,
) ([]entity.QuestParticipant, error) {
	var records []entity.QuestParticipant
	err := xcontext.DB(ctx).Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *questParticipantRepository) Create(ctx context.Context, data *entity.QuestParticipant) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *questParticipantRepository) Delete(ctx context.Context, questID, userID string) error {
	return xcontext.DB(ctx).
		Delete(&entity.QuestParticipant{}, "quest_id=? AND user_id=?", questID, userID).Error
}

// DeleteByUserIDs removes the listed users from the quest. Ids that are not
// joined match no row, which is not an error.
func (r *questParticipantRepository) DeleteByUserIDs(
	ctx context.Context, questID string, userIDs []string,
) error {
	return xcontext.DB(ctx).
		Delete(&entity.QuestParticipant{}, "quest_id=? AND user_id IN (?)", questID, userIDs).Error
}

// SetCheckedInByUserIDs flips the check-in flag of the listed users in one
// conditional update. Ids that are not joined are silently ignored.
func (r *questParticipantRepository) SetCheckedInByUserIDs(
	ctx context.Context, questID string, userIDs []string, checkedIn bool,
) error {
	return xcontext.DB(ctx).
		Model(&entity.QuestParticipant{}).
		Where("quest_id=? AND user_id IN (?)", questID, userIDs).
		Update("checked_in", checkedIn).Error
}

func (r *questParticipantRepository) Count(ctx context.Context, questID string) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).
		Model(&entity.QuestParticipant{}).
		Where("quest_id=?", questID).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
