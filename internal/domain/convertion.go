package domain

import (
	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
)

func convertUser(user *entity.User) model.User {
	return model.User{
		ID:          user.ID,
		Username:    user.Username,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		StudentCode: user.StudentCode,
	}
}

func convertAdmin(admin *entity.Admin) model.Admin {
	return model.Admin{
		ID:           admin.ID,
		Username:     admin.Username,
		OrganizeName: admin.OrganizeName,
		Role:         string(admin.Role),
	}
}

func convertQuest(quest *entity.Quest, participants []entity.QuestParticipant) model.Quest {
	resp := model.Quest{
		ID:          quest.ID,
		QuestName:   quest.Name,
		Description: quest.Description,
		ImagePath:   quest.ImagePath,
		LocationID:  quest.LocationID,
		CreatorID:   quest.CreatorID,
		TimeStart:   quest.StartAt,
		TimeEnd:     quest.EndAt,
		QuestStatus: quest.Completed,
		Participant: []model.Participant{},
	}

	if quest.ActivityCategory.Valid {
		resp.ActivityHour = &model.ActivityHour{
			Category: quest.ActivityCategory.String,
			Hour:     quest.ActivityHours,
		}
	}

	for _, p := range participants {
		resp.Participant = append(resp.Participant, convertParticipant(&p))
	}

	return resp
}

func convertParticipant(participant *entity.QuestParticipant) model.Participant {
	return model.Participant{
		UserID:    participant.UserID,
		FirstName: participant.User.FirstName,
		LastName:  participant.User.LastName,
		Status:    participant.CheckedIn,
	}
}

func convertLocation(location *entity.Location) model.Location {
	return model.Location{
		ID:          location.ID,
		Name:        location.Name,
		Latitude:    location.Latitude,
		Longitude:   location.Longitude,
		PicturePath: location.PicturePath,
		AdminID:     location.AdminID,
	}
}

func convertTag(tag *entity.Tag) model.Tag {
	return model.Tag{
		ID:   tag.ID,
		Name: tag.Name,
	}
}

func convertNotification(notification *entity.Notification) model.Notification {
	return model.Notification{
		ID:      notification.ID,
		QuestID: notification.QuestID,
		Message: notification.Message,
	}
}

// convertTranscript folds per-bucket rows into the fixed transcript layout.
// Buckets without a row report zero credit.
func convertTranscript(records []entity.Transcript) model.ActivityTranscript {
	credits := map[entity.TranscriptBucket]model.BucketCredit{}
	for _, record := range records {
		credits[record.Bucket] = model.BucketCredit{
			Hour:  record.Hours,
			Count: record.Count,
		}
	}

	empowerment := map[string]model.BucketCredit{}
	for _, bucket := range entity.EmpowermentBuckets {
		empowerment[string(bucket)] = credits[bucket]
	}

	return model.ActivityTranscript{
		University:  credits[entity.BucketUniversity],
		Empowerment: empowerment,
		Society:     credits[entity.BucketSociety],
	}
}
