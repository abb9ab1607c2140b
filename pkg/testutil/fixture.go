package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
)

// Fixture accounts span two organizations so authorization tests can exercise
// the same-organization rule.
var (
	Admin1 = &entity.Admin{
		Base:         entity.Base{ID: "admin1"},
		Username:     "admin1",
		OrganizeName: "volunteer-center",
		Role:         entity.AdminRoleAdmin,
	}

	Creator1 = &entity.Admin{
		Base:         entity.Base{ID: "creator1"},
		Username:     "creator1",
		OrganizeName: "engineering-faculty",
		Role:         entity.AdminRoleCreator,
	}

	Creator2 = &entity.Admin{
		Base:         entity.Base{ID: "creator2"},
		Username:     "creator2",
		OrganizeName: "engineering-faculty",
		Role:         entity.AdminRoleCreator,
	}

	Creator3 = &entity.Admin{
		Base:         entity.Base{ID: "creator3"},
		Username:     "creator3",
		OrganizeName: "science-faculty",
		Role:         entity.AdminRoleCreator,
	}

	User1 = &entity.User{
		Base:      entity.Base{ID: "user1"},
		Username:  "user1",
		FirstName: "First",
		LastName:  "User",
	}

	User2 = &entity.User{
		Base:      entity.Base{ID: "user2"},
		Username:  "user2",
		FirstName: "Second",
		LastName:  "User",
	}

	User3 = &entity.User{
		Base:     entity.Base{ID: "user3"},
		Username: "user3",
	}

	Location1 = &entity.Location{
		Base:      entity.Base{ID: "location1"},
		Name:      "Main Auditorium",
		Latitude:  13.7563,
		Longitude: 100.5018,
		AdminID:   "admin1",
	}

	// Quest1 grants university hours and has user1 and user2 joined.
	Quest1 = &entity.Quest{
		Base:             entity.Base{ID: "quest1"},
		Name:             "Beach Cleanup",
		LocationID:       "location1",
		CreatorID:        "creator1",
		StartAt:          time.Date(2023, 6, 1, 9, 0, 0, 0, time.UTC),
		EndAt:            time.Date(2023, 6, 1, 17, 0, 0, 0, time.UTC),
		ActivityCategory: sql.NullString{Valid: true, String: "1"},
		ActivityHours:    5,
	}

	// Quest2 has no activity hours and no participants.
	Quest2 = &entity.Quest{
		Base:       entity.Base{ID: "quest2"},
		Name:       "Blood Donation",
		LocationID: "location1",
		CreatorID:  "creator1",
	}
)

func CreateFixtureDb(ctx context.Context, t interface{ Fatalf(string, ...any) }) {
	adminRepo := repository.NewAdminRepository()
	for _, admin := range []*entity.Admin{Admin1, Creator1, Creator2, Creator3} {
		if err := adminRepo.Create(ctx, admin); err != nil {
			t.Fatalf("cannot insert admin: %v", err)
		}
	}

	userRepo := repository.NewUserRepository()
	for _, user := range []*entity.User{User1, User2, User3} {
		if err := userRepo.Create(ctx, user); err != nil {
			t.Fatalf("cannot insert user: %v", err)
		}
	}

	if err := repository.NewLocationRepository().Create(ctx, Location1); err != nil {
		t.Fatalf("cannot insert location: %v", err)
	}

	questRepo := repository.NewQuestRepository()
	for _, quest := range []*entity.Quest{Quest1, Quest2} {
		if err := questRepo.Create(ctx, quest); err != nil {
			t.Fatalf("cannot insert quest: %v", err)
		}
	}

	participantRepo := repository.NewQuestParticipantRepository()
	for _, userID := range []string{"user1", "user2"} {
		err := participantRepo.Create(ctx, &entity.QuestParticipant{
			QuestID: "quest1",
			UserID:  userID,
		})
		if err != nil {
			t.Fatalf("cannot insert participant: %v", err)
		}
	}
}
