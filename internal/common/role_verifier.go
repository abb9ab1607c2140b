package common

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/biskitsx/ZideQuest-Backend/internal/entity"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
)

type GlobalRoleVerifier struct {
	adminRepo repository.AdminRepository
}

func NewGlobalRoleVerifier(adminRepo repository.AdminRepository) *GlobalRoleVerifier {
	return &GlobalRoleVerifier{adminRepo: adminRepo}
}

func (verifier *GlobalRoleVerifier) Verify(ctx context.Context, requiredRoles ...string) error {
	if !slices.Contains(requiredRoles, xcontext.RequestRole(ctx)) {
		return errors.New("user role does not have permission")
	}

	return nil
}

// QuestRoleVerifier decides whether the requesting admin may manage a quest.
// Admins always may. Creators may only manage quests whose creator belongs to
// the same organization as them.
type QuestRoleVerifier struct {
	adminRepo repository.AdminRepository
}

func NewQuestRoleVerifier(adminRepo repository.AdminRepository) *QuestRoleVerifier {
	return &QuestRoleVerifier{adminRepo: adminRepo}
}

func (verifier *QuestRoleVerifier) Verify(ctx context.Context, quest *entity.Quest) error {
	actorID := xcontext.RequestUserID(ctx)
	actor, err := verifier.adminRepo.GetByID(ctx, actorID)
	if err != nil {
		return fmt.Errorf("admin is not valid")
	}

	if actor.Role == entity.AdminRoleAdmin {
		return nil
	}

	creator, err := verifier.adminRepo.GetByID(ctx, quest.CreatorID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get quest creator: %v", err)
		return err
	}

	if actor.OrganizeName != creator.OrganizeName {
		return fmt.Errorf("user does not have permission")
	}

	return nil
}
