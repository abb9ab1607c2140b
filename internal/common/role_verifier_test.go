package common

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/testutil"
)

func Test_QuestRoleVerifier(t *testing.T) {
	tests := []struct {
		name    string
		actorID string
		wantErr bool
	}{
		{
			name:    "admin of any organization is allowed",
			actorID: testutil.Admin1.ID,
		},
		{
			name:    "the quest creator is allowed",
			actorID: testutil.Creator1.ID,
		},
		{
			name:    "another creator of the same organization is allowed",
			actorID: testutil.Creator2.ID,
		},
		{
			name:    "a creator of another organization is rejected",
			actorID: testutil.Creator3.ID,
			wantErr: true,
		},
		{
			name:    "an unknown actor is rejected",
			actorID: "nobody",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testutil.MockContextWithUserID(t, tt.actorID, "")
			testutil.CreateFixtureDb(ctx, t)

			verifier := NewQuestRoleVerifier(repository.NewAdminRepository())
			err := verifier.Verify(ctx, testutil.Quest1)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
