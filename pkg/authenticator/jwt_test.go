package authenticator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biskitsx/ZideQuest-Backend/config"
	"github.com/biskitsx/ZideQuest-Backend/internal/model"
)

func Test_jwtTokenEngine(t *testing.T) {
	cfg := config.AuthConfigs{
		TokenSecret: "secret",
		AccessToken: config.TokenConfigs{Name: "access_token", Expiration: time.Minute},
	}

	engine := NewTokenEngine[model.AccessToken](cfg)
	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Role: "user"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
	require.Equal(t, "user", obj.Role)
}

func Test_jwtTokenEngine_invalidSecret(t *testing.T) {
	engine := NewTokenEngine[model.AccessToken](config.AuthConfigs{
		TokenSecret: "secret",
		AccessToken: config.TokenConfigs{Expiration: time.Minute},
	})
	other := NewTokenEngine[model.AccessToken](config.AuthConfigs{
		TokenSecret: "another-secret",
		AccessToken: config.TokenConfigs{Expiration: time.Minute},
	})

	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Role: "user"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_expired(t *testing.T) {
	engine := NewTokenEngine[model.AccessToken](config.AuthConfigs{
		TokenSecret: "secret",
		AccessToken: config.TokenConfigs{Expiration: -time.Minute},
	})

	token, err := engine.Generate("user1", model.AccessToken{ID: "user1", Role: "user"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}
