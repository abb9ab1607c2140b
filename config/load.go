package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads the configuration file at path. An empty path falls back to
// environment variables only, which keeps local tooling usable without a file.
func Load(path string) (*Configs, error) {
	cfg := defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	overrideFromEnv(cfg)
	return cfg, nil
}

func defaults() *Configs {
	return &Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 24 * time.Hour,
			},
		},
		File: FileConfigs{
			MaxSize: 2 << 20,
		},
		Kafka: KafkaConfigs{
			NotificationTopic: "notifications",
		},
		Quest: QuestConfigs{
			RecommendLimit: 10,
		},
	}
}

func overrideFromEnv(cfg *Configs) {
	setIfPresent := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	setIfPresent(&cfg.Env, "ENV")
	setIfPresent(&cfg.ApiServer.Port, "PORT")
	setIfPresent(&cfg.Database.Host, "MYSQL_HOST")
	setIfPresent(&cfg.Database.Port, "MYSQL_PORT")
	setIfPresent(&cfg.Database.Database, "MYSQL_DATABASE")
	setIfPresent(&cfg.Database.User, "MYSQL_USER")
	setIfPresent(&cfg.Database.Password, "MYSQL_PASSWORD")
	setIfPresent(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	setIfPresent(&cfg.Storage.AccessKey, "STORAGE_ACCESS_KEY")
	setIfPresent(&cfg.Storage.SecretKey, "STORAGE_SECRET_KEY")
	setIfPresent(&cfg.Redis.Addr, "REDIS_ADDR")
	setIfPresent(&cfg.Kafka.Addr, "KAFKA_ADDR")
}
