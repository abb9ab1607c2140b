package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/biskitsx/ZideQuest-Backend/config"
	"github.com/biskitsx/ZideQuest-Backend/internal/domain"
	"github.com/biskitsx/ZideQuest-Backend/internal/repository"
	"github.com/biskitsx/ZideQuest-Backend/pkg/kafka"
	"github.com/biskitsx/ZideQuest-Backend/pkg/logger"
	"github.com/biskitsx/ZideQuest-Backend/pkg/pubsub"
	"github.com/biskitsx/ZideQuest-Backend/pkg/router"
	"github.com/biskitsx/ZideQuest-Backend/pkg/storage"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xcontext"
	"github.com/biskitsx/ZideQuest-Backend/pkg/xredis"
)

type srv struct {
	ctx context.Context
	app *cli.App

	configs *config.Configs
	logger  logger.Logger
	db      *gorm.DB

	storage     storage.Storage
	redisClient xredis.Client
	publisher   pubsub.Publisher

	userRepo             repository.UserRepository
	adminRepo            repository.AdminRepository
	questRepo            repository.QuestRepository
	questParticipantRepo repository.QuestParticipantRepository
	locationRepo         repository.LocationRepository
	tagRepo              repository.TagRepository
	notificationRepo     repository.NotificationRepository
	transcriptRepo       repository.TranscriptRepository

	authDomain     domain.AuthDomain
	userDomain     domain.UserDomain
	adminDomain    domain.AdminDomain
	questDomain    domain.QuestDomain
	locationDomain domain.LocationDomain
	tagDomain      domain.TagDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
	s.ctx = xcontext.WithConfigs(s.ctx, *configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" || s.configs.Env == "testing" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       s.configs.Database.ConnectionString(),
		DefaultStringSize:         256,
		DisableDatetimePrecision:  true,
		DontSupportRenameIndex:    true,
		DontSupportRenameColumn:   true,
		SkipInitializeWithVersion: false,
	}), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	s.db = db
	s.ctx = xcontext.WithDB(s.ctx, db)
}

func (s *srv) loadStorage() {
	s.storage = storage.NewS3Storage(s.configs.Storage)
}

func (s *srv) loadRedis() {
	client, err := xredis.NewClient(s.ctx, s.configs.Redis.Addr)
	if err != nil {
		panic(err)
	}

	s.redisClient = client
}

func (s *srv) loadPublisher() {
	s.publisher = kafka.NewPublisher("api", []string{s.configs.Kafka.Addr})
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.adminRepo = repository.NewAdminRepository()
	s.questRepo = repository.NewQuestRepository()
	s.questParticipantRepo = repository.NewQuestParticipantRepository()
	s.locationRepo = repository.NewLocationRepository()
	s.tagRepo = repository.NewTagRepository()
	s.notificationRepo = repository.NewNotificationRepository()
	s.transcriptRepo = repository.NewTranscriptRepository()
}

func (s *srv) loadDomains() {
	s.authDomain = domain.NewAuthDomain(s.userRepo, s.adminRepo)
	s.userDomain = domain.NewUserDomain(
		s.userRepo,
		s.questRepo,
		s.questParticipantRepo,
		s.notificationRepo,
		s.transcriptRepo,
	)
	s.adminDomain = domain.NewAdminDomain(s.adminRepo)
	s.questDomain = domain.NewQuestDomain(
		s.questRepo,
		s.questParticipantRepo,
		s.locationRepo,
		s.notificationRepo,
		s.transcriptRepo,
		s.adminRepo,
		s.storage,
		s.redisClient,
		s.publisher,
	)
	s.locationDomain = domain.NewLocationDomain(
		s.locationRepo,
		s.questRepo,
		s.questParticipantRepo,
	)
	s.tagDomain = domain.NewTagDomain(s.tagRepo)
}
