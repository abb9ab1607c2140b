package main

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"

	"github.com/biskitsx/ZideQuest-Backend/internal/middleware"
	"github.com/biskitsx/ZideQuest-Backend/pkg/prometheus"
	"github.com/biskitsx/ZideQuest-Backend/pkg/router"
)

func (s *srv) startApi(cctx *cli.Context) error {
	s.loadConfig(cctx)
	s.loadLogger()
	s.loadDatabase()
	s.loadStorage()
	s.loadRedis()
	s.loadPublisher()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	})

	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on %s", s.configs.ApiServer.Address())
	if err := s.server.ListenAndServe(); err != nil {
		return err
	}

	s.logger.Infof("Server stopped")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Before(middleware.WithStartTime())
	s.router.AddCloser(middleware.Logger())
	s.router.AddCloser(middleware.Prometheus())
	s.router.Mount(http.MethodGet, "/metrics", prometheus.NewHandler())

	// Public API.
	router.POST(s.router, "/login", s.authDomain.Login)
	router.POST(s.router, "/users", s.userDomain.Create)
	router.GET(s.router, "/quests", s.questDomain.GetList)
	router.GET(s.router, "/quests/recommend", s.questDomain.Recommend)
	router.GET(s.router, "/quests/:id", s.questDomain.Get)
	router.GET(s.router, "/quests/:id/participants", s.questDomain.GetParticipants)
	router.GET(s.router, "/locations", s.locationDomain.GetList)
	router.GET(s.router, "/tags", s.tagDomain.GetList)

	// Authenticated user API.
	userRouter := s.router.Branch()
	userRouter.Before(middleware.Authenticate())
	{
		router.GET(userRouter, "/users/info", s.userDomain.GetInfo)
		router.PATCH(userRouter, "/quests/:id/join-leave", s.questDomain.JoinOrLeave)
	}

	// Locations expose participation flags to logged-in users, but stay
	// readable anonymously.
	optionalAuthRouter := s.router.Branch()
	optionalAuthRouter.Before(middleware.AuthenticateOptional())
	{
		router.GET(optionalAuthRouter, "/locations/:id", s.locationDomain.Get)
	}

	// Creator and admin API.
	creatorRouter := s.router.Branch()
	creatorRouter.Before(middleware.Authenticate())
	creatorRouter.Before(middleware.NewOnlyCreator(s.adminRepo).Middleware())
	{
		router.POST(creatorRouter, "/quests", s.questDomain.Create)
		router.PUT(creatorRouter, "/quests/:id", s.questDomain.Update)
		router.DELETE(creatorRouter, "/quests/:id", s.questDomain.Delete)
		router.POST(creatorRouter, "/quests/:id/image", s.questDomain.ChangeImage)
		router.GET(creatorRouter, "/quests/creator-all", s.questDomain.GetCreatorQuests)
		router.GET(creatorRouter, "/quests/creator-uncomplete", s.questDomain.GetCreatorUncompletedQuests)
		router.GET(creatorRouter, "/quests/:id/find", s.questDomain.Find)
		router.PATCH(creatorRouter, "/quests/:id/check-user", s.questDomain.CheckUsers)
		router.PATCH(creatorRouter, "/quests/:id/uncheck-user", s.questDomain.UncheckUsers)
		router.PATCH(creatorRouter, "/quests/:id/remove-user", s.questDomain.RemoveUsers)
		router.PATCH(creatorRouter, "/quests/:id/complete", s.questDomain.Complete)
		router.PATCH(creatorRouter, "/quests/:id/cancel", s.questDomain.Cancel)

		router.POST(creatorRouter, "/locations", s.locationDomain.Create)
		router.PUT(creatorRouter, "/locations/:id", s.locationDomain.Update)
		router.DELETE(creatorRouter, "/locations/:id", s.locationDomain.Delete)
		router.POST(creatorRouter, "/tags", s.tagDomain.Create)
	}

	// Admin-only API.
	adminRouter := s.router.Branch()
	adminRouter.Before(middleware.Authenticate())
	adminRouter.Before(middleware.NewOnlyAdmin(s.adminRepo).Middleware())
	{
		router.POST(adminRouter, "/admins", s.adminDomain.Create)
		router.GET(adminRouter, "/admins", s.adminDomain.GetList)
		router.GET(adminRouter, "/users", s.userDomain.GetList)
	}
}
