package app

import (
	"context"
	"log"
	"time"

	"resumatch/internal/config"
	"resumatch/internal/database"
	"resumatch/internal/database/migration"
	dbpostgres "resumatch/internal/database/postgres"
	"resumatch/internal/database/seeder"
	"resumatch/internal/delivery/http/handler"
	"resumatch/internal/delivery/http/middleware"
	"resumatch/internal/delivery/http/routes"
	"resumatch/internal/domain/analysis"
	"resumatch/internal/infrastructure/cache"
	userpostgres "resumatch/internal/infrastructure/persistence/postgres"
	"resumatch/internal/pkg/jwt"
	"resumatch/internal/repository"
	"resumatch/internal/storage"
	"resumatch/internal/usecase"
	"resumatch/internal/ws"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	Registry *routes.Registry
	AuthMW   *middleware.AuthMiddleware

	users *userpostgres.UserRepository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{Dir: "migrations"}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	users, err := userpostgres.NewUserRepository(db.SQLDB())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	store, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		_ = users.Close()
		_ = db.Close()
		return nil, err
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	skillRepo := repository.NewPostgresSkillRepository(db)
	resumeRepo := repository.NewPostgresResumeRepository(db)
	analysisRepo := repository.NewPostgresAnalysisRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	applicationRepo := repository.NewPostgresApplicationRepository(db)

	skillUC := usecase.NewSkillUsecase(skillRepo)
	vocab := skillUC.Vocabulary(ctx)
	engine := analysis.NewEngine(analysis.WeightsForPreset(cfg.Scoring.Preset))

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, store, vocab, cfg.Upload.MaxSizeBytes, logger)
	analysisUC := usecase.NewAnalysisUsecase(
		analysisRepo, resumeRepo, jobRepo, users,
		engine, vocab,
		ws.NotifyAnalysisCompleted,
		logger,
	)
	jobUC := usecase.NewJobUsecase(jobRepo, resumeRepo, applicationRepo, redisCache, engine, vocab, logger)

	authMW := middleware.NewAuthMiddleware(jwtSvc)

	registry := &routes.Registry{
		Health:   handler.NewHealthHandler(db),
		Auth:     handler.NewAuthHandler(authUC),
		Resume:   handler.NewResumeHandler(resumeUC),
		Analysis: handler.NewAnalysisHandler(analysisUC),
		Job:      handler.NewJobHandler(jobUC, authMW),
		Skill:    handler.NewSkillHandler(skillUC),
		WS:       ws.NewHandler(hub, jwtSvc, logger),
		AuthMW:   authMW,
	}

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    redisCache,
		Hub:      hub,
		Registry: registry,
		AuthMW:   authMW,
		users:    users,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.users != nil {
		_ = c.users.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
