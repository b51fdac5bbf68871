package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jobbridge/internal/config"
	"jobbridge/internal/database"
	"jobbridge/internal/database/migration"
	dbpostgres "jobbridge/internal/database/postgres"
	"jobbridge/internal/delivery/http/handler"
	"jobbridge/internal/delivery/http/middleware"
	"jobbridge/internal/delivery/http/routes"
	v1 "jobbridge/internal/delivery/http/routes/v1"
	"jobbridge/internal/infrastructure/cache"
	"jobbridge/internal/infrastructure/events"
	"jobbridge/internal/infrastructure/persistence/postgres"
	"jobbridge/internal/infrastructure/storage"
	"jobbridge/internal/logger"
	"jobbridge/internal/pkg/jwt"
	"jobbridge/internal/repository"
	"jobbridge/internal/usecase"
	ucauth "jobbridge/internal/usecase/auth"
	useruc "jobbridge/internal/usecase/user"
	"jobbridge/internal/ws"
	"jobbridge/migrations"

	"go.uber.org/zap"
)

type Container struct {
	Config config.Config
	Logger *zap.Logger
	DB     database.DB
	Cache  *cache.Redis
	Hub    *ws.Hub
	Routes *routes.Registry

	amqp  *events.AMQPPublisher
	users *postgres.UserRepository
}

// NewContainer connects the backing services, applies pending migrations
// and wires every handler. Redis,
// object storage and RabbitMQ are optional: the server starts without them
// and the dependent features degrade.
func NewContainer(ctx context.Context, cfg config.Config, log *zap.Logger) (*Container, error) {
	log = logger.OrNop(log)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(connectCtx, cfg.Database, log.Named("db"))
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: log, DB: db}

	// the user repository prepares statements, so the schema must exist first
	migrateCtx, cancelMigrate := context.WithTimeout(ctx, time.Minute)
	err = migration.Runner{FS: migrations.FS, Logger: log.Named("migration")}.Run(migrateCtx, db.SQLDB())
	cancelMigrate()
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	users, err := postgres.NewUserRepository(connectCtx, db.SQLDB())
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("user repository: %w", err)
	}
	c.users = users

	c.Cache = cache.NewRedis(cfg.Redis, log.Named("cache"))
	c.Hub = ws.NewHub(log.Named("ws"))

	publishers := events.Multi{c.Hub}
	if cfg.Events.Enabled() {
		p, err := events.NewAMQPPublisher(cfg.Events, log.Named("events"))
		if err != nil {
			log.Warn("rabbitmq unavailable, events stay in-process", zap.Error(err))
		} else {
			c.amqp = p
			publishers = append(publishers, p)
		}
	}

	var uploader storage.Uploader
	if cfg.Storage.Enabled() {
		s3, err := storage.NewS3(connectCtx, cfg.Storage)
		if err != nil {
			log.Warn("object storage unavailable, attachments disabled", zap.Error(err))
		} else {
			uploader = s3
		}
	}

	beneficiaryRepo := repository.NewPostgresBeneficiaryRepository(db)
	providerRepo := repository.NewPostgresProviderRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	beneficiaryUC := usecase.NewBeneficiaryUsecase(beneficiaryRepo, uploader, publishers, log.Named("beneficiaries"))
	providerUC := usecase.NewProviderUsecase(providerRepo, publishers, log.Named("providers"))
	jobUC := usecase.NewJobUsecase(jobRepo, providerRepo, publishers, log.Named("jobs"))
	matchingUC := usecase.NewMatchingUsecase(beneficiaryRepo, jobRepo, providerRepo, cfg.App.MatchingTimeout, log.Named("matching"))
	skillUC := usecase.NewSkillUsecase(skillRepo, c.Cache, publishers, log.Named("skills"))
	exportUC := usecase.NewExportUsecase(beneficiaryUC, log.Named("export"))
	authUC := usecase.NewAuthUsecase(ucauth.NewService(users), users, jwtSvc)

	c.Routes = routes.NewRegistry(
		handler.NewHealthHandler(db, c.Cache),
		ws.NewHandler(c.Hub, log.Named("ws")),
		v1.Handlers{
			Auth:          handler.NewAuthHandler(authUC),
			User:          handler.NewUserHandler(useruc.NewService(users)),
			Beneficiaries: handler.NewBeneficiaryHandler(beneficiaryUC, exportUC),
			Providers:     handler.NewProviderHandler(providerUC),
			Jobs:          handler.NewJobHandler(jobUC),
			Matches:       handler.NewMatchHandler(matchingUC),
			Skills:        handler.NewSkillHandler(skillUC),
		},
		middleware.NewAuthMiddleware(jwtSvc),
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}

	var errs []error
	if c.amqp != nil {
		errs = append(errs, c.amqp.Close())
	}
	if c.users != nil {
		errs = append(errs, c.users.Close())
	}
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}

func (c *Container) zapLogger() *zap.Logger {
	if c == nil {
		return zap.NewNop()
	}
	return logger.OrNop(c.Logger)
}
