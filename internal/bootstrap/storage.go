// Package bootstrap wires configuration into the concrete stores shared by the API and the CLI.
package bootstrap

import (
	"context"
	"fmt"

	"quicksizer/internal/adapter/persistence/cache"
	"quicksizer/internal/adapter/persistence/repository"
	"quicksizer/internal/config"
	infracache "quicksizer/internal/infrastructure/cache"
	"quicksizer/internal/infrastructure/database"
	"quicksizer/internal/usecase/interfaces"
	"quicksizer/pkg/logger"

	"gorm.io/gorm"
)

// Stores holds the Questionnaire Store and the Estimation Store.
type Stores struct {
	Questionnaires interfaces.IQuestionnaireRepository
	Estimates      interfaces.IEstimateRepository
	close          []func() error
}

func (s *Stores) Close() {
	for _, fn := range s.close {
		_ = fn()
	}
}

// NewStores connects the configured backend and, when REDIS_ADDR is set, puts the
// estimate cache in front of it. An unreachable Redis disables the cache instead of failing.
func NewStores(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Stores, error) {
	s := &Stores{}

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		s.close = append(s.close, closeGorm(db))
		s.Questionnaires = repository.NewQuestionnaireGormRepository(db)
		s.Estimates = repository.NewEstimateGormRepository(db)
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		s.Questionnaires = repository.NewQuestionnaireDynamoRepository(ddb, cfg.DynamoDB.QuestionnaireTable, cfg.DynamoDB.CounterTable)
		s.Estimates = repository.NewEstimateDynamoRepository(ddb, cfg.DynamoDB.EstimateTable, cfg.DynamoDB.CounterTable)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	log.Info("storage ready", "driver", cfg.StorageDriver)

	if cfg.Redis.Enabled() {
		rdb, err := infracache.ConnectRedis(ctx, cfg.Redis)
		if err != nil {
			log.Warn("estimate cache disabled", "error", err)
		} else {
			s.close = append(s.close, rdb.Close)
			s.Estimates = cache.NewEstimateCache(s.Estimates, rdb, cfg.Redis.TTL, log)
			log.Info("estimate cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.TTL.String())
		}
	}
	return s, nil
}

// Migrate prepares the schema of the configured backend.
func Migrate(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.ConnectPostgres(cfg.Postgres)
		if err != nil {
			return err
		}
		defer func() { _ = closeGorm(db)() }()
		if err := repository.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		log.Info("postgres schema migrated")
		return nil
	case config.DriverDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return err
		}
		return database.EnsureTables(ctx, ddb, cfg.DynamoDB, log)
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func closeGorm(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}
