package infra

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"soulprint/internal/config"
	"soulprint/internal/models/db_models"
)

// Models lists every table the service owns, in migration order.
var Models = []interface{}{
	&db_models.Destination{},
	&db_models.QuestionnaireSession{},
	&db_models.ResponseSnapshot{},
	&db_models.TraitProfile{},
	&db_models.MatchResult{},
	&db_models.MatchFeedback{},
}

func InitPostgresql(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if cfg.AutoMigrate {
		if err := Migrate(db); err != nil {
			logger.Error("error migrating database", zap.Error(err))
			return nil, err
		}
	}
	return db, nil
}

// Migrate enables the vector extension and creates or updates the tables.
func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return fmt.Errorf("enable pgvector: %w", err)
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", zap.Error(err))
		return
	}
	logger.Info("postgres connection closed")
}
