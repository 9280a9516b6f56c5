package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/salon-backend/internal/config"
	"github.com/BruksfildServices01/salon-backend/internal/models"
)

// NewDB opens the postgres pool and brings the schema up to date, with
// the embedded SQL migrations when cfg.Migrations is set and AutoMigrate
// otherwise.
func NewDB(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), Config(log))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if cfg.Migrations {
		if err := RunSQLMigrations(cfg.DBUrl); err != nil {
			return nil, fmt.Errorf("sql migrations: %w", err)
		}
		log.Info("sql migrations applied")
		return db, nil
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Config is the gorm configuration shared by the server and the tests.
// Driver errors are translated so unique violations surface as
// gorm.ErrDuplicatedKey.
func Config(log logrus.FieldLogger) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger: logger.New(
			log,
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}
}

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&models.Account{},
		&models.Branch{},
		&models.Skill{},
		&models.Service{},
		&models.Payment{},
		&models.Discount{},
		&models.Promo{},
		&models.Client{},
		&models.Technician{},
		&models.TechnicianSkill{},
		&models.TechnicianBranch{},
		&models.Appointment{},
		&models.AuditLog{},
	}
}

func Migrate(db *gorm.DB) error {
	for _, m := range Models() {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}
