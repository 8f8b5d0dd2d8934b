package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/deboeng/careers-backend/internal/config"
	"github.com/deboeng/careers-backend/internal/models"
	"github.com/deboeng/careers-backend/internal/policy"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models, including the unique
// (user_id, job_posting_id) index on applications and the cascade constraints.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.JobPosting{},
		&models.Application{},
		&models.ApplicationHistory{},
		&models.SystemLog{},
	)
}

// SeedSuperAdmin ensures the bootstrap super_admin account exists. A no-op
// when the credentials are not configured or the account is already present.
func SeedSuperAdmin(cfg *config.Config) error {
	if cfg.SuperAdminEmail == "" || cfg.SuperAdminPassword == "" {
		return nil
	}

	var existing models.User
	err := DB.Where("email = ?", cfg.SuperAdminEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up super admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash super admin password: %w", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        cfg.SuperAdminEmail,
		PasswordHash: string(hash),
		Role:         string(policy.RoleSuperAdmin),
		IsVerified:   true,
	}
	if err := DB.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed super admin: %w", err)
	}

	slog.Info("super admin seeded", "email", cfg.SuperAdminEmail)
	return nil
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
