package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"travel-agency-server/config"
	"travel-agency-server/logger"
	"travel-agency-server/models"
	"travel-agency-server/utils"
)

var DB *gorm.DB

// Initialize sets up the database connection, runs migrations and seeds the
// admin account.
func Initialize() error {
	cfg := config.AppConfig.Database
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	gormLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	logger.InfoLogger.Info("✅ Successfully connected to database")

	if err := Migrate(DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.InfoLogger.Info("✅ Database migrations completed successfully")

	if err := SeedAdmin(DB); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}

// Migrate creates or updates all tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Package{},
		&models.Booking{},
		&models.Hotel{},
		&models.Room{},
		&models.Destination{},
		&models.Vlog{},
		&models.GalleryItem{},
		&models.Enquiry{},
	)
}

// SeedAdmin creates the configured admin account if it does not exist yet.
// This replaces any special-cased credential checks in the login path: admin
// is just a user row with the admin role.
func SeedAdmin(db *gorm.DB) error {
	adminCfg := config.AppConfig.Admin

	var existing models.User
	err := db.Where("email = ?", adminCfg.Email).First(&existing).Error
	if err == nil {
		if existing.Role != models.RoleAdmin {
			return db.Model(&existing).Update("role", models.RoleAdmin).Error
		}
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	hash, err := utils.HashPassword(adminCfg.Password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         adminCfg.Name,
		Email:        adminCfg.Email,
		Age:          30,
		Gender:       models.GenderOther,
		Phone:        adminCfg.Phone,
		Address:      adminCfg.Address,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.InfoLogger.Infof("✅ Seeded admin account %s", adminCfg.Email)
	return nil
}

func GetDB() *gorm.DB {
	return DB
}
