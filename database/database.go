// Package database mở kết nối postgres qua gorm và quản lý schema bằng
// golang-migrate với các file SQL được embed vào binary.
package database

import (
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/techmaster-vietnam/blogkit/config"
	"github.com/techmaster-vietnam/goerrorkit"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open kết nối postgres theo config
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := OpenDSN(cfg.DSN())
	if err != nil {
		return nil, goerrorkit.NewSystemError(err).WithData(map[string]interface{}{
			"host":     cfg.Host,
			"port":     cfg.Port,
			"user":     cfg.User,
			"database": cfg.Name,
			"sslmode":  cfg.SSLMode,
		})
	}
	return db, nil
}

// OpenDSN kết nối postgres bằng DSN (key=value hoặc URL).
// TranslateError bật để unique violation trả về gorm.ErrDuplicatedKey.
func OpenDSN(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// newMigrate tạo migrate instance trên connection của gorm
func newMigrate(db *gorm.DB, dbName string) (*migrate.Migrate, error) {
	// Get underlying *sql.DB from GORM
	sqlDB, err := db.DB()
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Failed to get underlying sql.DB from GORM")
	}

	driver, err := pgmigrate.WithInstance(sqlDB, &pgmigrate.Config{
		DatabaseName: dbName,
	})
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Failed to create postgres driver for migrations")
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Failed to create embedded source driver")
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return nil, goerrorkit.WrapWithMessage(err, "Failed to create migrate instance")
	}
	return m, nil
}

// Migrate chạy tất cả migrations còn thiếu
func Migrate(db *gorm.DB, dbName string) error {
	m, err := newMigrate(db, dbName)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		// Ignore "no change" error (migrations already applied)
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Migrations are up to date")
			return nil
		}
		return goerrorkit.WrapWithMessage(err, "Failed to run migrations").WithData(map[string]interface{}{
			"database": dbName,
		})
	}

	fmt.Println("Migrations completed successfully")
	return nil
}

// Down rollback toàn bộ migrations
func Down(db *gorm.DB, dbName string) error {
	m, err := newMigrate(db, dbName)
	if err != nil {
		return err
	}

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerrorkit.WrapWithMessage(err, "Failed to roll back migrations").WithData(map[string]interface{}{
			"database": dbName,
		})
	}
	return nil
}

// Reset drops all tables and migration state, then migrates again.
// WARNING: This will delete all data!
func Reset(db *gorm.DB, dbName string) error {
	fmt.Println("⚠️  WARNING: Resetting database")

	dropTablesSQL := `
		DROP TABLE IF EXISTS comments CASCADE;
		DROP TABLE IF EXISTS blogs CASCADE;
		DROP TABLE IF EXISTS categories CASCADE;
		DROP TABLE IF EXISTS users CASCADE;
		DROP TABLE IF EXISTS schema_migrations CASCADE;
	`
	if err := db.Exec(dropTablesSQL).Error; err != nil {
		return goerrorkit.WrapWithMessage(err, "Failed to drop tables")
	}
	fmt.Println("All tables dropped successfully")

	return Migrate(db, dbName)
}
