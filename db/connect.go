package db

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"realty-server/confs"
	"realty-server/entities"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every table owned by the service, in migration order.
var Models = []any{
	&entities.User{},
	&entities.Property{},
	&entities.Contract{},
	&entities.DemoLead{},
	&entities.ActivityLog{},
}

// Connect opens the configured database and runs migrations.
func Connect(cfg confs.Config) (Database, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn), TranslateError: true}
	if cfg.Debug {
		gormCfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "sqlite":
		slog.Info("connecting to sqlite database", "path", cfg.SQLitePath)
		gdb, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		gormCfg.PrepareStmt = true
		gdb, err = gorm.Open(postgres.Open(postgresDSN(cfg)), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.DBDriver != "sqlite" {
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(0)
	}

	database := &GormDatabase{DB: gdb}
	if err := Migrate(database); err != nil {
		return nil, err
	}
	slog.Info("database connection established", "driver", cfg.DBDriver)
	return database, nil
}

// Migrate brings the schema up to date with the entity definitions.
func Migrate(database Database) error {
	if err := database.GetDB().AutoMigrate(Models...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

var memoryNameCleaner = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// OpenMemory opens a migrated, private in-memory SQLite database.
// Databases opened with the same name share state.
func OpenMemory(name string) (Database, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", memoryNameCleaner.ReplaceAllString(name, "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	database := &GormDatabase{DB: gdb}
	if err := Migrate(database); err != nil {
		return nil, err
	}
	return database, nil
}

func postgresDSN(cfg confs.Config) string {
	if cfg.DBURL != "" {
		dsn := cfg.DBURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		return dsn
	}

	sslMode := "require"
	if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
}
