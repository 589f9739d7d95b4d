package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/errs"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/dbresolver"
)

// Dialector builds the gorm dialector selected by DB_TYPE.
func Dialector(c map[string]string) (gorm.Dialector, error) {
	dbType := config.GetString(c, "DB_TYPE", "postgres")

	switch dbType {
	case "supa":
		connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
			config.GetString(c, "SUPABASE_DB_HOST", ""),
			config.GetString(c, "SUPABASE_DB_USER", ""),
			config.GetString(c, "SUPABASE_DB_PASSWORD", ""),
			config.GetString(c, "SUPABASE_DB_NAME", ""),
			config.GetString(c, "SUPABASE_DB_PORT", "5432"),
		)
		return postgres.New(postgres.Config{DSN: connStr, PreferSimpleProtocol: true}), nil
	case "postgres":
		connStr := config.GetString(c, "DATABASE_URL", "")
		if connStr == "" {
			connStr = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
				config.GetString(c, "DB_HOST", "localhost"),
				config.GetString(c, "DB_USER", "postgres"),
				config.GetString(c, "DB_PASSWORD", ""),
				config.GetString(c, "DB_NAME", "portfolio"),
				config.GetString(c, "DB_PORT", "5432"),
				config.GetString(c, "DB_SSLMODE", "disable"),
			)
		}
		return postgres.New(postgres.Config{DSN: connStr, PreferSimpleProtocol: true}), nil
	case "sqlite":
		return sqlite.Open(config.GetString(c, "SQLITE_PATH", "portfolio.db")), nil
	default:
		return nil, errs.NewConfigInvalidError("DB_TYPE", fmt.Errorf("unsupported DB_TYPE %q", dbType))
	}
}

// Open connects to the configured database, registers read replicas from
// DB_REPLICA_DSNS and checks the connection.
func Open(c map[string]string) (*gorm.DB, error) {
	dialector, err := Dialector(c)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    false,
		TranslateError: true,
		Logger:         NewGormLogger(appLogLevel()),
	})
	if err != nil {
		return nil, errs.NewDatabaseError("open", "connection", err)
	}

	if replicas := config.GetList(c, "DB_REPLICA_DSNS"); len(replicas) > 0 {
		dialectors := make([]gorm.Dialector, 0, len(replicas))
		for _, dsn := range replicas {
			dialectors = append(dialectors, postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}))
		}
		resolver := dbresolver.Register(dbresolver.Config{
			Replicas: dialectors,
			Policy:   dbresolver.RandomPolicy{},
		}).
			SetConnMaxIdleTime(time.Duration(config.GetInt(c, "DB_CONN_MAX_IDLE_SECONDS", 300)) * time.Second).
			SetMaxOpenConns(config.GetInt(c, "DB_MAX_OPEN_CONNS", 20))
		if err := db.Use(resolver); err != nil {
			return nil, errs.NewDatabaseError("register", "read replicas", err)
		}
		zlog.Info().Int("replicas", len(replicas)).Msg("Read replicas registered")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		return nil, errs.NewDatabaseError("test", "connection", err)
	}

	return db, nil
}

// appLogLevel is the level application log events are actually emitted at:
// the stricter of the global level and the logger's own.
func appLogLevel() zerolog.Level {
	level := zerolog.GlobalLevel()
	if l := zlog.Logger.GetLevel(); l > level {
		level = l
	}
	return level
}

func gormLogLevel(level zerolog.Level) logger.LogLevel {
	switch {
	case level <= zerolog.DebugLevel:
		return logger.Info
	case level >= zerolog.ErrorLevel:
		return logger.Error
	}
	return logger.Warn
}

// NewGormLogger mirrors the application log level onto gorm's logger. SQL
// statements are only written below info.
func NewGormLogger(level zerolog.Level) logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  gormLogLevel(level),
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}
