package db

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"eventex/config"
	"eventex/models"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

const connectAttempts = 5

var conf config.Configuration

func SetConfigurations(configuration config.Configuration) {
	conf = configuration
}

// Connect abre conexão com o banco (sqlite3 por padrão) e, com automigrate
// habilitado, cria a tabela de inscrições. Conexões com o postgres são
// retentadas com backoff exponencial enquanto o servidor sobe.
func Connect() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch conf.Database {
	case "postgres", "postgresql":
		slog.Info("Utilizando conexão com o postgresql...", "host", conf.DbHost, "db", conf.DbName)
		policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), connectAttempts-1)
		err = backoff.Retry(func() (err error) {
			db, err = openPostgres()
			if err != nil {
				slog.Warn("postgres indisponível", "error", err)
			}
			return err
		}, policy)
	default:
		slog.Info("Utilizando conexão com o sqlite3...", "path", conf.DbPath)
		db, err = openSqlite()
	}

	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", conf.Database, err)
	}

	db.LogMode(conf.Debug)

	if conf.AutoMigrate {
		if err := Migrate(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	return db, nil
}

// Migrate creates or extends the subscriptions table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Subscription{}).Error; err != nil {
		return fmt.Errorf("migrating subscriptions: %w", err)
	}
	return nil
}

func openPostgres() (*gorm.DB, error) {
	dsn := "host=" + conf.DbHost + " port=" + conf.DbPort
	dsn += " user=" + conf.DbUser + " dbname=" + conf.DbName
	dsn += " password=" + conf.DbPass + " sslmode=" + conf.DbSSLMode

	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	db, err := gorm.Open("postgres", sqlDB)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

func openSqlite() (*gorm.DB, error) {
	path := conf.DbPath
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// cada conexão do pool teria um banco vazio próprio
		db.DB().SetMaxOpenConns(1)
	}
	return db, nil
}
