package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"eventex/tools"

	"github.com/kelseyhightower/envconfig"
)

var ErrUnreadable = errors.New("configuration file unreadable")

type Configuration struct {
	ApiPort  string `json:"api_port" envconfig:"API_PORT"`
	LogPath  string `json:"log_path" envconfig:"LOG_PATH"`
	LogLevel int    `json:"log_level" envconfig:"LOG_LEVEL"`
	Debug    bool   `json:"debug" envconfig:"DEBUG"`

	Database    string `json:"database" envconfig:"DATABASE"` // "sqlite3" ou "postgres"
	DbHost      string `json:"db_host" envconfig:"DB_HOST"`
	DbPort      string `json:"db_port" envconfig:"DB_PORT"`
	DbUser      string `json:"db_user" envconfig:"DB_USER"`
	DbName      string `json:"db_name" envconfig:"DB_NAME"`
	DbPass      string `json:"db_pass" envconfig:"DB_PASS"`
	DbSSLMode   string `json:"db_sslmode" envconfig:"DB_SSLMODE"`
	DbPath      string `json:"db_path" envconfig:"DB_PATH"` // sqlite3 apenas
	AutoMigrate bool   `json:"automigrate" envconfig:"AUTOMIGRATE"`

	Security struct {
		SecretKey     string `json:"secret_key" envconfig:"SECRET_KEY"`
		SecureCookies bool   `json:"secure_cookies" envconfig:"SECURE_COOKIES"`
	} `json:"security"`

	Mail struct {
		Backend string `json:"backend" envconfig:"MAIL_BACKEND"` // "smtp", "console" ou "memory"
		Host    string `json:"host" envconfig:"MAIL_HOST"`
		Port    int    `json:"port" envconfig:"MAIL_PORT"`
		User    string `json:"user" envconfig:"MAIL_USER"`
		Pass    string `json:"pass" envconfig:"MAIL_PASS"`
		From    string `json:"from" envconfig:"MAIL_FROM"`
	} `json:"mail"`
}

// Get loads the configuration or stops the process.
func Get(path string) Configuration {
	c, err := Load(path)
	if err != nil {
		log.Fatal(err)
	}
	return c
}

// Load reads the JSON file at path (skipped when path is empty), applies
// environment overrides and fills defaults. Nested settings are matched by
// their short names too, e.g. MAIL_HOST or SECRET_KEY.
func Load(path string) (c Configuration, err error) {
	if path != "" {
		var b []byte
		b, err = os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("%w: %s", ErrUnreadable, err)
		}
		if err = json.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err = envconfig.Process("", &c); err != nil {
		return c, fmt.Errorf("reading environment: %w", err)
	}

	c.setDefaults()
	return c, nil
}

func (c *Configuration) setDefaults() {
	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.Database == "" {
		c.Database = "sqlite3"
	}
	if c.DbPath == "" {
		c.DbPath = "db/database.db"
	}
	if c.DbSSLMode == "" {
		c.DbSSLMode = "disable"
	}
	if c.Security.SecretKey == "" {
		// sem chave fixa as sessões não sobrevivem a um restart
		c.Security.SecretKey = tools.RandomString(50)
	}
	if c.Mail.Backend == "" {
		c.Mail.Backend = "console"
	}
	if c.Mail.Port <= 0 {
		c.Mail.Port = 587
	}
	if c.Mail.From == "" {
		c.Mail.From = "contato@eventex.com.br"
	}
}
