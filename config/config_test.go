package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, "8080", cfg.ApiPort)
	assert.Equal(t, "sqlite3", cfg.Database)
	assert.Equal(t, "console", cfg.Mail.Backend)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, "contato@eventex.com.br", cfg.Mail.From)
	assert.Len(t, cfg.Security.SecretKey, 50)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"api_port": "9000",
		"database": "postgres",
		"db_host": "localhost",
		"security": {"secret_key": "from-file"},
		"mail": {"backend": "smtp", "host": "smtp.example.com", "port": 25}
	}`
	require.Nil(t, os.WriteFile(path, []byte(data), 0o600))

	t.Setenv("API_PORT", "9999")
	t.Setenv("MAIL_HOST", "smtp.eventex.com.br")
	t.Setenv("AUTOMIGRATE", "true")

	cfg, err := Load(path)
	require.Nil(t, err)
	assert.Equal(t, "9999", cfg.ApiPort)
	assert.Equal(t, "postgres", cfg.Database)
	assert.Equal(t, "localhost", cfg.DbHost)
	assert.Equal(t, "from-file", cfg.Security.SecretKey)
	assert.Equal(t, "smtp", cfg.Mail.Backend)
	assert.Equal(t, "smtp.eventex.com.br", cfg.Mail.Host)
	assert.Equal(t, 25, cfg.Mail.Port)
	assert.True(t, cfg.AutoMigrate)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		content string
		missing bool
		err     error
	}{
		"missing file": {
			missing: true,
			err:     ErrUnreadable,
		},
		"broken json": {
			content: `{"api_port": `,
		},
	}
	for k, c := range cases {
		t.Run(k, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if !c.missing {
				require.Nil(t, os.WriteFile(path, []byte(c.content), 0o600))
			}
			_, err := Load(path)
			require.NotNil(t, err)
			if c.err != nil {
				assert.ErrorIs(t, err, c.err)
			}
		})
	}
}
