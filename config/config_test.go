package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_TYPE", "mongo")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "freightdesk", cfg.MongoDatabase)
	assert.Equal(t, "db/migrations", cfg.MigrationsPath)
	assert.Equal(t, 720, cfg.JWTExpirationMinutes)
	assert.Empty(t, cfg.Origins())
	assert.False(t, cfg.R2().Enabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/freight?sslmode=disable")
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("R2_BUCKET", "docs")
	t.Setenv("R2_ACCOUNT_ID", "acc")
	t.Setenv("R2_PUBLIC_URL", "https://pub.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Origins())
	assert.True(t, cfg.R2().Enabled())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cfg  Config
	}{
		{"unknown db", Config{DBType: "sqlite", Port: 1}},
		{"missing postgres url", Config{DBType: "postgres", Port: 1}},
		{"missing mongo url", Config{DBType: "mongo", Port: 1}},
		{"auth without secret", Config{DBType: "mongo", MongoURL: "m", Port: 1, AdminPasswordHash: "$2a$"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.cfg.Validate())
		})
	}
}
