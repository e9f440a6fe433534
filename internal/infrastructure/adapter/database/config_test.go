package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Driver:          "postgres",
		Host:            "localhost",
		Port:            5432,
		Username:        "postgres",
		Password:        "secret",
		Database:        "multinvest_test",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("accepts a complete postgres config", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("accepts an empty driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Driver = ""
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects a non-postgres driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Driver = "mysql"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported database driver")
	})

	t.Run("rejects incomplete configs", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(*Config)
		}{
			{"missing host", func(c *Config) { c.Host = "" }},
			{"missing port", func(c *Config) { c.Port = 0 }},
			{"missing username", func(c *Config) { c.Username = "" }},
			{"missing database", func(c *Config) { c.Database = "" }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cfg := validConfig()
				tt.mutate(cfg)
				assert.Error(t, cfg.Validate())
			})
		}
	})
}

func TestConfigDSN(t *testing.T) {
	t.Run("builds the postgres connection string", func(t *testing.T) {
		dsn := validConfig().DSN()
		assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=multinvest_test sslmode=disable", dsn)
	})

	t.Run("defaults sslmode to disable", func(t *testing.T) {
		cfg := validConfig()
		cfg.SSLMode = ""
		assert.Contains(t, cfg.DSN(), "sslmode=disable")
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Equal(t, 6543, ParsePort("6543"))
	assert.Equal(t, 5432, ParsePort(""))
	assert.Equal(t, 5432, ParsePort("not-a-port"))
	assert.Equal(t, 5432, ParsePort("-1"))
}
