package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Config represents database configuration. Credentials always come from the
// application configuration layer; there are no functional defaults here.
type Config struct {
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// Validate checks if the configuration is complete enough to connect.
// Only postgres is supported; an empty driver means postgres.
func (c *Config) Validate() error {
	if c.Driver != "" && c.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port == 0 {
		return errors.New("database port is required")
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}
	return nil
}

// DSN builds the postgres connection string
func (c *Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, sslMode)
}

// ParsePort converts a string port to an int, falling back to the postgres default
func ParsePort(port string) int {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		return 5432
	}
	return p
}
