package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Host:          "localhost",
		Port:          5432,
		Username:      "wallet",
		Password:      "secret",
		Database:      "wallet",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "info",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "Valid", mutate: func(*Config) {}},
		{name: "Missing Host", mutate: func(c *Config) { c.Host = "" }, wantErr: "host"},
		{name: "Bad Port", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "port"},
		{name: "Missing Name", mutate: func(c *Config) { c.Database = "" }, wantErr: "name"},
		{name: "Bad SSL Mode", mutate: func(c *Config) { c.SSLMode = "always" }, wantErr: "SSL"},
		{name: "No Retry", mutate: func(c *Config) { c.RetryAttempts = 0 }, wantErr: "retry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestConfigDSN(t *testing.T) {
	assert.Equal(t,
		"host=localhost port=5432 user=wallet password=secret dbname=wallet sslmode=disable",
		validConfig().DSN())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 6543, ParsePort("6543"))
	assert.Equal(t, 5432, ParsePort(""))
	assert.Equal(t, 5432, ParsePort("abc"))
}
