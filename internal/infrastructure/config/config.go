package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Blockchain  BlockchainConfig `mapstructure:"blockchain"`
	HTTP        HTTPConfig       `mapstructure:"http"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BlockchainConfig contains the balance-query service settings
type BlockchainConfig struct {
	RPCURL         string        `mapstructure:"rpcUrl"`
	WalletAddress  string        `mapstructure:"walletAddress"`
	RequestTimeout time.Duration `mapstructure:"requestTimeout"` // seconds
	FailurePolicy  string        `mapstructure:"failurePolicy"`
}

// HTTPConfig contains settings of the global middleware chain
type HTTPConfig struct {
	CORSAllowedOrigins []string `mapstructure:"corsAllowedOrigins"`
	RateLimitRPS       float64  `mapstructure:"rateLimitRps"`
	RateLimitBurst     int      `mapstructure:"rateLimitBurst"`
}

// IsProduction reports whether the production profile is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// MissingKeys lists the required settings that have no value
func (c *Config) MissingKeys() []string {
	var missing []string
	required := []struct {
		key   string
		value string
	}{
		{"database.host", c.Database.Host},
		{"database.username", c.Database.Username},
		{"database.database", c.Database.Database},
		{"blockchain.rpcUrl (INFURA_GOERLI_URL)", c.Blockchain.RPCURL},
		{"blockchain.walletAddress (SAMPLE_WALLET_ADDRESS)", c.Blockchain.WalletAddress},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.key)
		}
	}
	return missing
}
