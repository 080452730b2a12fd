package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the full application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	JWT        JWTConfig        `yaml:"jwt"`
	Security   SecurityConfig   `yaml:"security"`
	Logging    LoggingConfig    `yaml:"logging"`
	Seed       SeedConfig       `yaml:"seed"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port int    `yaml:"port"`
	Mode string `yaml:"mode"` // debug, release or test
}

// DatabaseConfig holds PostgreSQL connection settings
type DatabaseConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	User            string `yaml:"user"`
	Password        string `yaml:"password"`
	DBName          string `yaml:"dbname"`
	SSLMode         string `yaml:"sslmode"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry string `yaml:"access_token_expiry"`
	Issuer            string `yaml:"issuer"`
}

// SecurityConfig holds password hashing settings
type SecurityConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Pretty bool   `yaml:"pretty"`
}

// SeedConfig holds the first-superuser bootstrap credentials
type SeedConfig struct {
	FirstSuperuserEmail    string `yaml:"first_superuser_email"`
	FirstSuperuserPassword string `yaml:"first_superuser_password"`
}

// MigrationsConfig holds migration settings
type MigrationsConfig struct {
	Dir string `yaml:"dir"`
}

// LoadConfig reads configuration from a YAML file and applies environment
// variable overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
			Mode: "debug",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			Password:        "postgres",
			DBName:          "acadapi",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "5m",
		},
		JWT: JWTConfig{
			AccessTokenExpiry: "8h",
			Issuer:            "acadapi",
		},
		Security: SecurityConfig{
			BcryptCost: 12,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: false,
		},
		Migrations: MigrationsConfig{
			Dir: "./migrations",
		},
	}
}

// applyEnvOverrides lets deployment environments override file values without
// editing the config file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.DBName = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	if v := os.Getenv("JWT_ACCESS_TOKEN_EXPIRY"); v != "" {
		cfg.JWT.AccessTokenExpiry = v
	}
	if v := os.Getenv("FIRST_SUPERUSER_EMAIL"); v != "" {
		cfg.Seed.FirstSuperuserEmail = v
	}
	if v := os.Getenv("FIRST_SUPERUSER_PASSWORD"); v != "" {
		cfg.Seed.FirstSuperuserPassword = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			cfg.Security.BcryptCost = cost
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		cfg.Migrations.Dir = v
	}
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret must be set (config file or JWT_SECRET)")
	}
	if _, err := time.ParseDuration(c.JWT.AccessTokenExpiry); err != nil {
		return fmt.Errorf("invalid jwt access token expiry %q: %w", c.JWT.AccessTokenExpiry, err)
	}
	if _, err := time.ParseDuration(c.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database conn max lifetime %q: %w", c.Database.ConnMaxLifetime, err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("invalid bcrypt cost %d", c.Security.BcryptCost)
	}
	return nil
}

// AccessTokenExpiry returns the parsed token lifetime. Validate must have
// succeeded first.
func (c *Config) AccessTokenExpiry() time.Duration {
	d, _ := time.ParseDuration(c.JWT.AccessTokenExpiry)
	return d
}

// GetPostgresConnectionString builds the pgx connection string
func (c *Config) GetPostgresConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}
