package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Data      DataConfig      `yaml:"data"`
	Auth      AuthConfig      `yaml:"auth"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Log       LogConfig       `yaml:"log"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Backup    BackupConfig    `yaml:"backup"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DataConfig locates the directory holding the CSV data files
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// AuthConfig contains the operator account and session settings. Password
// may be given as a bcrypt hash (preferred) or plaintext for dev setups.
type AuthConfig struct {
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	PasswordHash    string `yaml:"password_hash"`
	SessionSecret   string `yaml:"session_secret"`
	SessionTTLHours int    `yaml:"session_ttl_hours"`
}

// SMTPConfig contains email settings for reminder mails
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	// OperatorEmail receives the overdue-rental reminder summaries.
	OperatorEmail string `yaml:"operator_email"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	OverdueRentalReminders string `yaml:"overdue_rental_reminders"`
	BackupDataFiles        string `yaml:"backup_data_files"`
}

// BackupConfig locates the directory receiving nightly zip backups
type BackupConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("DATA_DIR"); val != "" {
		c.Data.Dir = val
	}
	if val := os.Getenv("ADMIN_USERNAME"); val != "" {
		c.Auth.Username = val
	}
	if val := os.Getenv("ADMIN_PASSWORD"); val != "" {
		c.Auth.Password = val
	}
	if val := os.Getenv("ADMIN_PASSWORD_HASH"); val != "" {
		c.Auth.PasswordHash = val
	}
	if val := os.Getenv("SESSION_SECRET"); val != "" {
		c.Auth.SessionSecret = val
	}
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("BACKUP_DIR"); val != "" {
		c.Backup.Dir = val
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Backup.Dir == "" {
		c.Backup.Dir = "backups"
	}

	if c.Auth.Username == "" {
		return fmt.Errorf("auth username is required")
	}
	if c.Auth.Password == "" && c.Auth.PasswordHash == "" {
		return fmt.Errorf("auth password or password_hash is required")
	}
	if c.Auth.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters")
	}
	if c.Auth.SessionTTLHours == 0 {
		c.Auth.SessionTTLHours = 24
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	// Scheduler defaults (seconds-precision cron expressions, UTC)
	if c.Scheduler.OverdueRentalReminders == "" {
		c.Scheduler.OverdueRentalReminders = "0 0 7 * * *" // 7 AM UTC
	}
	if c.Scheduler.BackupDataFiles == "" {
		c.Scheduler.BackupDataFiles = "0 30 1 * * *" // 1:30 AM UTC
	}

	return nil
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
