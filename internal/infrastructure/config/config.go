package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "corpsbank/internal/shared/config"
)

type Config struct {
	Server   sharedConfig.ServerConfig   `mapstructure:"server"`
	Database sharedConfig.DatabaseConfig `mapstructure:"database"`
	Logger   sharedConfig.LoggerConfig   `mapstructure:"logger"`
	Admin    sharedConfig.AdminConfig    `mapstructure:"admin"`
	Session  sharedConfig.SessionConfig  `mapstructure:"session"`
	Email    sharedConfig.EmailConfig    `mapstructure:"email"`
	Backup   sharedConfig.BackupConfig   `mapstructure:"backup"`
	Export   sharedConfig.ExportConfig   `mapstructure:"export"`
	QR       sharedConfig.QRConfig       `mapstructure:"qr"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("CORPSBANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; defaults plus env cover a bare deployment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "")

	// Database defaults
	viper.SetDefault("database.path", "instance/corpsbank.db")
	viper.SetDefault("database.max_retries", 3)
	viper.SetDefault("database.retry_delay_sec", 1)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Admin defaults; the password hash must be supplied via config file or
	// CORPSBANK_ADMIN_PASSWORD_HASH
	viper.SetDefault("admin.username", "admin")
	viper.SetDefault("admin.password_hash", "")
	viper.SetDefault("admin.bcrypt_cost", 12)

	// Session defaults
	viper.SetDefault("session.jwt_secret", "change-me-in-production")
	viper.SetDefault("session.exp_minutes", 60)
	viper.SetDefault("session.cookie_name", "corpsbank_session")
	viper.SetDefault("session.secure", false)

	// Email defaults
	viper.SetDefault("email.smtp_host", "localhost")
	viper.SetDefault("email.smtp_port", 1025)
	viper.SetDefault("email.smtp_user", "")
	viper.SetDefault("email.smtp_password", "")
	viper.SetDefault("email.from_address", "noreply@corpsbank.local")
	viper.SetDefault("email.from_name", "Corps Bank Registration")

	// Backup defaults
	viper.SetDefault("backup.dir", "instance/backups")
	viper.SetDefault("backup.on_startup", true)

	// Export defaults
	viper.SetDefault("export.dir", "instance")

	// QR defaults
	viper.SetDefault("qr.enabled", true)
	viper.SetDefault("qr.path", "static/qr_code.png")
	viper.SetDefault("qr.size", 256)
}
