package config

import "fmt"

type ServerConfig struct {
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
	BaseURL string `mapstructure:"base_url"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// FormURL is the public registration form address encoded into the QR code.
func (s *ServerConfig) FormURL() string {
	if s.BaseURL != "" {
		return s.BaseURL + "/form"
	}
	return fmt.Sprintf("http://%s/form", s.GetAddr())
}

type DatabaseConfig struct {
	Path          string `mapstructure:"path"`
	MaxRetries    int    `mapstructure:"max_retries"`
	RetryDelaySec int    `mapstructure:"retry_delay_sec"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// AdminConfig holds the single administrator identity. The password hash is a
// bcrypt hash supplied via config or CORPSBANK_ADMIN_PASSWORD_HASH.
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"`
	BcryptCost   int    `mapstructure:"bcrypt_cost"`
}

type SessionConfig struct {
	JWTSecret  string `mapstructure:"jwt_secret"`
	ExpMinutes int    `mapstructure:"exp_minutes"`
	CookieName string `mapstructure:"cookie_name"`
	Secure     bool   `mapstructure:"secure"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

type BackupConfig struct {
	Dir       string `mapstructure:"dir"`
	OnStartup bool   `mapstructure:"on_startup"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type QRConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
	Size    int    `mapstructure:"size"`
}
