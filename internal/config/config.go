package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"impactio/internal/dashboard"
)

const (
	DefaultPath = "config/config.yaml"
	PathEnv     = "DASHBOARD_CONFIG"
)

type ServerConfig struct {
	Port         int    `yaml:"port"`
	LoginPath    string `yaml:"login_path"`
	SecureCookie bool   `yaml:"secure_cookie"`
}

type DatabaseConfig struct {
	DSN          string        `yaml:"url"`
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DisplayConfig struct {
	DateLayout string        `yaml:"date_layout"`
	TimeZone   string        `yaml:"time_zone"`
	FilterTTL  time.Duration `yaml:"filter_ttl"`
	FontPath   string        `yaml:"font_path"`
}

type EmailConfig struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     int    `yaml:"smtp_port"`
	SMTPUser     string `yaml:"smtp_user"`
	SMTPPassword string `yaml:"smtp_password"`
	FromEmail    string `yaml:"from_email"`
}

// Enabled: без хоста почта не отправляется
func (e EmailConfig) Enabled() bool {
	return e.SMTPHost != "" && e.FromEmail != ""
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != 0
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Redis    RedisConfig    `yaml:"redis"`
	Display  DisplayConfig  `yaml:"display"`
	Email    EmailConfig    `yaml:"email"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads .env (if any), the YAML file and the env overrides, then fills defaults.
// An empty path means DASHBOARD_CONFIG or config/config.yaml.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// без файла работаем на env и дефолтах
	case err != nil:
		return nil, eris.Wrapf(err, "config: open %s", path)
	default:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, eris.Wrapf(err, "config: parse %s", path)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Email.SMTPPassword, "SMTP_PASSWORD")

	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return eris.Wrapf(err, "config: PORT=%q", v)
		}
		c.Server.Port = port
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.LoginPath == "" {
		c.Server.LoginPath = "/"
	}
	if c.Database.QueryTimeout <= 0 {
		c.Database.QueryTimeout = 10 * time.Second
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.Display.DateLayout == "" {
		c.Display.DateLayout = dashboard.DefaultDateFormat.Layout
	}
	if c.Display.TimeZone == "" {
		c.Display.TimeZone = "UTC"
	}
	if c.Display.FilterTTL <= 0 {
		c.Display.FilterTTL = 24 * time.Hour
	}
	if c.Email.SMTPPort == 0 {
		c.Email.SMTPPort = 587
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return eris.New("config: database.url (or DATABASE_URL) is required")
	}
	if c.Auth.JWTSecret == "" {
		return eris.New("config: auth.jwt_secret (or JWT_SECRET) is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return eris.Errorf("config: invalid port %d", c.Server.Port)
	}
	if _, err := time.LoadLocation(c.Display.TimeZone); err != nil {
		return eris.Wrapf(err, "config: display.time_zone %q", c.Display.TimeZone)
	}
	return nil
}

// DateFormat builds the table/export date formatter. Validate has already checked the zone.
func (c *Config) DateFormat() dashboard.DateFormat {
	loc, err := time.LoadLocation(c.Display.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	return dashboard.DateFormat{Layout: c.Display.DateLayout, Location: loc}
}

func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)
	return nil
}
