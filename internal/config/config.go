package config

import (
	"flag"
	"regexp"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN       string `env:"DATABASE_URI"`
	AuthSecret        string `env:"AUTH_SECRET"`
	StorageDir        string `env:"STORAGE_DIR"`
	AllowedExtensions string `env:"ALLOWED_EXTENSIONS"`
	UploadMaxSizeMB   int    `env:"UPLOAD_MAX_MB"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	ServerURL string `env:"-"`
}

// defaultAuthSecret — встроенная заглушка на случай незаданного AUTH_SECRET.
// Известная дыра: с ней сессионные токены подделываются кем угодно,
// сервер обязан предупреждать об этом при старте.
const defaultAuthSecret = "dev-secret-key"

const defaultAllowedExtensions = ".txt,.pdf,.png,.jpg,.jpeg,.gif,.zip,.csv,.md,.doc,.docx"

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// flags работают ТОЛЬКО если переменные из env не заданы
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (postgres DSN или путь к файлу SQLite)")
	flag.StringVar(&cfg.AuthSecret, "auth-secret", cfg.AuthSecret, "секрет для подписи сессионной cookie")
	flag.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "каталог обмена файлами")
	flag.StringVar(&cfg.AllowedExtensions, "allowed-ext", cfg.AllowedExtensions, "разрешённые расширения файлов через запятую")
	flag.IntVar(&cfg.UploadMaxSizeMB, "upload-max-mb", cfg.UploadMaxSizeMB, "максимальный размер загружаемого файла, МБ")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "адрес сервера в виде host:port")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS")

	flag.Parse()

	// Defaults
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "fileshare.db"
	}
	if cfg.AuthSecret == "" {
		cfg.AuthSecret = defaultAuthSecret
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = "shared_files"
	}
	if cfg.AllowedExtensions == "" {
		cfg.AllowedExtensions = defaultAllowedExtensions
	}
	if cfg.UploadMaxSizeMB <= 0 {
		cfg.UploadMaxSizeMB = 50
	}

	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	hostPortRe := regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8080"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	return cfg
}

// UsesDefaultAuthSecret истинно, когда секрет не задан и работает заглушка.
func (c *Config) UsesDefaultAuthSecret() bool {
	return c.AuthSecret == defaultAuthSecret
}

// AllowedExtensionList разбирает AllowedExtensions в срез расширений.
func (c *Config) AllowedExtensionList() []string {
	parts := strings.Split(c.AllowedExtensions, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}
