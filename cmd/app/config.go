package main

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	envDevelopment = "development"
	envProduction  = "production"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`
	ClientURL   string `mapstructure:"CLIENT_URL"`
	TrustProxy  bool   `mapstructure:"TRUST_PROXY"`
	TLSCertFile string `mapstructure:"TLS_CERT_FILE"`
	TLSKeyFile  string `mapstructure:"TLS_KEY_FILE"`

	DBHost         string        `mapstructure:"POSTGRES_HOST"`
	DBPort         string        `mapstructure:"POSTGRES_PORT"`
	DBUser         string        `mapstructure:"POSTGRES_USER"`
	DBPassword     string        `mapstructure:"POSTGRES_PASSWORD"`
	DBName         string        `mapstructure:"POSTGRES_DB"`
	DBMaxOpenConns int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBMaxIdleTime  time.Duration `mapstructure:"DB_MAX_IDLE_TIME"`

	JWTSecret     string `mapstructure:"JWT_SECRET"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3Bucket    string `mapstructure:"S3_BUCKET"`
	S3PublicURL string `mapstructure:"S3_PUBLIC_URL"`
	S3Folder    string `mapstructure:"S3_FOLDER"`

	RateLimitEnabled  bool          `mapstructure:"RATE_LIMIT_ENABLED"`
	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
}

// every key needs a default, otherwise AutomaticEnv values are invisible to Unmarshal
var configDefaults = map[string]any{
	"PORT":                "5000",
	"ENVIRONMENT":         envDevelopment,
	"VERSION":             "1.0.0",
	"CLIENT_URL":          "http://localhost:3000",
	"TRUST_PROXY":         false,
	"TLS_CERT_FILE":       "",
	"TLS_KEY_FILE":        "",
	"POSTGRES_HOST":       "localhost",
	"POSTGRES_PORT":       "5432",
	"POSTGRES_USER":       "postgres",
	"POSTGRES_PASSWORD":   "",
	"POSTGRES_DB":         "gadgetpress",
	"DB_MAX_OPEN_CONNS":   10,
	"DB_MAX_IDLE_CONNS":   5,
	"DB_MAX_IDLE_TIME":    "15m",
	"JWT_SECRET":          "",
	"ADMIN_EMAIL":         "",
	"ADMIN_PASSWORD":      "",
	"S3_ENDPOINT":         "",
	"S3_REGION":           "us-east-1",
	"S3_ACCESS_KEY":       "",
	"S3_SECRET_KEY":       "",
	"S3_BUCKET":           "",
	"S3_PUBLIC_URL":       "",
	"S3_FOLDER":           "blog-images",
	"RATE_LIMIT_ENABLED":  true,
	"RATE_LIMIT_REQUESTS": 100,
	"RATE_LIMIT_WINDOW":   "15m",
}

// loadConfig reads the dotenv file at path when it exists. Environment
// variables win over the file.
func loadConfig(path string) (*Config, error) {
	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var pathErr *fs.PathError
			if !errors.As(err, &pathErr) {
				return nil, err
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	switch {
	case c.Port == "":
		return errors.New("PORT must be provided")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET must be provided")
	case c.Environment == envProduction && len(c.JWTSecret) < 32:
		return errors.New("JWT_SECRET must be at least 32 characters long in production")
	case c.Environment == envProduction && c.DBPassword == "":
		return errors.New("POSTGRES_PASSWORD must be provided in production")
	case c.RateLimitEnabled && (c.RateLimitRequests < 1 || c.RateLimitWindow <= 0):
		return fmt.Errorf("invalid rate limit %d per %s", c.RateLimitRequests, c.RateLimitWindow)
	case (c.TLSCertFile == "") != (c.TLSKeyFile == ""):
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE must be set together")
	}

	return nil
}

func (c *Config) isProduction() bool {
	return c.Environment == envProduction
}
