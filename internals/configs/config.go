package configs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type DBConfig struct {
	URL         string
	User        string
	Password    string
	Host        string
	Port        string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// DSN returns DATABASE_URL when set, otherwise builds one from the parts.
func (d DBConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=jemaat&options=-c statement_timeout=3000",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// OSSConfig holds two key pairs: the public one (read side) and the
// privileged one used for server-side uploads.
type OSSConfig struct {
	Endpoint         string
	AccessKey        string
	SecretKey        string
	ServiceAccessKey string
	ServiceSecretKey string
	PublicBase       string
	DefaultBucket    string
}

// UploadCredentials prefers the privileged pair and falls back to the public one.
func (o OSSConfig) UploadCredentials() (string, string) {
	if o.ServiceAccessKey != "" && o.ServiceSecretKey != "" {
		return o.ServiceAccessKey, o.ServiceSecretKey
	}
	return o.AccessKey, o.SecretKey
}

func (o OSSConfig) Enabled() bool {
	ak, sk := o.UploadCredentials()
	return o.Endpoint != "" && ak != "" && sk != ""
}

type Config struct {
	Env               string
	Port              string
	DB                DBConfig
	JWTSecret         string
	JWTTTL            time.Duration
	OSS               OSSConfig
	QueryCacheSeconds int
	CORSOrigins       []string
	Timezone          string
}

func (c Config) IsDevelopment() bool { return c.Env == EnvDevelopment }

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found, using system environment")
	} else {
		zap.L().Info(".env file loaded")
	}
}

func Load() (Config, error) {
	LoadEnv()

	cfg := Config{
		Env:  strings.ToLower(GetEnv("APP_ENV", EnvProduction)),
		Port: GetEnv("PORT", "3000"),
		DB: DBConfig{
			URL:         GetEnv("DATABASE_URL"),
			User:        GetEnv("DB_USER"),
			Password:    GetEnv("DB_PASSWORD"),
			Host:        GetEnv("DB_HOST", "localhost"),
			Port:        GetEnv("DB_PORT", "5432"),
			Name:        GetEnv("DB_NAME"),
			SSLMode:     GetEnv("DB_SSLMODE", "require"),
			AutoMigrate: GetBool("DB_AUTO_MIGRATE", false),
		},
		JWTSecret: GetEnv("JWT_SECRET"),
		JWTTTL:    time.Duration(GetInt("JWT_TTL_HOURS", 12)) * time.Hour,
		OSS: OSSConfig{
			Endpoint:         GetEnv("ALI_OSS_ENDPOINT"),
			AccessKey:        GetEnv("ALI_OSS_ACCESS_KEY"),
			SecretKey:        GetEnv("ALI_OSS_SECRET_KEY"),
			ServiceAccessKey: GetEnv("ALI_OSS_SERVICE_ACCESS_KEY"),
			ServiceSecretKey: GetEnv("ALI_OSS_SERVICE_SECRET_KEY"),
			PublicBase:       GetEnv("ALI_OSS_PUBLIC_BASE"),
			DefaultBucket:    GetEnv("ALI_OSS_BUCKET"),
		},
		QueryCacheSeconds: GetInt("QUERY_CACHE_SECONDS", 60),
		CORSOrigins:       splitList(GetEnv("CORS_ORIGINS", "http://localhost:3000")),
		Timezone:          GetEnv("APP_TIMEZONE", "Asia/Jayapura"),
	}

	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET belum diset")
	}
	if cfg.DB.URL == "" && cfg.DB.Name == "" {
		return cfg, errors.New("DATABASE_URL atau DB_NAME belum diset")
	}
	return cfg, nil
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || strings.TrimSpace(value) == "") && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return strings.TrimSpace(value)
}

func GetInt(key string, def int) int {
	if v := GetEnv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func GetBool(key string, def bool) bool {
	if v := GetEnv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func splitList(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	log           *zap.Logger
}

func NewGormLogger(log *zap.Logger, level gormLogger.LogLevel) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
		log:           log.Named("gorm"),
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("caller", utils.FileWithLineNum()),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && !errors.Is(err, gormLogger.ErrRecordNotFound):
		l.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log.Warn("slow query", fields...)
	case l.LogLevel >= gormLogger.Info:
		l.log.Debug("query", fields...)
	}
}
