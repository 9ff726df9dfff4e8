package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ServerPort   string
	GinMode      string
	IsProduction bool

	JwtSecret string
	Issuer    string
	TokenTTL  time.Duration

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	DbSSLMode  string

	LogLevel  string
	LogFormat string

	CORSOrigins []string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	MaxUploadSize  int64

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	AdminEmail    string
	AdminPassword string

	AuditRetentionDays        int
	NotificationRetentionDays int
)

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ServerPort = getEnv("SERVER_PORT", "8080")
	GinMode = getEnv("GIN_MODE", "release")
	IsProduction = getEnv("APP_ENV", "development") == "production"

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("JWT_ISSUER", "tracking-system")
	TokenTTL = getEnvDuration("JWT_TTL", 24*time.Hour)

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "tracking")
	DbSSLMode = getEnv("DB_SSLMODE", "disable")

	LogLevel = getEnv("LOG_LEVEL", "info")
	LogFormat = getEnv("LOG_FORMAT", "text")

	CORSOrigins = splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000"))

	RedisAddr = getEnv("REDIS_ADDR", "")
	RedisPassword = getEnv("REDIS_PASSWORD", "")
	RedisDB = getEnvInt("REDIS_DB", 0)

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minio")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minio123")
	MinioBucket = getEnv("MINIO_BUCKET", "tracking-attachments")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	MaxUploadSize = int64(getEnvInt("MAX_UPLOAD_MB", 10)) << 20

	SMTPHost = getEnv("SMTP_HOST", "")
	SMTPPort = getEnvInt("SMTP_PORT", 587)
	SMTPUsername = getEnv("SMTP_USERNAME", "")
	SMTPPassword = getEnv("SMTP_PASSWORD", "")
	SMTPFrom = getEnv("SMTP_FROM", "no-reply@tracking.local")

	AdminEmail = getEnv("ADMIN_EMAIL", "admin@tracking.local")
	AdminPassword = getEnv("ADMIN_PASSWORD", "")

	AuditRetentionDays = getEnvInt("AUDIT_RETENTION_DAYS", 30)
	NotificationRetentionDays = getEnvInt("NOTIFICATION_RETENTION_DAYS", 90)
}

// DSN builds the postgres connection string from the DB_* settings.
func DSN() string {
	return "host=" + DbHost +
		" port=" + DbPort +
		" user=" + DbUser +
		" password=" + DbPassword +
		" dbname=" + DbName +
		" sslmode=" + DbSSLMode
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
