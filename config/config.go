package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment  string
	Name         string
	Version      string
	HTTP         HTTPConfig
	Postgres     PostgresConfig
	JWT          JWTConfig
	S3           S3Config
	Availability AvailabilityConfig
	Studio       StudioConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxHeaderMB  int
}

type PostgresConfig struct {
	Host               string
	Port               string
	Username           string
	Password           string
	DBName             string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	MaxLifetime        time.Duration
}

type JWTConfig struct {
	SigningKey      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type S3Config struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
	UseSSL          bool
}

// AvailabilityConfig задает параметры движка доступности.
// SessionDuration — окно занятости одного слота (исторически 2 часа,
// вынесено в настройку).
type AvailabilityConfig struct {
	SessionDuration time.Duration
	CacheTTL        time.Duration
	SyncWindowDays  int
	CalDAVTimeout   time.Duration
}

// StudioConfig описывает студию. EventMarker используется для распознавания
// собственных событий в внешнем календаре, чтобы синхронизированные брони
// не блокировали сами себя.
type StudioConfig struct {
	Name        string
	EventMarker string
	Location    string
}

func NewConfig() (*Config, error) {
	// .env необязателен, переменные окружения имеют приоритет
	_ = godotenv.Load()

	httpReadTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	httpWriteTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	postgresMaxLifetime, err := time.ParseDuration(getEnv("POSTGRES_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, err
	}

	jwtAccessTokenTTL, err := time.ParseDuration(getEnv("JWT_ACCESS_TOKEN_TTL", "15m"))
	if err != nil {
		return nil, err
	}

	jwtRefreshTokenTTL, err := time.ParseDuration(getEnv("JWT_REFRESH_TOKEN_TTL", "24h"))
	if err != nil {
		return nil, err
	}

	sessionDuration, err := time.ParseDuration(getEnv("AVAILABILITY_SESSION_DURATION", "2h"))
	if err != nil {
		return nil, err
	}

	cacheTTL, err := time.ParseDuration(getEnv("AVAILABILITY_CACHE_TTL", "15m"))
	if err != nil {
		return nil, err
	}

	caldavTimeout, err := time.ParseDuration(getEnv("CALDAV_TIMEOUT", "10s"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Name:        getEnv("APP_NAME", "silwer"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		HTTP: HTTPConfig{
			Port:         getEnv("HTTP_PORT", "8080"),
			ReadTimeout:  httpReadTimeout,
			WriteTimeout: httpWriteTimeout,
			MaxHeaderMB:  getEnvAsInt("HTTP_MAX_HEADER_MB", 1),
		},
		Postgres: PostgresConfig{
			Host:               getEnv("POSTGRES_HOST", "localhost"),
			Port:               getEnv("POSTGRES_PORT", "5432"),
			Username:           getEnv("POSTGRES_USER", "postgres"),
			Password:           getEnv("POSTGRES_PASSWORD", "postgres"),
			DBName:             getEnv("POSTGRES_DB", "silwer"),
			SSLMode:            getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConnections:     getEnvAsInt("POSTGRES_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			MaxLifetime:        postgresMaxLifetime,
		},
		JWT: JWTConfig{
			SigningKey:      getEnv("JWT_SIGNING_KEY", "your_secret_key"),
			AccessTokenTTL:  jwtAccessTokenTTL,
			RefreshTokenTTL: jwtRefreshTokenTTL,
		},
		S3: S3Config{
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "auto"),
			AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
			Bucket:          getEnv("S3_BUCKET", "silwer-media"),
			PublicURL:       getEnv("S3_PUBLIC_URL", ""),
			UseSSL:          getEnv("S3_USE_SSL", "true") == "true",
		},
		Availability: AvailabilityConfig{
			SessionDuration: sessionDuration,
			CacheTTL:        cacheTTL,
			SyncWindowDays:  getEnvAsInt("CALENDAR_SYNC_WINDOW_DAYS", 120),
			CalDAVTimeout:   caldavTimeout,
		},
		Studio: StudioConfig{
			Name:        getEnv("STUDIO_NAME", "Silwer Lining Photography"),
			EventMarker: getEnv("STUDIO_EVENT_MARKER", "silwerlining"),
			Location:    getEnv("STUDIO_LOCATION", "Silwer Lining Photography Studio, Helderkruin, Roodepoort"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value := 0
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}

	return value
}
