package config

import (
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Telegram TelegramConfig
	Worker   WorkerConfig
	Sync     SyncConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type TelegramConfig struct {
	Token         string
	WebhookSecret string
	ChannelID     int64
	// SearchTTL is how long the "waiting for speciality search text" mark lives.
	SearchTTL time.Duration
}

type WorkerConfig struct {
	PoolSize  int
	QueueSize int
}

type SyncConfig struct {
	Interval   time.Duration
	RetryDelay time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	searchTTL, err := time.ParseDuration(viper.GetString("TELEGRAM_SEARCH_TTL"))
	if err != nil {
		searchTTL = time.Hour
	}

	syncInterval, err := time.ParseDuration(viper.GetString("SYNC_INTERVAL"))
	if err != nil {
		syncInterval = time.Hour
	}

	syncRetryDelay, err := time.ParseDuration(viper.GetString("SYNC_RETRY_DELAY"))
	if err != nil {
		syncRetryDelay = 5 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: cast.ToString(getOrDefault("APP_PORT", "8000")),
			Env:  cast.ToString(getOrDefault("APP_ENV", "development")),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Telegram: TelegramConfig{
			Token:         viper.GetString("TELEGRAM_TOKEN"),
			WebhookSecret: viper.GetString("TELEGRAM_WEBHOOK_SECRET"),
			ChannelID:     viper.GetInt64("TELEGRAM_CHANNEL_ID"),
			SearchTTL:     searchTTL,
		},
		Worker: WorkerConfig{
			PoolSize:  cast.ToInt(getOrDefault("WORKER_POOL_SIZE", 4)),
			QueueSize: cast.ToInt(getOrDefault("WORKER_QUEUE_SIZE", 256)),
		},
		Sync: SyncConfig{
			Interval:   syncInterval,
			RetryDelay: syncRetryDelay,
		},
	}

	return config, nil
}

func getOrDefault(key string, fallback interface{}) interface{} {
	if viper.IsSet(key) {
		return viper.Get(key)
	}
	return fallback
}
