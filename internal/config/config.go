package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	APIKey         string   // API key for authentication
	DevMode        bool     // bypasses cooldowns
	TrustedProxies []string // remote addresses allowed to set X-Forwarded-For
	Storage        string   // postgres or memory

	LogDir string // empty disables the session log file

	EventMaxRetries       int
	EventRetryDelay       time.Duration
	EventDeadLetterPath   string
	QuestConfigPath       string
	AchievementConfigPath string

	MarketRotationInterval time.Duration
	FruitStormInterval     time.Duration
	FruitStormChance       float64
	WorkerCount            int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		APIKey:  getEnv("API_KEY", ""),
		DevMode: getEnvAsBool("DEV_MODE", false),
		Storage: strings.ToLower(getEnv("STORAGE", StoragePostgres)),

		LogDir: getEnv("LOG_DIR", DefaultLogDir),

		EventMaxRetries:       getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:       getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath:   getEnv("EVENT_DEAD_LETTER_PATH", DefaultDeadLetterPath),
		QuestConfigPath:       getEnv("QUEST_CONFIG_PATH", ConfigPathQuestPool),
		AchievementConfigPath: getEnv("ACHIEVEMENT_CONFIG_PATH", ConfigPathAchievements),

		MarketRotationInterval: getEnvAsDuration("MARKET_ROTATION_INTERVAL", DefaultMarketRotation),
		FruitStormInterval:     getEnvAsDuration("FRUIT_STORM_INTERVAL", DefaultFruitStorm),
		FruitStormChance:       getEnvAsFloat("FRUIT_STORM_CHANCE", DefaultFruitStormChance),
		WorkerCount:            getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf("invalid STORAGE %q: must be %s or %s", cfg.Storage, StoragePostgres, StorageMemory)
	}
	if cfg.FruitStormChance < 0 || cfg.FruitStormChance > 1 {
		return nil, fmt.Errorf("invalid FRUIT_STORM_CHANCE %v: must be between 0 and 1", cfg.FruitStormChance)
	}

	return cfg, nil
}

// LoadDB loads only the database settings, for tools that never serve the API
func LoadDB() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		Storage:           StoragePostgres,
	}
}

// BotConfig holds the Discord bot configuration
type BotConfig struct {
	Token              string
	AppID              string
	APIURL             string
	APIKey             string
	RedisAddr          string // empty selects the in-memory session store
	RedisPassword      string
	RedisDB            int
	HealthPort         string
	ForceCommandUpdate bool
	LogLevel           string
	LogFormat          string
	Environment        string
}

// LoadBot loads the bot configuration from environment variables
func LoadBot() (*BotConfig, error) {
	_ = godotenv.Load()

	cfg := &BotConfig{
		Token:              getEnv("DISCORD_TOKEN", ""),
		AppID:              getEnv("DISCORD_APP_ID", ""),
		APIURL:             getEnv("API_URL", DefaultAPIURL),
		APIKey:             getEnv("API_KEY", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		HealthPort:         getEnv("DISCORD_HEALTH_PORT", DefaultBotHealthPort),
		ForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),
		LogLevel:           getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:        getEnv("ENVIRONMENT", DefaultEnvironment),
	}

	if cfg.Token == "" || cfg.AppID == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN and DISCORD_APP_ID must be set")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}
	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	v, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return c.connString(c.DBName)
}

// GetServerConnString points at the maintenance database, for creating or
// dropping the application database
func (c *Config) GetServerConnString() string {
	return c.connString("postgres")
}

func (c *Config) connString(db string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		db,
	)
}
