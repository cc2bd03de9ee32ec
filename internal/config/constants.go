package config

import "time"

const (
	// Catalog and schema paths, relative to the working directory
	ConfigPathQuestPool          = "configs/quests/quest_pool.json"
	ConfigPathAchievements       = "configs/achievements/achievements.json"
	ConfigPathQuestPoolSchema    = "configs/schemas/quest_pool.schema.json"
	ConfigPathAchievementsSchema = "configs/schemas/achievements.schema.json"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "orchard-api"
	DefaultVersion           = "dev"
	DefaultDBName            = "orchard"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
	DefaultLogDir            = "logs"
	DefaultEventMaxRetries   = 5
	DefaultEventRetryDelay   = 2 * time.Second
	DefaultDeadLetterPath    = "logs/event_deadletter.jsonl"
	DefaultMarketRotation    = 6 * time.Hour
	DefaultFruitStorm        = 4 * time.Hour
	DefaultFruitStormChance  = 0.3
	DefaultWorkerCount       = 4
	DefaultAPIURL            = "http://localhost:8080"
	DefaultBotHealthPort     = "8082"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
