package bootstrap

import (
	"fmt"

	"github.com/punaab/discord-ts-UQkA/internal/account"
	"github.com/punaab/discord-ts-UQkA/internal/concurrency"
	"github.com/punaab/discord-ts-UQkA/internal/config"
	"github.com/punaab/discord-ts-UQkA/internal/cooldown"
	"github.com/punaab/discord-ts-UQkA/internal/economy"
	"github.com/punaab/discord-ts-UQkA/internal/event"
	"github.com/punaab/discord-ts-UQkA/internal/orchard"
	"github.com/punaab/discord-ts-UQkA/internal/quest"
	"github.com/punaab/discord-ts-UQkA/internal/server"
	"github.com/punaab/discord-ts-UQkA/internal/steal"
	"github.com/punaab/discord-ts-UQkA/internal/utils"
	"github.com/punaab/discord-ts-UQkA/internal/validation"
)

// CatalogPaths locates the quest pool and achievement catalogs and their schemas
type CatalogPaths struct {
	QuestPool         string
	QuestSchema       string
	Achievements      string
	AchievementSchema string
}

// CatalogPathsFromConfig uses the configured catalog files and the bundled schemas
func CatalogPathsFromConfig(cfg *config.Config) CatalogPaths {
	return CatalogPaths{
		QuestPool:         cfg.QuestConfigPath,
		QuestSchema:       config.ConfigPathQuestPoolSchema,
		Achievements:      cfg.AchievementConfigPath,
		AchievementSchema: config.ConfigPathAchievementsSchema,
	}
}

// InitializeServices builds the game services on top of storage. Every
// service shares one account manager so per-account serialization holds
// across them, and one random source seeded from crypto/rand.
func InitializeServices(storage *Storage, paths CatalogPaths, devMode bool, publisher event.Publisher) (server.Services, error) {
	catalog, err := quest.LoadCatalog(validation.NewSchemaValidator(),
		paths.QuestPool, paths.QuestSchema, paths.Achievements, paths.AchievementSchema)
	if err != nil {
		return server.Services{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return NewServices(storage, catalog, utils.NewRandom(utils.SecureSeed()), devMode, publisher), nil
}

// NewServices wires the services from an already loaded catalog
func NewServices(storage *Storage, catalog *quest.Catalog, rnd utils.Random, devMode bool, publisher event.Publisher) server.Services {
	accounts := account.NewManager(storage.Repos.Accounts, concurrency.NewLockManager())
	cooldowns := cooldown.NewService(cooldown.Config{DevMode: devMode})
	tracker := quest.NewTracker(catalog, rnd)

	return server.Services{
		Orchard: orchard.NewService(accounts, storage.Repos, cooldowns, economy.NewRewardRoller(rnd), tracker, publisher),
		Quests:  quest.NewService(accounts, storage.Repos.Accounts, tracker, publisher),
		Steal:   steal.NewService(accounts, storage.Repos.Inventory, cooldowns, steal.NewAdjudicator(rnd), publisher),
	}
}
