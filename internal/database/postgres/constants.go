package postgres

// Account queries
const (
	accountColumns = `account_key, username, coins, gems, xp, level, upgrades,
		total_picked, total_sold, total_earned, rare_fruits_found,
		last_pick_at, last_daily_at, last_steal_at, daily_streak,
		quests, achievements, version, created_at, updated_at`

	queryGetAccount = `SELECT ` + accountColumns + ` FROM accounts WHERE account_key = $1`

	queryInsertAccount = `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 1, $18, $19)
		ON CONFLICT (account_key) DO NOTHING`

	queryUpdateAccount = `
		UPDATE accounts SET
			username = $2, coins = $3, gems = $4, xp = $5, level = $6, upgrades = $7,
			total_picked = $8, total_sold = $9, total_earned = $10, rare_fruits_found = $11,
			last_pick_at = $12, last_daily_at = $13, last_steal_at = $14, daily_streak = $15,
			quests = $16, achievements = $17, updated_at = $18,
			version = version + 1
		WHERE account_key = $1 AND version = $19`

	queryAccountExists = `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_key = $1)`

	queryClearDailyQuests = `
		UPDATE accounts
		SET quests = quests - 'daily', version = version + 1, updated_at = NOW()
		WHERE quests ? 'daily'
		  AND (quests->'daily'->>'started_at')::timestamptz < $1`
)

// Leaderboard queries; %s is a column from leaderboardColumns
const (
	queryLeaderboard = `
		SELECT account_key, username, %s
		FROM accounts
		ORDER BY %s DESC, account_key ASC
		LIMIT $1`

	queryRank = `
		SELECT rank FROM (
			SELECT account_key, ROW_NUMBER() OVER (ORDER BY %s DESC, account_key ASC) AS rank
			FROM accounts
		) ranked
		WHERE account_key = $1`
)

// Fruit queries
const (
	fruitColumns = `fruit_id, owner_key, name, rarity, value, picked_at, sold, sold_at, sold_for`

	queryUnsoldFruits = `SELECT ` + fruitColumns + ` FROM fruits WHERE owner_key = $1 AND NOT sold ORDER BY seq`

	queryCountUnsoldFruits = `SELECT COUNT(*) FROM fruits WHERE owner_key = $1 AND NOT sold`

	querySalesSince = `SELECT ` + fruitColumns + ` FROM fruits WHERE sold AND sold_at >= $1 ORDER BY sold_at, seq`

	queryMarkFruitSold = `UPDATE fruits SET sold = TRUE, sold_at = $2, sold_for = $3 WHERE fruit_id = $1 AND NOT sold`

	queryTransferFruit = `UPDATE fruits SET owner_key = $3 WHERE fruit_id = $1 AND owner_key = $2 AND NOT sold`
)

// Market and guild queries
const (
	queryGetMarketState = `SELECT epoch, seed, rotated_at FROM market_state WHERE id = 1`

	querySaveMarketState = `
		INSERT INTO market_state (id, epoch, seed, rotated_at) VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET epoch = EXCLUDED.epoch, seed = EXCLUDED.seed, rotated_at = EXCLUDED.rotated_at`

	queryUpsertGuild = `
		INSERT INTO guilds (guild_id, name, channel_id, updated_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (guild_id) DO UPDATE SET name = EXCLUDED.name, channel_id = EXCLUDED.channel_id, updated_at = EXCLUDED.updated_at`

	queryGetGuild = `SELECT guild_id, name, channel_id, updated_at FROM guilds WHERE guild_id = $1`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgFailedToGetAccount        = "failed to get account"
	ErrMsgFailedToInsertAccount     = "failed to insert account"
	ErrMsgFailedToUpdateAccount     = "failed to update account"
	ErrMsgFailedToMarshalAccount    = "failed to marshal account"
	ErrMsgFailedToUnmarshalAccount  = "failed to unmarshal account"
	ErrMsgFailedToClearQuests       = "failed to clear daily quests"
	ErrMsgFailedToQueryLeaderboard  = "failed to query leaderboard"
	ErrMsgFailedToQueryRank         = "failed to query rank"
	ErrMsgFailedToInsertFruits      = "failed to insert fruits"
	ErrMsgFailedToQueryFruits       = "failed to query fruits"
	ErrMsgFailedToMarkFruitSold     = "failed to mark fruit sold"
	ErrMsgFailedToTransferFruit     = "failed to transfer fruit"
	ErrMsgFailedToParseFruitID      = "invalid fruit id"
	ErrMsgFailedToGetMarketState    = "failed to get market state"
	ErrMsgFailedToSaveMarketState   = "failed to save market state"
	ErrMsgFailedToUpsertGuild       = "failed to upsert guild"
	ErrMsgFailedToGetGuild          = "failed to get guild"
)

const fruitsTable = "fruits"
