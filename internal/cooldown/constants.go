package cooldown

import "time"

// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
const DefaultCooldownDuration = 5 * time.Minute
