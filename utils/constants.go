// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis session cache keys.
const SessionCachePrefix = "chat:session:"

// DefaultSessionTTL is the fallback time-to-live for persisted sessions.
const DefaultSessionTTL = 2 * time.Hour
