package profile

import "time"

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cached profiles
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cached profiles
const DefaultCacheTTL = 5 * time.Minute

// reservedUsernames collide with routes or read as staff accounts
var reservedUsernames = []string{
	"admin",
	"administrator",
	"api",
	"me",
	"moderator",
	"root",
	"sceneit",
	"support",
	"system",
}
