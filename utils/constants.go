// File: utils/constants.go
package utils

import "time"

// TutorCachePrefix is the prefix used for Redis tutor profile cache keys.
const TutorCachePrefix = "tutor:"

// TutorCacheTTL is the time-to-live for cached tutor profiles.
const TutorCacheTTL = 10 * time.Minute
