package memory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Now returns the current time as an RFC3339 UTC string. All document
// timestamps use this format so that lexicographic order is chronological
// order; backup filenames and evolution timelines rely on that.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewID builds an identifier from a type prefix, a coarse timestamp, and a
// random suffix. Uniqueness is practical, not coordinated: the random suffix
// makes collisions within one second vanishingly unlikely for a single actor.
func NewID(prefix string) string {
	stamp := time.Now().UTC().Format("20060102150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, stamp, suffix)
}
