// internal/app/system/timeouts/timeouts.go

// Package timeouts provides centralized timeout values for handler
// operations. Handlers pair these with context.WithTimeout so that no
// request-scoped database call can hang past its budget.
//
// Guidelines:
//   - Ping: health checks
//   - Short: single-document reads
//   - Medium: list queries and single-collection writes
//   - Long: multi-collection writes (create/destroy cascades)
package timeouts

import (
	"sync"
	"time"
)

const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

var (
	mu     sync.RWMutex
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Configure overrides the defaults. Zero values leave the current setting
// untouched. Call once during startup, before handlers are serving.
func Configure(pingD, shortD, mediumD, longD time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	if pingD > 0 {
		ping = pingD
	}
	if shortD > 0 {
		short = shortD
	}
	if mediumD > 0 {
		medium = mediumD
	}
	if longD > 0 {
		long = longD
	}
}

func Ping() time.Duration   { mu.RLock(); defer mu.RUnlock(); return ping }
func Short() time.Duration  { mu.RLock(); defer mu.RUnlock(); return short }
func Medium() time.Duration { mu.RLock(); defer mu.RUnlock(); return medium }
func Long() time.Duration   { mu.RLock(); defer mu.RUnlock(); return long }
