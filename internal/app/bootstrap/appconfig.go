// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to LabelHub. Values
// come from config files, LABELHUB_* environment variables, or flags,
// loaded in LoadConfig.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: labelhub-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Per-class operation deadlines; see system/timeouts
	TimeoutPing   time.Duration
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
