// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for LabelHub. These are
// loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: LABELHUB_MONGO_URI, LABELHUB_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "labelhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "labelhub-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	{Name: "timeout_ping", Default: "2s", Desc: "Deadline for health-check pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document reads"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for list queries and single-collection writes"},
	{Name: "timeout_long", Default: "30s", Desc: "Deadline for multi-collection create/destroy units"},
}

// LoadConfig loads WAFFLE core config and app-specific config. It is
// called early in startup so that both WAFFLE and the app have access to
// configuration before any backends or handlers are built. Merging
// precedence: flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "LABELHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		TimeoutPing:   appValues.Duration("timeout_ping", timeouts.DefaultPing),
		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),
		TimeoutLong:   appValues.Duration("timeout_long", timeouts.DefaultLong),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation. LabelHub
// validates the MongoDB URI format to catch configuration errors early,
// before attempting to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if appCfg.MongoDatabase == "" {
		return fmt.Errorf("mongo_database must not be empty")
	}
	return nil
}
