// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/labelhub/internal/app/authority"
	healthfeature "github.com/dalemusser/labelhub/internal/app/features/health"
	loginfeature "github.com/dalemusser/labelhub/internal/app/features/login"
	organizationsfeature "github.com/dalemusser/labelhub/internal/app/features/organizations"
	"github.com/dalemusser/labelhub/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. LabelHub applies session
// middleware globally and mounts the JSON feature routers: health,
// login/logout, and the organizations membership API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	membership := authority.New(deps.MongoDatabase, logger, nil)

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/", loginfeature.Routes(loginHandler))

	// Membership management API
	orgHandler := organizationsfeature.NewHandler(deps.MongoDatabase, membership, logger)
	r.Mount("/api/organizations", organizationsfeature.Routes(orgHandler, sessionMgr))

	return r, nil
}
