// internal/app/features/organizations/handler.go

// Package organizations is the JSON API surface for the membership
// lifecycle: create/update/destroy organizations, list members, add and
// soft-delete members, grant and revoke admin. All rule enforcement
// lives in the authority package; handlers only parse, delegate, and
// translate.
package organizations

import (
	"github.com/dalemusser/labelhub/internal/app/authority"
	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Organizations.
type Handler struct {
	DB   *mongo.Database
	Auth *authority.Authority
	Err  *apierrors.ErrorLogger
	Log  *zap.Logger
}

// NewHandler constructs an Organizations handler bound to a DB and logger.
func NewHandler(db *mongo.Database, auth *authority.Authority, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Auth: auth,
		Err:  apierrors.NewErrorLogger(logger),
		Log:  logger,
	}
}
