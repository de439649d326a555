// internal/app/features/login/handler.go

// Package login is the session entry/exit surface of the JSON API:
// password login against the user directory, and logout. Nothing here
// touches memberships; it only establishes who the caller is.
package login

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	userstore "github.com/dalemusser/labelhub/internal/app/store/users"
	"github.com/dalemusser/labelhub/internal/app/system/auth"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	ErrLog     *apierrors.ErrorLogger
	Users      *userstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		ErrLog:     apierrors.NewErrorLogger(logger),
		Users:      userstore.New(db),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Superuser bool   `json:"superuser"`
}

// HandleLogin verifies email+password against the directory and writes
// the session cookie. Unknown account, wrong password, and deactivated
// account all read the same to the caller.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		apierrors.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, ok, err := h.Users.VerifyPassword(ctx, email, req.Password)
	if err != nil {
		h.ErrLog.Respond(w, r, "login lookup failed", err)
		return
	}
	if !ok {
		apierrors.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	su := auth.SessionUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Superuser: u.Superuser,
	}
	if err := h.SessionMgr.SignIn(w, r, su); err != nil {
		h.ErrLog.Respond(w, r, "session save failed", err)
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", su.ID))
	apierrors.WriteJSON(w, http.StatusOK, loginResponse(su))
}

// HandleLogout clears the session cookie. Always 204, signed in or not.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("session clear failed", zap.Error(err))
	}
	apierrors.NoContent(w)
}
