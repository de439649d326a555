// internal/app/features/organizations/resettoken.go
package organizations

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

type tokenResponse struct {
	Token string `json:"token"`
}

// HandleResetToken rotates the organization's invite token. Old invite
// links die immediately; the new token comes back in the response.
func (h *Handler) HandleResetToken(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	token, err := h.Auth.ResetToken(ctx, orgID, uid)
	if err != nil {
		h.Err.Respond(w, r, "reset token failed", err)
		return
	}

	apierrors.WriteJSON(w, http.StatusCreated, tokenResponse{Token: token})
}
