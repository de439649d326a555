// internal/app/features/organizations/update.go
package organizations

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

type updateRequest struct {
	Title       string `json:"title"`
	ContactInfo string `json:"contact_info"`
}

// HandleUpdate changes an organization's title and contact info. An
// empty title leaves the current one in place.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	org, err := h.Auth.UpdateOrganization(ctx, orgID, uid,
		htmlsanitize.Strip(req.Title),
		htmlsanitize.Strip(req.ContactInfo))
	if err != nil {
		h.Err.Respond(w, r, "update organization failed", err)
		return
	}

	apierrors.WriteJSON(w, http.StatusOK, org)
}
