// internal/app/features/organizations/create.go
package organizations

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

type createRequest struct {
	Title       string `json:"title"`
	ContactInfo string `json:"contact_info"`
}

// HandleCreate creates an organization. The creator becomes its owner in
// the same atomic unit, so a 201 always means the owner membership exists.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	org, err := h.Auth.CreateOrganization(ctx,
		htmlsanitize.Strip(req.Title),
		htmlsanitize.Strip(req.ContactInfo),
		uid)
	if err != nil {
		h.Err.Respond(w, r, "create organization failed", err)
		return
	}

	apierrors.WriteJSON(w, http.StatusCreated, org)
}
