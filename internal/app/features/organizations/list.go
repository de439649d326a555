// internal/app/features/organizations/list.go
package organizations

import (
	"context"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
	"github.com/dalemusser/labelhub/internal/domain/models"
)

// HandleListMine lists the organizations the caller actively belongs to,
// ordered by title. Tombstoned memberships do not appear.
func (h *Handler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	orgs, err := h.Auth.ListOrganizationsForUser(ctx, uid)
	if err != nil {
		h.Err.Respond(w, r, "list organizations failed", err)
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}

	apierrors.WriteJSON(w, http.StatusOK, orgs)
}
