// internal/app/features/organizations/members.go
package organizations

import (
	"context"
	"net/http"
	"strconv"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/store/queries/orgmembers"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
)

// HandleListMembers lists an organization's members joined with their
// directory users, ordered by username.
//
// Query parameters:
//
//	page                     1-based page number
//	page_size                items per page; -1 returns the full list
//	active                   "true" hides tombstoned memberships and
//	                         deactivated accounts
//	contributed_to_projects  "true" adds each member's project count
func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requester(w, r); !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	opts := orgmembers.Options{}
	q := r.URL.Query()
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		opts.Page = v
	}
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil {
		opts.PageSize = v
	}
	if q.Get("active") == "true" {
		opts.ActiveOnly = true
		opts.ActiveUsersOnly = true
	}
	if q.Get("contributed_to_projects") == "true" {
		opts.WithContributions = true
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	members, err := h.Auth.ListMembers(ctx, orgID, opts)
	if err != nil {
		h.Err.Respond(w, r, "list members failed", err)
		return
	}
	if members == nil {
		members = []orgmembers.Member{}
	}

	apierrors.WriteJSON(w, http.StatusOK, members)
}
