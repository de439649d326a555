// internal/app/features/organizations/addmember.go
package organizations

import (
	"context"
	"encoding/json"
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type addMemberRequest struct {
	UserID string `json:"user_id"`
}

// HandleAddMember adds a directory user as a plain member. Adding an
// existing active member succeeds without changing anything.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	uid, ok := requester(w, r)
	if !ok {
		return
	}
	orgID, ok := orgIDParam(w, r)
	if !ok {
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		apierrors.WriteError(w, http.StatusBadRequest, "invalid user_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Auth.AddMember(ctx, orgID, uid, targetID); err != nil {
		h.Err.Respond(w, r, "add member failed", err)
		return
	}

	apierrors.NoContent(w)
}
