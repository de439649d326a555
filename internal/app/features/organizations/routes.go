// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/dalemusser/labelhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Organization routes under the base path
// (typically "/api/organizations" from bootstrap). Everything requires a
// signed-in caller; per-organization capability checks happen inside the
// authority operations, not here.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Post("/", h.HandleCreate)
		pr.Get("/", h.HandleListMine)

		pr.Get("/{id}", h.HandleGet)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDestroy)
		pr.Post("/{id}/reset-token", h.HandleResetToken)

		pr.Get("/{id}/memberships", h.HandleListMembers)
		pr.Post("/{id}/memberships", h.HandleAddMember)
		pr.Delete("/{id}/memberships/{userID}", h.HandleRemoveMember)

		pr.Put("/{id}/memberships/{userID}/admin", h.HandlePromoteAdmin)
		pr.Delete("/{id}/memberships/{userID}/admin", h.HandleDemoteAdmin)
	})

	return r
}
