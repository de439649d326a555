// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the session endpoints at the root: POST /login and
// POST /logout.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)
	return r
}
