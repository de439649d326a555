// internal/testutil/http.go
package testutil

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/dalemusser/labelhub/internal/app/system/auth"
	"github.com/dalemusser/labelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// WithChiURLParam adds a chi URL parameter to the request context. Use
// this in handler tests that call handlers directly, without a router.
// Repeated calls accumulate params on the same route context.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		rctx.URLParams.Add(key, value)
		return r
	}
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// WithSessionUser injects u into the request context, bypassing the
// session middleware.
func WithSessionUser(r *http.Request, u models.User) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:        u.ID.Hex(),
		Username:  u.Username,
		Email:     u.Email,
		Superuser: u.Superuser,
	})
}

// NewJSONRequest builds a request with a JSON body (pass "" for none).
func NewJSONRequest(method, target, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// AuthenticatedJSONRequest builds a JSON request with u signed in.
func AuthenticatedJSONRequest(method, target, body string, u models.User) *http.Request {
	return WithSessionUser(NewJSONRequest(method, target, body), u)
}
