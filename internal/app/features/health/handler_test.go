// internal/app/features/health/handler_test.go
package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/labelhub/internal/app/features/health"
	"github.com/dalemusser/labelhub/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db.Client(), zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var response struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("status: got %q, want %q", response.Status, "ok")
	}
	if response.Database != "connected" {
		t.Errorf("database: got %q, want %q", response.Database, "connected")
	}
}
