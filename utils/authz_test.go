package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFarmScopeAllows(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		assigned string
		farm     string
		expected bool
	}{
		{"admin any farm", "admin", "", "farm-1", true},
		{"admin with assignment still any farm", "admin", "farm-2", "farm-1", true},
		{"recording officer own farm", "recording_officer", "farm-1", "farm-1", true},
		{"recording officer other farm", "recording_officer", "farm-1", "farm-2", false},
		{"sales officer own farm", "sales_officer", "farm-1", "farm-1", true},
		{"sales officer other farm", "sales_officer", "farm-1", "farm-2", false},
		{"non-admin without assignment", "recording_officer", "", "farm-1", false},
		{"non-admin without assignment empty target", "sales_officer", "", "", false},
		{"unknown role", "viewer", "farm-1", "farm-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FarmScopeAllows(tt.role, tt.assigned, tt.farm); got != tt.expected {
				t.Errorf("FarmScopeAllows(%q, %q, %q) = %v, expected %v",
					tt.role, tt.assigned, tt.farm, got, tt.expected)
			}
		})
	}
}

func TestScopedFarmID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		role      string
		assigned  string
		requested string
		wantFarm  string
		wantOK    bool
	}{
		{"admin passes filter through", "admin", "", "farm-9", "farm-9", true},
		{"admin without filter sees all", "admin", "", "", "", true},
		{"officer forced to own farm", "recording_officer", "farm-1", "farm-9", "farm-1", true},
		{"officer without filter gets own farm", "sales_officer", "farm-1", "", "farm-1", true},
		{"officer without assignment rejected", "recording_officer", "", "farm-9", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Set("role", tt.role)
			c.Set("farmId", tt.assigned)

			farm, ok := ScopedFarmID(c, tt.requested)
			if farm != tt.wantFarm || ok != tt.wantOK {
				t.Errorf("ScopedFarmID() = (%q, %v), expected (%q, %v)",
					farm, ok, tt.wantFarm, tt.wantOK)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		role       string
		allowed    []string
		wantStatus int
	}{
		{"admin allowed", "admin", []string{"admin"}, http.StatusOK},
		{"one of several", "sales_officer", []string{"admin", "sales_officer"}, http.StatusOK},
		{"wrong role", "recording_officer", []string{"admin"}, http.StatusForbidden},
		{"missing role", "", []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/protected", func(c *gin.Context) {
				if tt.role != "" {
					c.Set("role", tt.role)
				}
			}, RequireRoles(tt.allowed...), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, expected %d", w.Code, tt.wantStatus)
			}
		})
	}
}
