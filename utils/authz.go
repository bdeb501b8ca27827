// utils/authz.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects the request with 403 unless the authenticated user's
// role is one of the allowed roles. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")
		roleStr, _ := role.(string)
		for _, r := range roles {
			if roleStr == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// FarmScopeAllows is the single farm-scoping predicate: admins may touch any
// farm, other roles only their assigned farm. Every production, invoice,
// inventory and report handler goes through this check.
func FarmScopeAllows(role, assignedFarmID, farmID string) bool {
	if role == "admin" {
		return true
	}
	return assignedFarmID != "" && assignedFarmID == farmID
}

// CanAccessFarm applies FarmScopeAllows to the authenticated request.
func CanAccessFarm(c *gin.Context, farmID string) bool {
	role, _ := c.Get("role")
	assigned, _ := c.Get("farmId")
	roleStr, _ := role.(string)
	assignedStr, _ := assigned.(string)
	return FarmScopeAllows(roleStr, assignedStr, farmID)
}

// ScopedFarmID returns the farm a listing must be restricted to: the
// requested farmId for admins, the assigned farm for everyone else.
// The second return is false when a non-admin has no farm assignment.
func ScopedFarmID(c *gin.Context, requested string) (string, bool) {
	role, _ := c.Get("role")
	assigned, _ := c.Get("farmId")
	roleStr, _ := role.(string)
	assignedStr, _ := assigned.(string)

	if roleStr == "admin" {
		return requested, true
	}
	if assignedStr == "" {
		return "", false
	}
	return assignedStr, true
}
