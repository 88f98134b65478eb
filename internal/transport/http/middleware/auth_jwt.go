package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anhthuvo/mobileAppBE/internal/core/auth"
	resp "github.com/anhthuvo/mobileAppBE/internal/transport/http/response"
)

const ClaimsKey = "claims"

// AuthJWT is the request gate: it extracts the bearer token, verifies
// it, and attaches the decoded claims to the request context. With a
// non-empty requireRole it additionally rejects valid tokens whose role
// does not match. A failed gate aborts before any handler runs.
func AuthJWT(j *auth.JWTer, requireRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			c.AbortWithStatusJSON(resp.Status(resp.CodeUnauthorized), resp.Error(resp.CodeUnauthorized, "missing token"))
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(resp.Status(resp.CodeUnauthorized), resp.Error(resp.CodeUnauthorized, "invalid token"))
			return
		}
		if requireRole != "" && claims.Role != requireRole {
			c.AbortWithStatusJSON(resp.Status(resp.CodeForbidden), resp.Error(resp.CodeForbidden, "forbidden"))
			return
		}
		c.Set(ClaimsKey, claims)
		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// ClaimsFrom returns the claims the gate stored, or nil when the route
// was not behind AuthJWT.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
