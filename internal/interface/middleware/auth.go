package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mithaighar/sweetshop/internal/domain/entity"
	repo "github.com/mithaighar/sweetshop/internal/domain/repository"
	"github.com/mithaighar/sweetshop/pkg/helpers"
	"github.com/mithaighar/sweetshop/pkg/response"
)

// CtxUserKey is the gin context key under which Auth stores the loaded user.
const CtxUserKey = "currentUser"

// Auth extracts the bearer token from the Authorization header, verifies it,
// and loads the subject's user record into the context. Missing, malformed,
// expired tokens and unknown subjects all map to 401; 403 is reserved for
// role failures in RequireAdmin.
func Auth(users repo.UserRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		u, err := users.GetByUsername(c.Request.Context(), claims.Subject)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		c.Set(CtxUserKey, u)
		c.Next()
	}
}

// RequireAdmin rejects requests whose authenticated user is not an admin.
// Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil {
			response.AbortErr(c, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if !u.IsAdmin {
			response.AbortErr(c, http.StatusForbidden, "admin access required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
