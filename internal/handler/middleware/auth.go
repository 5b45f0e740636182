package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"hotelier/internal/domain/user"
	"hotelier/internal/pkg/jwt"
	"hotelier/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxActorKey = "actor"

type AuthMiddleware struct {
	jwtService *jwt.Service
	users      queries.UserReadStore
}

func NewAuthMiddleware(jwtService *jwt.Service, users queries.UserReadStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// RequireAuth validates the bearer token and resolves the caller into an
// Actor. Guest callers get their linked guest record attached so ownership
// checks downstream need no extra lookup.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.TokenTypeAccess {
			slog.Warn("Token validation failed in auth middleware", "error", errString(err))
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		role, err := user.NewRole(claims.Role)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		actor := queries.Actor{
			UserID: claims.UserID,
			Role:   role,
		}

		if role == user.RoleGuest {
			view, err := m.users.FindByID(c.Request.Context(), claims.UserID)
			if err != nil || !view.IsActive {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			actor.GuestID = view.GuestID
		}

		c.Set(ctxActorKey, actor)
		c.Next()
	}
}

// RequireStaff must run after RequireAuth.
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !actor.IsStaff() {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole must run after RequireAuth; it admits only the listed roles.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

func GetActor(c *gin.Context) (queries.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return queries.Actor{}, false
	}

	actor, ok := v.(queries.Actor)
	return actor, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor, ok := GetActor(c)
	if !ok {
		return uuid.Nil, false
	}
	return actor.UserID, true
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func errString(err error) string {
	if err == nil {
		return "wrong token type"
	}
	return err.Error()
}
