package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/geo3dhub/geo-hub-backend/internal/auth/repository"
)

// FirebaseAuthMiddleware validates Firebase ID tokens, extracts user info,
// and upserts the account row for first-time callers.
func FirebaseAuthMiddleware(authClient *auth.Client, users *repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(context.Background(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		// Store user info in context
		c.Set("firebase_uid", decodedToken.UID)

		email, _ := decodedToken.Claims["email"].(string)
		if email != "" {
			c.Set("email", email)
		}
		name, _ := decodedToken.Claims["name"].(string)
		if name != "" {
			c.Set("display_name", name)
		}

		if users != nil {
			if _, err := users.EnsureUser(c.Request.Context(), repository.UpsertUser{
				FirebaseUID: decodedToken.UID,
				Email:       email,
				DisplayName: name,
			}); err != nil {
				// Auth still succeeded; the account row will catch up next call.
				log.Printf("[warn] operation=ensure_user uid=%s error=%v", decodedToken.UID, err)
			}
		}

		c.Next()
	}
}

// EditorName returns the best display name available for audit entries.
func EditorName(c *gin.Context) string {
	if name := c.GetString("display_name"); name != "" {
		return name
	}
	if email := c.GetString("email"); email != "" {
		return email
	}
	return c.GetString("firebase_uid")
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
