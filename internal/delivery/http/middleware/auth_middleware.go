package middleware

import (
	"context"
	"net/http"
	"strings"

	"hirerevops-backend/internal/delivery/http/response"
	"hirerevops-backend/internal/domain"
	"hirerevops-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware authenticates a request in three steps: verify the token
// signature, confirm its session has not been revoked, then load the live
// user record. Role comes from the database, never from the token, so a
// role change or suspension applies to already-issued tokens.
func AuthMiddleware(tokens *auth.TokenManager, sessionRepo domain.SessionRepository, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		userID, err := sessionRepo.GetUserID(c.Request.Context(), claims.SessionID)
		if err != nil || userID != claims.Subject {
			response.Error(c, http.StatusUnauthorized, "Session expired", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Error(c, http.StatusForbidden, "Your account has been suspended. Please contact support.", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), string(user.Role))
		c.Set(string(domain.KeySessionID), claims.SessionID)
		if user.CompanyID != nil {
			c.Set(string(domain.KeyCompanyID), *user.CompanyID)
		}

		// Usecases read identity from the request context.
		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserRole, string(user.Role))
		ctx = context.WithValue(ctx, domain.KeySessionID, claims.SessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}
