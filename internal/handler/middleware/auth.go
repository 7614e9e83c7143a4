package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"flashsale-scheduler/internal/handler/httperr"
	"flashsale-scheduler/internal/pkg/cookie"
	"flashsale-scheduler/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
	logger         *slog.Logger
}

const (
	ctxUserNameKey    = "user_name"
	ctxMarketplaceKey = "marketplace"
	ctxClaimsKey      = "jwt_claims"
)

var errMissingToken = errors.New("access token required")

func NewAuthMiddleware(tokenValidator TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			m.logger.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxUserNameKey, claims.UserName)
		c.Set(ctxMarketplaceKey, claims.Marketplace)
		c.Set(ctxClaimsKey, claims)
		c.Next()
	}
}

// cookie first, then the Authorization header
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetUserName(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserNameKey)
	if !exists {
		return "", false
	}
	name, ok := v.(string)
	return name, ok
}

func IsMarketplaceSession(c *gin.Context) bool {
	return c.GetBool(ctxMarketplaceKey)
}
