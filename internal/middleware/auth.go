package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"photo-market-backend/internal/config"
	"photo-market-backend/internal/models"
	"photo-market-backend/internal/services"
)

const (
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// AuthMiddleware accepts Supabase access tokens (HS256, signed with the
// project JWT secret) and stores the caller's id and email on the context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtSecret := cfg.SupabaseJWTSecret
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "missing authorization header")
			return
		}

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			unauthorized(c, "invalid authorization header format")
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			unauthorized(c, "empty token")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok || jwtSecret == "" {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			msg := "invalid token"
			switch {
			case err == nil:
			case strings.Contains(err.Error(), "token is expired"):
				msg = "token has expired"
			case strings.Contains(err.Error(), "signature is invalid"):
				msg = "token signature is invalid"
			}
			unauthorized(c, msg)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c, "invalid token claims")
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			unauthorized(c, "missing user id in token")
			return
		}
		email, _ := claims["email"].(string)

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, email)
		c.Next()
	}
}

// CallerFrom returns the authenticated caller set by AuthMiddleware.
func CallerFrom(c *gin.Context) (services.Caller, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return services.Caller{}, false
	}
	userID, ok := v.(uuid.UUID)
	if !ok {
		return services.Caller{}, false
	}
	return services.Caller{ID: userID, Email: c.GetString(UserEmailKey)}, true
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "Unauthorized",
		Message: msg,
	})
}
