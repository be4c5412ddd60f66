package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	ContextOwnerID = "ownerID"

	// browsers cannot set headers on a websocket upgrade
	tokenQueryParam = "access_token"
)

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Phiên đăng nhập không hợp lệ")
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, code := bearerToken(c)
		if code != "" {
			abortUnauthorized(c, code)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		owner, err := token.Claims.GetSubject()
		if err != nil || owner == "" {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}

		c.Set(ContextOwnerID, owner)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if t := c.Query(tokenQueryParam); t != "" {
			return t, ""
		}
		return "", "missing_authorization_header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", "invalid_authorization_header"
	}
	return parts[1], ""
}

// OwnerID reads the owner set by AuthMiddleware.
func OwnerID(c *gin.Context) string {
	return c.MustGet(ContextOwnerID).(string)
}
