package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextEmail is the gin context key holding the verified email of the caller.
const ContextEmail = "decodedEmail"

// TokenVerifier validates an access token and returns its email claim.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// JWTAuthMiddleware requires a valid bearer token. A request without an
// Authorization header is rejected with 401; one whose credential does not
// verify is rejected with 403.
func JWTAuthMiddleware(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.AbortJSONError(c, http.StatusUnauthorized, "Unauthorized access")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.AbortJSONError(c, http.StatusForbidden, "Forbidden Access")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		email, err := tokens.Verify(tokenString)
		if err != nil {
			zap.L().Debug("JWTAuthMiddleware: token rejected", zap.Error(err))
			utils.AbortJSONError(c, http.StatusForbidden, "Forbidden Access")
			return
		}

		c.Set(ContextEmail, email)
		c.Next()
	}
}

// DecodedEmail returns the email verified by JWTAuthMiddleware.
func DecodedEmail(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextEmail)
	if !ok {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}
