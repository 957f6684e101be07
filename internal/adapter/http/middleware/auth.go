package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"easytasks/internal/core/ports"
	"easytasks/pkg/apierrors"
)

const userIDKey = "userID"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the caller's user id in the gin context for the handlers.
func AuthMiddleware(tokens ports.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingToken, lang),
			)
			return
		}

		userID, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
