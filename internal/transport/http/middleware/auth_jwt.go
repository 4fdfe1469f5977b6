package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"inventory-api/internal/domain"
	resp "inventory-api/internal/transport/http/response"
)

const (
	KeyUserID = "userId"
	KeyEmail  = "email"
)

// TokenVerifier 由 AuthService 实现
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Identity, error)
}

func AuthJWT(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.Abort(c, http.StatusUnauthorized, "Unauthorized")
			return
		}
		id, err := v.VerifyToken(strings.TrimSpace(strings.TrimPrefix(ah, "Bearer ")))
		if err != nil {
			resp.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}
		c.Set(KeyUserID, id.UserID)
		c.Set(KeyEmail, id.Email)
		c.Next()
	}
}
