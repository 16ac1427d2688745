package middleware

import (
	"net/http"
	"strings"

	"hall-booking/internal/handler/httperr"
	"hall-booking/internal/pkg/errs"
	"hall-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const OperatorEmailKey = "operator_email"

// RequireAuth guards the back-office routes with a bearer token issued
// by the login endpoint.
func RequireAuth(tokens *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("missing authorization header"), "Authentication required", nil)
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.AbortWithError(c, http.StatusUnauthorized,
				errs.New("malformed authorization header"), "Authentication required", nil)
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(OperatorEmailKey, claims.Email)
		c.Next()
	}
}
