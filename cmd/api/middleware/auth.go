package middleware

import (
	"github.com/gin-gonic/gin"

	"blogboard/auth"
	"blogboard/internal/logger"
)

const identityKey = "identity"

// AuthRequired verifies the bearer JWT and stores the signed-in identity in
// the gin context.
func AuthRequired(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		ident, err := jwt.Parse(token)
		if err != nil {
			logger.Log.Debugf("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// Identity returns the identity stored by AuthRequired.
func Identity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	ident, ok := v.(auth.Identity)
	return ident, ok
}
