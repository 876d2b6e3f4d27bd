package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gearshift-labs/partsdepot/internal/domain/contract"
	"github.com/gearshift-labs/partsdepot/internal/domain/entity"
	"github.com/gearshift-labs/partsdepot/internal/infrastructure/session"
)

const identityKey = "identity"

// Session resolves the session cookie into a request-scoped identity. The
// identity is loaded fresh from storage on every request; a missing, expired
// or unresolvable cookie simply leaves the request unauthenticated and the
// Authenticate stage produces the 401.
func Session(codec *session.Codec, users contract.IUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(session.CookieName)
		if err != nil || cookie == "" {
			c.Next()
			return
		}
		userID, err := codec.Verify(cookie)
		if err != nil {
			c.Next()
			return
		}
		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil || user == nil {
			c.Next()
			return
		}
		c.Set(identityKey, user)
		c.Next()
	}
}

// Identity returns the session identity attached by Session, or nil.
func Identity(c *gin.Context) *entity.User {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
