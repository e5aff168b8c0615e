package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/internal/pkg/session"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes user session handling and eliminates code duplication.
func UserContextMiddleware(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		// On error: treat as anonymous user
		return setAnonymousContext(c)
	}

	userID := toUserID(sess.Get(usercontext.KeyUserID))
	if userID == 0 {
		return setAnonymousContext(c)
	}

	username := session.GetSessionValue(c, usercontext.KeyUsername)

	userCtx := usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		IsLoggedIn: true,
	}
	c.Locals(usercontext.KeyUserContext, userCtx)

	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUsername, username)
	c.Locals(usercontext.KeyUserID, userID)

	return c.Next()
}

func setAnonymousContext(c *fiber.Ctx) error {
	c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
		IsLoggedIn: false,
	})
	c.Locals(usercontext.KeyFromProtected, false)
	return c.Next()
}

// toUserID normalizes the session value; the session codec may hand back a
// widened integer type.
func toUserID(v interface{}) uint {
	switch id := v.(type) {
	case uint:
		return id
	case uint64:
		return uint(id)
	case int:
		return uint(id)
	case int64:
		return uint(id)
	default:
		return 0
	}
}
