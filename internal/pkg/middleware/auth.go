package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
)

// RequireAuth ensures a logged-in web session. Anonymous users are redirected
// to the login page with a `next` parameter carrying the original URL, so the
// login flow can return them to where they were headed.
func RequireAuth(c *fiber.Ctx) error {
	if !usercontext.IsLoggedIn(c) {
		return c.Redirect(constants.UserLoginRoute+"?next="+c.OriginalURL(), fiber.StatusFound)
	}
	return c.Next()
}
