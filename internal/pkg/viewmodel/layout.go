package viewmodel

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
)

// Layout carries the data every page template needs: the page title, the
// current user context for the navigation bar, and a flash message, if any.
type Layout struct {
	Page    string
	UserCtx usercontext.UserContext
	Msg     fiber.Map
}
