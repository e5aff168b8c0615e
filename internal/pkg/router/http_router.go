package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/app/controllers"
	"github.com/newsnotes-app/newsnotes/internal/pkg/middleware"
	"github.com/newsnotes-app/newsnotes/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Wire controllers to repositories over the current database
	controllers.InitializeControllers()

	h.registerPublicRoutes(app)
	h.registerProtectedRoutes(app)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
