package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/app/controllers"
	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
)

// Public routes: reachable with or without a session. The login, logout and
// signup pages belong to the users collaborator; the home and news detail
// pages are world-readable.
func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get(constants.HomeRoute, controllers.HandleNewsHome)
	app.Get(constants.NewsDetailRoute, controllers.HandleNewsDetail)

	app.Get(constants.UserLoginRoute, controllers.HandleAuthLogin)
	app.Post(constants.UserLoginRoute, controllers.HandleAuthLogin)
	app.Get(constants.UserLogoutRoute, controllers.HandleAuthLogout)
	app.Get(constants.UserSignupRoute, controllers.HandleAuthSignup)
	app.Post(constants.UserSignupRoute, controllers.HandleAuthSignup)
}
