package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/app/controllers"
	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
	"github.com/newsnotes-app/newsnotes/internal/pkg/middleware"
)

// Protected routes: anonymous callers are redirected to login with a `next`
// parameter. Ownership of comments and notes is enforced in the controllers
// through author-scoped lookups.
func (h HttpRouter) registerProtectedRoutes(app *fiber.App) {
	app.Post(constants.NewsDetailRoute, middleware.RequireAuth, controllers.HandleCommentCreate)

	app.Get(constants.CommentEditRoute, middleware.RequireAuth, controllers.HandleCommentEdit)
	app.Post(constants.CommentEditRoute, middleware.RequireAuth, controllers.HandleCommentEdit)
	app.Get(constants.CommentDeleteRoute, middleware.RequireAuth, controllers.HandleCommentDelete)
	app.Post(constants.CommentDeleteRoute, middleware.RequireAuth, controllers.HandleCommentDelete)
	app.Delete(constants.CommentDeleteRoute, middleware.RequireAuth, controllers.HandleCommentDelete)

	// Static note routes must precede the :slug routes.
	app.Get(constants.NotesRoute, middleware.RequireAuth, controllers.HandleNoteList)
	app.Get(constants.NoteAddRoute, middleware.RequireAuth, controllers.HandleNoteAdd)
	app.Post(constants.NoteAddRoute, middleware.RequireAuth, controllers.HandleNoteAdd)
	app.Get(constants.NoteSuccessRoute, middleware.RequireAuth, controllers.HandleNoteSuccess)
	app.Get(constants.NoteDetailRoute, middleware.RequireAuth, controllers.HandleNoteDetail)
	app.Get(constants.NoteEditRoute, middleware.RequireAuth, controllers.HandleNoteEdit)
	app.Post(constants.NoteEditRoute, middleware.RequireAuth, controllers.HandleNoteEdit)
	app.Get(constants.NoteDeleteRoute, middleware.RequireAuth, controllers.HandleNoteDelete)
	app.Post(constants.NoteDeleteRoute, middleware.RequireAuth, controllers.HandleNoteDelete)
	app.Delete(constants.NoteDeleteRoute, middleware.RequireAuth, controllers.HandleNoteDelete)
}
