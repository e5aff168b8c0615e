package constants

// Static route constants
const (
	HomeRoute       = "/"
	NewsDetailRoute = "/news/:id"

	CommentEditRoute   = "/news/comments/:id/edit"
	CommentDeleteRoute = "/news/comments/:id/delete"

	UserLoginRoute  = "/users/login"
	UserLogoutRoute = "/users/logout"
	UserSignupRoute = "/users/signup"

	NotesRoute       = "/notes"
	NoteAddRoute     = "/notes/add"
	NoteSuccessRoute = "/notes/success"
	NoteDetailRoute  = "/notes/:slug"
	NoteEditRoute    = "/notes/:slug/edit"
	NoteDeleteRoute  = "/notes/:slug/delete"
)

// NewsCountOnHomePage caps the home page news listing.
const NewsCountOnHomePage = 10
