package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUsername      = "username"
	KeyFromProtected = "from_protected"
	KeyUserContext   = "USER_CONTEXT"
)
