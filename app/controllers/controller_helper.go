package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/newsnotes-app/newsnotes/app/repository"
	"github.com/newsnotes-app/newsnotes/internal/pkg/database"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
	"github.com/newsnotes-app/newsnotes/internal/pkg/viewmodel"
)

const (
	AUTH_KEY       string = usercontext.AuthKey
	USER_ID        string = usercontext.KeyUserID
	USER_NAME      string = usercontext.KeyUsername
	FROM_PROTECTED string = usercontext.KeyFromProtected
)

var (
	userRepo    repository.UserRepository
	newsRepo    repository.NewsRepository
	commentRepo repository.CommentRepository
	noteRepo    repository.NoteRepository
)

// InitializeControllers wires the controllers to repositories over the
// current database handle. The router calls this on install, so test apps
// pick up their own database.
func InitializeControllers() {
	repos := repository.NewFactory(database.GetDB()).GetRepositories()
	userRepo = repos.User
	newsRepo = repos.News
	commentRepo = repos.Comment
	noteRepo = repos.Note
}

func isLoggedIn(c *fiber.Ctx) bool {
	return usercontext.IsLoggedIn(c)
}

// layout assembles the data every template needs via the shared page frame.
func layout(c *fiber.Ctx, page string) viewmodel.Layout {
	return viewmodel.Layout{
		Page:    page,
		UserCtx: usercontext.GetUserContext(c),
		Msg:     flash.Get(c),
	}
}

func newsDetailURL(newsID uint) string {
	return fmt.Sprintf("/news/%d", newsID)
}
