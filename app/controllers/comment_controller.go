package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/newsnotes-app/newsnotes/app/forms"
	"github.com/newsnotes-app/newsnotes/app/models"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
)

// HandleCommentCreate persists a comment on a news item for the current
// user. A banned word in the text re-renders the detail page with the
// warning attached to the text field and persists nothing; a valid comment
// redirects back to the detail page (post/redirect/get).
func HandleCommentCreate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("News item not found")
	}

	news, err := newsRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News item not found")
	}

	form := &forms.CommentForm{Text: c.FormValue("text")}
	if !form.Validate() {
		return renderNewsDetail(c, news, form, fiber.StatusOK)
	}

	comment := &models.Comment{
		NewsID: news.ID,
		UserID: usercontext.GetUserID(c),
		Text:   form.Text,
	}
	if err := commentRepo.Create(comment); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save comment")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Комментарий добавлен.",
	}

	return flash.WithSuccess(c, fm).Redirect(newsDetailURL(news.ID))
}

// HandleCommentEdit lets a comment's author change its text. The lookup is
// scoped to the requesting user, so someone else's comment is a 404.
func HandleCommentEdit(c *fiber.Ctx) error {
	comment, ok := ownComment(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	if c.Method() == fiber.MethodPost {
		form := &forms.CommentForm{Text: c.FormValue("text")}
		if !form.Validate() {
			return renderCommentEdit(c, comment, form)
		}

		comment.Text = form.Text
		if err := commentRepo.Update(comment); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to save comment")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Комментарий обновлён.",
		}

		return flash.WithSuccess(c, fm).Redirect(newsDetailURL(comment.NewsID))
	}

	return renderCommentEdit(c, comment, &forms.CommentForm{Text: comment.Text})
}

// HandleCommentDelete shows the confirmation page on GET and removes the
// comment on POST/DELETE, again scoped to the author.
func HandleCommentDelete(c *fiber.Ctx) error {
	comment, ok := ownComment(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Comment not found")
	}

	if c.Method() == fiber.MethodGet {
		return c.Render("news/comment_delete", fiber.Map{
			"Layout":  layout(c, "Удалить комментарий"),
			"Comment": comment,
		}, "layouts/main")
	}

	if err := commentRepo.Delete(comment.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete comment")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Комментарий удалён.",
	}

	return flash.WithSuccess(c, fm).Redirect(newsDetailURL(comment.NewsID))
}

// ownComment resolves the :id route parameter to a comment owned by the
// current user.
func ownComment(c *fiber.Ctx) (*models.Comment, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return nil, false
	}

	comment, err := commentRepo.GetByIDAndAuthor(uint(id), usercontext.GetUserID(c))
	if err != nil {
		return nil, false
	}

	return comment, true
}

func renderCommentEdit(c *fiber.Ctx, comment *models.Comment, form *forms.CommentForm) error {
	return c.Render("news/comment_edit", fiber.Map{
		"Layout":  layout(c, "Редактировать комментарий"),
		"Comment": comment,
		"Form":    form,
	}, "layouts/main")
}
