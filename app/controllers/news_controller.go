package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/newsnotes-app/newsnotes/app/forms"
	"github.com/newsnotes-app/newsnotes/app/models"
	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
)

// HandleNewsHome renders the public home page: the ten most recent news
// items, newest first.
func HandleNewsHome(c *fiber.Ctx) error {
	newsList, err := newsRepo.GetLatest(constants.NewsCountOnHomePage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch news")
	}

	return c.Render("news/index", fiber.Map{
		"Layout": layout(c, "Новости"),
		"News":   newsList,
	}, "layouts/main")
}

// HandleNewsDetail renders a single news item with its comment thread in
// chronological order. Logged-in users also get the comment form.
func HandleNewsDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusNotFound).SendString("News item not found")
	}

	news, err := newsRepo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("News item not found")
	}

	var form *forms.CommentForm
	if isLoggedIn(c) {
		form = &forms.CommentForm{}
	}

	return renderNewsDetail(c, news, form, fiber.StatusOK)
}

// renderNewsDetail is shared by the detail view and the comment submission
// flow, which re-renders the page with form errors attached.
func renderNewsDetail(c *fiber.Ctx, news *models.News, form *forms.CommentForm, status int) error {
	comments, err := commentRepo.GetByNewsID(news.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch comments")
	}

	return c.Status(status).Render("news/detail", fiber.Map{
		"Layout":   layout(c, news.Title),
		"News":     news,
		"Comments": comments,
		"Form":     form,
	}, "layouts/main")
}
