package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/newsnotes-app/newsnotes/app/forms"
	"github.com/newsnotes-app/newsnotes/app/models"
	"github.com/newsnotes-app/newsnotes/internal/pkg/constants"
	"github.com/newsnotes-app/newsnotes/internal/pkg/usercontext"
)

// HandleNoteList renders the current user's notes. Other users' notes are
// excluded by the query, not filtered afterwards.
func HandleNoteList(c *fiber.Ctx) error {
	notes, err := noteRepo.GetByAuthor(usercontext.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch notes")
	}

	return c.Render("notes/list", fiber.Map{
		"Layout": layout(c, "Мои заметки"),
		"Notes":  notes,
	}, "layouts/main")
}

// HandleNoteAdd renders the creation form on GET and creates the note on
// POST. An omitted slug is derived from the title; a slug collision
// re-renders the form with the colliding value in the error message.
func HandleNoteAdd(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		form := &forms.NoteForm{
			Title: c.FormValue("title"),
			Text:  c.FormValue("text"),
			Slug:  c.FormValue("slug"),
		}
		if !form.Validate() {
			return renderNoteForm(c, form, constants.NoteAddRoute)
		}

		noteSlug := form.Slug
		if noteSlug == "" {
			noteSlug = models.MakeNoteSlug(form.Title)
		}

		exists, err := noteRepo.SlugExists(noteSlug)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to check slug")
		}
		if exists {
			form.AddSlugError(noteSlug)
			return renderNoteForm(c, form, constants.NoteAddRoute)
		}

		note := &models.Note{
			Title:  form.Title,
			Text:   form.Text,
			Slug:   noteSlug,
			UserID: usercontext.GetUserID(c),
		}
		if err := noteRepo.Create(note); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to save note")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Заметка создана.",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.NoteSuccessRoute)
	}

	return renderNoteForm(c, &forms.NoteForm{}, constants.NoteAddRoute)
}

// HandleNoteSuccess renders the landing page shown after create/edit/delete.
func HandleNoteSuccess(c *fiber.Ctx) error {
	return c.Render("notes/success", fiber.Map{
		"Layout": layout(c, "Успешно"),
	}, "layouts/main")
}

// HandleNoteDetail renders a single note, visible to its author only.
func HandleNoteDetail(c *fiber.Ctx) error {
	note, ok := ownNote(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	return c.Render("notes/detail", fiber.Map{
		"Layout": layout(c, note.Title),
		"Note":   note,
	}, "layouts/main")
}

// HandleNoteEdit lets a note's author change it. Clearing the slug re-derives
// it from the title; moving to a taken slug re-renders with the collision
// error.
func HandleNoteEdit(c *fiber.Ctx) error {
	note, ok := ownNote(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	action := "/notes/" + note.Slug + "/edit"

	if c.Method() == fiber.MethodPost {
		form := &forms.NoteForm{
			Title: c.FormValue("title"),
			Text:  c.FormValue("text"),
			Slug:  c.FormValue("slug"),
		}
		if !form.Validate() {
			return renderNoteForm(c, form, action)
		}

		noteSlug := form.Slug
		if noteSlug == "" {
			noteSlug = models.MakeNoteSlug(form.Title)
		}

		if noteSlug != note.Slug {
			exists, err := noteRepo.SlugExistsExceptID(noteSlug, note.ID)
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Failed to check slug")
			}
			if exists {
				form.AddSlugError(noteSlug)
				return renderNoteForm(c, form, action)
			}
		}

		note.Title = form.Title
		note.Text = form.Text
		note.Slug = noteSlug
		if err := noteRepo.Update(note); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to save note")
		}

		fm := fiber.Map{
			"type":    "success",
			"message": "Заметка обновлена.",
		}

		return flash.WithSuccess(c, fm).Redirect(constants.NoteSuccessRoute)
	}

	form := &forms.NoteForm{
		Title: note.Title,
		Text:  note.Text,
		Slug:  note.Slug,
	}

	return renderNoteForm(c, form, action)
}

// HandleNoteDelete shows the confirmation page on GET and removes the note
// on POST/DELETE.
func HandleNoteDelete(c *fiber.Ctx) error {
	note, ok := ownNote(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Note not found")
	}

	if c.Method() == fiber.MethodGet {
		return c.Render("notes/delete", fiber.Map{
			"Layout": layout(c, "Удалить заметку"),
			"Note":   note,
		}, "layouts/main")
	}

	if err := noteRepo.Delete(note.ID); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to delete note")
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Заметка удалена.",
	}

	return flash.WithSuccess(c, fm).Redirect(constants.NoteSuccessRoute)
}

// ownNote resolves the :slug route parameter to a note owned by the current
// user. Ownership failure and non-existence are indistinguishable here.
func ownNote(c *fiber.Ctx) (*models.Note, bool) {
	note, err := noteRepo.GetBySlugAndAuthor(c.Params("slug"), usercontext.GetUserID(c))
	if err != nil {
		return nil, false
	}
	return note, true
}

func renderNoteForm(c *fiber.Ctx, form *forms.NoteForm, action string) error {
	return c.Render("notes/form", fiber.Map{
		"Layout": layout(c, "Заметка"),
		"Form":   form,
		"Action": action,
	}, "layouts/main")
}
