package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// SlugWarning is appended to the colliding slug value when a note with that
// slug already exists.
const SlugWarning = " - такой slug уже существует, придумайте уникальное значение!"

// NoteForm binds and validates the note create/edit form. The slug is
// optional; when empty the controller derives it from the title.
type NoteForm struct {
	Title  string            `form:"title" validate:"required,max=100"`
	Text   string            `form:"text" validate:"required"`
	Slug   string            `form:"slug" validate:"omitempty,max=100"`
	Errors map[string]string `form:"-" validate:"-"`
}

// Validate populates Errors and reports whether the form is acceptable.
// Slug uniqueness is checked by the controller against the store; a collision
// is added via AddSlugError.
func (f *NoteForm) Validate() bool {
	f.Errors = map[string]string{}

	if err := validate.Struct(f); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				f.Errors[strings.ToLower(fe.Field())] = requiredFieldError
			}
		} else {
			f.Errors["title"] = requiredFieldError
		}
	}

	return len(f.Errors) == 0
}

// AddSlugError attaches the duplicate-slug warning for the given slug value.
func (f *NoteForm) AddSlugError(slug string) {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	f.Errors["slug"] = slug + SlugWarning
}
