package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// BadWords lists the substrings that block a comment from being persisted.
// Matching is case-sensitive, on the raw submitted text.
var BadWords = []string{"редиска", "негодяй"}

// CommentWarning is attached to the text field when a banned word is found.
const CommentWarning = "Не ругайтесь!"

const requiredFieldError = "Обязательное поле."

var validate = validator.New()

// CommentForm binds and validates the comment submission form. It is shared
// by the create and edit flows, so edited comments go through the banned-word
// filter again.
type CommentForm struct {
	Text   string            `form:"text" validate:"required"`
	Errors map[string]string `form:"-" validate:"-"`
}

// Validate populates Errors and reports whether the form is acceptable.
func (f *CommentForm) Validate() bool {
	f.Errors = map[string]string{}

	if err := validate.Struct(f); err != nil {
		f.Errors["text"] = requiredFieldError
		return false
	}
	if word := FindBadWord(f.Text); word != "" {
		f.Errors["text"] = CommentWarning
	}

	return len(f.Errors) == 0
}

// FindBadWord returns the first banned word contained in text, or "".
func FindBadWord(text string) string {
	for _, word := range BadWords {
		if strings.Contains(text, word) {
			return word
		}
	}
	return ""
}
