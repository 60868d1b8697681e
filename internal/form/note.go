package form

import (
	"net/url"
	"regexp"
	"strings"

	gosimple "github.com/gosimple/slug"

	"github.com/Apollo297/newsnote/internal/apperror"
)

// SlugWarning is appended to the conflicting slug when a note submission
// reuses a slug that already exists.
const SlugWarning = " - такой slug уже существует, придумайте уникальное значение!"

// MaxSlugLength bounds both supplied and derived slugs.
const MaxSlugLength = 100

// slugPattern accepts the characters a URL-safe slug may contain.
var slugPattern = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// NoteForm is the note create/edit submission. Slug is optional — when
// left empty it is derived from the title. The author never appears
// here: it is always the acting identity, regardless of what a crafted
// request might try to submit.
type NoteForm struct {
	Title string `validate:"required"`
	Text  string `validate:"required"`
	Slug  string
}

// ParseNoteForm binds submitted values.
func ParseNoteForm(values url.Values) *NoteForm {
	return &NoteForm{
		Title: strings.TrimSpace(values.Get("title")),
		Text:  strings.TrimSpace(values.Get("text")),
		Slug:  strings.TrimSpace(values.Get("slug")),
	}
}

// Validate checks required fields and, when a slug was supplied, its
// shape. Uniqueness is checked by the service against the store.
func (f *NoteForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fieldError(err, map[string]string{"Title": "title", "Text": "text"})
	}

	if f.Slug != "" {
		if len(f.Slug) > MaxSlugLength {
			return apperror.ValidationFailed("slug", "Слишком длинный slug.")
		}
		if !slugPattern.MatchString(f.Slug) {
			return apperror.ValidationFailed("slug", "Недопустимые символы в slug.")
		}
	}

	return nil
}

// SlugOrDerived returns the supplied slug, or one derived from the
// title by transliterating slugify: non-ASCII letters are mapped to
// ASCII ("Заголовок" → "zagolovok") and the result is trimmed to
// MaxSlugLength.
func (f *NoteForm) SlugOrDerived() string {
	if f.Slug != "" {
		return f.Slug
	}
	derived := gosimple.Make(f.Title)
	if len(derived) > MaxSlugLength {
		derived = derived[:MaxSlugLength]
	}
	return derived
}
