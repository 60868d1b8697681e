package form

import (
	"net/url"
	"strings"

	"github.com/Apollo297/newsnote/internal/apperror"
)

// BadWords is the fixed list of banned substrings. A comment containing
// any of them, in any letter case, is rejected outright.
var BadWords = []string{"редиска", "негодяй"}

// BadWordsWarning is attached to the text field when a banned word is
// found.
const BadWordsWarning = "Не ругайтесь!"

// CommentForm is the comment submission on a news detail page. The same
// form serves both creation and editing — only the text is ever taken
// from the user; the news and author associations come from the URL and
// the session.
type CommentForm struct {
	Text string `validate:"required"`
}

// ParseCommentForm binds submitted values. Whitespace-only text becomes
// empty and fails the required check.
func ParseCommentForm(values url.Values) *CommentForm {
	return &CommentForm{
		Text: strings.TrimSpace(values.Get("text")),
	}
}

// Validate checks the required rule and the banned-word filter.
func (f *CommentForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fieldError(err, map[string]string{"Text": "text"})
	}

	lower := strings.ToLower(f.Text)
	for _, word := range BadWords {
		if strings.Contains(lower, word) {
			return apperror.ValidationFailed("text", BadWordsWarning)
		}
	}

	return nil
}
