package model

import "time"

// Note is a private note belonging to exactly one user.
//
// Slug is the note's URL identifier and is unique across ALL notes, not
// just the owner's. When the user leaves it empty on the form, it is
// derived from the title with a transliterating slugify ("Заголовок" →
// "zagolovok") so that Cyrillic titles still produce URL-legal slugs.
type Note struct {
	ID       string    `json:"id"       db:"id"`
	Title    string    `json:"title"    db:"title"`
	Text     string    `json:"text"     db:"text"`
	Slug     string    `json:"slug"     db:"slug"`
	AuthorID string    `json:"authorId" db:"author_id"`
	Created  time.Time `json:"created"  db:"created"`
}
