// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// News is a single news item. News has no author — items are published
// editorially and are globally readable. Date defaults to the moment of
// creation but can be backdated (the home page orders by it).
type News struct {
	ID    string    `json:"id"    db:"id"`
	Title string    `json:"title" db:"title"`
	Text  string    `json:"text"  db:"text"`
	Date  time.Time `json:"date"  db:"date"`
}

// Comment is a reader's comment under a news item.
//
// Ownership: AuthorID is set from the authenticated session at creation
// time and never changes afterwards. Only the author may edit or delete
// the comment, and an edit may change Text only — NewsID and AuthorID
// are immutable for the comment's whole lifetime.
type Comment struct {
	ID       string    `json:"id"       db:"id"`
	NewsID   string    `json:"newsId"   db:"news_id"`
	AuthorID string    `json:"authorId" db:"author_id"`
	Text     string    `json:"text"     db:"text"`
	Created  time.Time `json:"created"  db:"created"`
}
