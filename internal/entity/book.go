package entity

import "time"

const DefaultCategory = "General"

type Book struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        string    `json:"author"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	CoverURL      string    `json:"coverUrl,omitempty"`
	Publisher     string    `json:"publisher,omitempty"`
	PublishedDate string    `json:"publishedDate,omitempty"`
	PageCount     int       `json:"pageCount,omitempty"`
	AddedBy       string    `json:"addedBy"`
	Ratings       []Rating  `json:"ratings,omitempty"`
	AverageRating float64   `json:"averageRating"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Rating is owned by a Book; there is at most one entry per user and book.
// Username is a snapshot of the rater's display name taken when the rating was
// first created. It is deliberately not kept in sync with later renames.
type Rating struct {
	UserID   string    `json:"user"`
	Username string    `json:"username"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment,omitempty"`
	Date     time.Time `json:"date"`
}
