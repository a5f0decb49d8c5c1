package models

// Post is a single feed entry. Posts are immutable once created and are
// listed in reverse chronological order.
type Post struct {
	BaseModel

	Content  string  `json:"content"`
	ImageURL *string `json:"image_url"`
	Language string  `json:"language"`

	AuthorID uint    `json:"author_id"`
	Author   Account `json:"author"`
}
