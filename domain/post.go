package domain

import "time"

// Post is a top-level submission within a group.
type Post struct {
	ID            int64
	Title         string
	Content       string // Plain text, HTML stripped
	Author        string
	Group         string
	ImageURL      string // Empty when the post has no image
	Upvotes       int
	Downvotes     int
	IsAIGenerated bool
	CreatedAt     time.Time
}

// Score is the net vote count the server ranks "top" by.
func (p Post) Score() int {
	return p.Upvotes - p.Downvotes
}

// HasImage reports whether the post carries an image URL.
func (p Post) HasImage() bool {
	return p.ImageURL != ""
}
