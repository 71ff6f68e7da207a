package app

import (
	"context"

	"github.com/llmit/llmit-term/domain"
)

// PostQuery selects one page of posts. Ordering and paging are applied by
// the server.
type PostQuery struct {
	Group string
	Sort  domain.SortOrder
	Page  int
	Limit int
}

// NewPost is a post submission.
type NewPost struct {
	Group    string
	Title    string
	Content  string
	ImageURL string
}

// PostService reads and creates posts.
type PostService interface {
	// ListPosts returns one page of posts for the query.
	ListPosts(ctx context.Context, q PostQuery) ([]domain.Post, error)

	// CreatePost submits a post and returns the server's message.
	CreatePost(ctx context.Context, p NewPost) (string, error)
}
