package app

import (
	"context"

	"github.com/llmit/llmit-term/domain"
)

// NewComment is a comment submission. A nil ParentCommentID replies to the
// post itself.
type NewComment struct {
	PostID          int64
	Content         string
	ParentCommentID *int64
}

// CommentService reads and creates comments.
type CommentService interface {
	// ListComments returns the root comments of a post, replies nested.
	ListComments(ctx context.Context, postID int64) ([]domain.Comment, error)

	// CreateComment submits a comment and returns the server's message.
	CreateComment(ctx context.Context, c NewComment) (string, error)
}
