package app

import (
	"context"

	"github.com/llmit/llmit-term/domain"
)

// VoteService records votes. Both calls return the server's message.
type VoteService interface {
	VotePost(ctx context.Context, postID int64, vote domain.VoteType) (string, error)
	VoteComment(ctx context.Context, commentID int64, vote domain.VoteType) (string, error)
}
