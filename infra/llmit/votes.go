package llmit

import (
	"context"
	"fmt"

	"github.com/llmit/llmit-term/domain"
)

// voteService implements app.VoteService using the LLMit API.
type voteService struct {
	client *Client
}

// NewVoteService creates a VoteService backed by LLMit.
func NewVoteService(client *Client) *voteService {
	return &voteService{client: client}
}

type postVoteRequest struct {
	PostID   int64  `json:"post_id"`
	VoteType string `json:"vote_type"`
}

type commentVoteRequest struct {
	CommentID int64  `json:"comment_id"`
	VoteType  string `json:"vote_type"`
}

func (s *voteService) VotePost(ctx context.Context, postID int64, vote domain.VoteType) (string, error) {
	msg, err := s.client.postMessage(ctx, "/api/votes/posts", postVoteRequest{PostID: postID, VoteType: string(vote)})
	if err != nil {
		return "", fmt.Errorf("voting on post %d: %w", postID, err)
	}
	return msg, nil
}

func (s *voteService) VoteComment(ctx context.Context, commentID int64, vote domain.VoteType) (string, error) {
	msg, err := s.client.postMessage(ctx, "/api/votes/comments", commentVoteRequest{CommentID: commentID, VoteType: string(vote)})
	if err != nil {
		return "", fmt.Errorf("voting on comment %d: %w", commentID, err)
	}
	return msg, nil
}
