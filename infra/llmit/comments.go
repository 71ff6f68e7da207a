package llmit

import (
	"context"
	"fmt"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
)

// commentService implements app.CommentService using the LLMit API.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService backed by LLMit.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// apiComment is one node of the nested tree the server returns. The
// server's "level" field is ignored; depth is derived while rendering.
type apiComment struct {
	ID              int64        `json:"id"`
	PostID          int64        `json:"post_id"`
	Content         string       `json:"content"`
	ParentCommentID *int64       `json:"parent_comment_id"`
	Upvotes         int          `json:"upvotes"`
	Downvotes       int          `json:"downvotes"`
	IsAIGenerated   bool         `json:"is_ai_generated"`
	Timestamp       string       `json:"timestamp"`
	Author          string       `json:"author"`
	Children        []apiComment `json:"children"`
}

type createCommentRequest struct {
	PostID          int64  `json:"post_id"`
	Content         string `json:"content"`
	ParentCommentID *int64 `json:"parent_comment_id"`
}

func (s *commentService) ListComments(ctx context.Context, postID int64) ([]domain.Comment, error) {
	var roots []apiComment
	path := fmt.Sprintf("/api/posts/%d/comments", postID)
	if err := s.client.getJSON(ctx, path, nil, &roots); err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	return mapComments(roots, postID, nil), nil
}

func (s *commentService) CreateComment(ctx context.Context, c app.NewComment) (string, error) {
	msg, err := s.client.postMessage(ctx, "/api/comments", createCommentRequest{
		PostID:          c.PostID,
		Content:         c.Content,
		ParentCommentID: c.ParentCommentID,
	})
	if err != nil {
		return "", fmt.Errorf("creating comment: %w", err)
	}
	return msg, nil
}

// mapComments converts a decoded level of the tree. The decoder already
// recursed to build the input, so recursing here is bounded by the same
// depth. Missing post or parent ids are filled in from the enclosing node.
func mapComments(in []apiComment, postID int64, parentID *int64) []domain.Comment {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Comment, 0, len(in))
	for _, c := range in {
		pid := c.PostID
		if pid == 0 {
			pid = postID
		}
		parent := c.ParentCommentID
		if parent == nil && parentID != nil {
			p := *parentID
			parent = &p
		}
		id := c.ID
		out = append(out, domain.Comment{
			ID:              c.ID,
			PostID:          pid,
			Content:         sanitizeText(c.Content),
			Author:          authorOrAnonymous(c.Author),
			ParentCommentID: parent,
			Upvotes:         c.Upvotes,
			Downvotes:       c.Downvotes,
			IsAIGenerated:   c.IsAIGenerated,
			CreatedAt:       parseTimestamp(c.Timestamp),
			Children:        mapComments(c.Children, pid, &id),
		})
	}
	return out
}
