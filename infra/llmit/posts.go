package llmit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
)

// postService implements app.PostService using the LLMit API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by LLMit.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

// apiPost is the post entity as the server serializes it.
type apiPost struct {
	ID            int64   `json:"id"`
	Group         string  `json:"group"`
	Title         string  `json:"title"`
	Content       string  `json:"content"`
	ImageURL      *string `json:"image_url"`
	Upvotes       int     `json:"upvotes"`
	Downvotes     int     `json:"downvotes"`
	IsAIGenerated bool    `json:"is_ai_generated"`
	Timestamp     string  `json:"timestamp"`
	Author        string  `json:"author"`
}

type createPostRequest struct {
	Group    string `json:"group"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

func (s *postService) ListPosts(ctx context.Context, q app.PostQuery) ([]domain.Post, error) {
	group := q.Group
	if group == "" {
		group = domain.FrontPage
	}
	sort := q.Sort
	if sort == "" {
		sort = domain.SortTop
	}
	page := max(q.Page, 1)

	query := url.Values{}
	query.Set("group", group)
	query.Set("sort", string(sort))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(q.Limit))
	if sort == domain.SortNew {
		query.Set("order", "desc")
	}

	var posts []apiPost
	if err := s.client.getJSON(ctx, "/api/posts", query, &posts); err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}
	return mapPosts(posts), nil
}

func (s *postService) CreatePost(ctx context.Context, p app.NewPost) (string, error) {
	msg, err := s.client.postMessage(ctx, "/api/posts", createPostRequest{
		Group:    p.Group,
		Title:    p.Title,
		Content:  p.Content,
		ImageURL: p.ImageURL,
	})
	if err != nil {
		return "", fmt.Errorf("creating post: %w", err)
	}
	return msg, nil
}

func mapPosts(in []apiPost) []domain.Post {
	posts := make([]domain.Post, 0, len(in))
	for _, p := range in {
		image := ""
		if p.ImageURL != nil {
			image = sanitizeText(*p.ImageURL)
		}
		posts = append(posts, domain.Post{
			ID:            p.ID,
			Title:         sanitizeText(p.Title),
			Content:       sanitizeText(p.Content),
			Author:        authorOrAnonymous(p.Author),
			Group:         sanitizeText(p.Group),
			ImageURL:      image,
			Upvotes:       p.Upvotes,
			Downvotes:     p.Downvotes,
			IsAIGenerated: p.IsAIGenerated,
			CreatedAt:     parseTimestamp(p.Timestamp),
		})
	}
	return posts
}

func authorOrAnonymous(name string) string {
	name = sanitizeText(name)
	if name == "" {
		return "Anonymous"
	}
	return name
}
