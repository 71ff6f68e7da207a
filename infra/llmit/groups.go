package llmit

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/llmit/llmit-term/domain"
)

// groupService implements app.GroupService using the LLMit API.
type groupService struct {
	client *Client
}

// NewGroupService creates a GroupService backed by LLMit.
func NewGroupService(client *Client) *groupService {
	return &groupService{client: client}
}

type apiGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (s *groupService) ListGroups(ctx context.Context) ([]domain.Group, error) {
	var groups []apiGroup
	if err := s.client.getJSON(ctx, "/api/subllmits/all", nil, &groups); err != nil {
		return nil, fmt.Errorf("listing subllmits: %w", err)
	}
	return mapGroups(groups), nil
}

func (s *groupService) SearchGroups(ctx context.Context, query string) ([]domain.Group, error) {
	q := url.Values{}
	q.Set("query", strings.TrimSpace(query))

	var groups []apiGroup
	if err := s.client.getJSON(ctx, "/api/subllmits", q, &groups); err != nil {
		return nil, fmt.Errorf("searching subllmits: %w", err)
	}
	return mapGroups(groups), nil
}

func mapGroups(in []apiGroup) []domain.Group {
	out := make([]domain.Group, 0, len(in))
	for _, g := range in {
		name := sanitizeText(g.Name)
		if name == "" {
			continue
		}
		out = append(out, domain.Group{ID: g.ID, Name: name})
	}
	return out
}
