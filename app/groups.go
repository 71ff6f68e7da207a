package app

import (
	"context"

	"github.com/llmit/llmit-term/domain"
)

// GroupService lists the subllmits a user can navigate to.
type GroupService interface {
	// ListGroups returns every subllmit.
	ListGroups(ctx context.Context) ([]domain.Group, error)

	// SearchGroups returns subllmits whose name contains query.
	SearchGroups(ctx context.Context, query string) ([]domain.Group, error)
}
