package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/tui/board"
)

// runPlain prints the first frontpage page without the interactive UI, for
// pipes and scripts.
func runPlain(ctx context.Context, w io.Writer, posts app.PostService) error {
	q := board.NewViewState().Query()
	list, err := posts.ListPosts(ctx, q)
	if err != nil {
		return fmt.Errorf("loading posts: %w", err)
	}
	return writePlain(w, list, board.Paginate(len(list), q.Page, q.Limit))
}

func writePlain(w io.Writer, posts []domain.Post, controls board.PageControls) error {
	var b strings.Builder
	if len(posts) == 0 {
		b.WriteString("No posts available for this group.\n")
	}
	for _, p := range posts {
		fmt.Fprintf(&b, "%s\n  %s\n  %s\n", p.Title, board.PostByline(p), board.PostMeta(p))
		if p.HasImage() {
			fmt.Fprintf(&b, "  image: %s\n", p.ImageURL)
		}
		for _, line := range strings.Split(p.Content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			fmt.Fprintf(&b, "    %s\n", line)
		}
		b.WriteString("\n")
	}
	if controls.Next {
		b.WriteString("More posts: run interactively and press ] for the next page.\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
