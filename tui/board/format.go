package board

import (
	"fmt"
	"time"

	"github.com/llmit/llmit-term/domain"
)

const timestampLayout = "Jan 02 2006 15:04"

// FormatTimestamp renders a creation time, or a placeholder when the server
// sent none we could parse.
func FormatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown time"
	}
	return t.Format(timestampLayout)
}

// PostByline is the "in <group> · by <author>" line under a post title.
func PostByline(p domain.Post) string {
	return fmt.Sprintf("in %s · by %s", p.Group, p.Author)
}

// PostMeta summarises votes, time and provenance of a post.
func PostMeta(p domain.Post) string {
	return voteMeta(p.Score(), p.Upvotes, p.Downvotes, p.CreatedAt, p.IsAIGenerated)
}

// CommentMeta summarises votes, time and provenance of a comment.
func CommentMeta(c domain.Comment) string {
	return voteMeta(c.Score(), c.Upvotes, c.Downvotes, c.CreatedAt, c.IsAIGenerated)
}

func voteMeta(score, up, down int, at time.Time, ai bool) string {
	s := fmt.Sprintf("%d points (+%d/-%d) · %s", score, up, down, FormatTimestamp(at))
	if ai {
		s += " · AI"
	}
	return s
}
