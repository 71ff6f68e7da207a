package domain

import "time"

// Comment is a reply to a post or to another comment. The server delivers
// comments pre-nested, so a post's comments arrive as a forest of roots.
type Comment struct {
	ID              int64
	PostID          int64
	Content         string // Plain text, HTML stripped
	Author          string
	ParentCommentID *int64 // nil for a root-level comment
	Upvotes         int
	Downvotes       int
	IsAIGenerated   bool
	CreatedAt       time.Time
	Children        []Comment
}

// IsRoot reports whether the comment replies directly to its post.
func (c Comment) IsRoot() bool {
	return c.ParentCommentID == nil
}

// IsLeaf reports whether the comment has no replies. A nil and an empty
// Children slice are equivalent.
func (c Comment) IsLeaf() bool {
	return len(c.Children) == 0
}

// Score is the net vote count.
func (c Comment) Score() int {
	return c.Upvotes - c.Downvotes
}

// CountComments returns the number of comments in the forest, descendants
// included.
func CountComments(roots []Comment) int {
	n := 0
	stack := make([][]Comment, 0, 8)
	stack = append(stack, roots)
	for len(stack) > 0 {
		level := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n += len(level)
		for _, c := range level {
			if len(c.Children) > 0 {
				stack = append(stack, c.Children)
			}
		}
	}
	return n
}
