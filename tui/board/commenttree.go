package board

import "github.com/llmit/llmit-term/domain"

// indentWidth is the number of columns each nesting level adds.
const indentWidth = 2

// CommentNode is one comment positioned in a flattened thread.
type CommentNode struct {
	Comment domain.Comment
	Depth   int
}

// FlattenComments lays a comment forest out in display order: each comment
// followed by its replies, depth-first. It walks with an explicit stack so
// arbitrarily deep threads cannot exhaust the goroutine stack.
func FlattenComments(roots []domain.Comment) []CommentNode {
	type frame struct {
		comments []domain.Comment
		next     int
		depth    int
	}

	out := make([]CommentNode, 0, len(roots))
	stack := []frame{{comments: roots}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.comments) {
			stack = stack[:len(stack)-1]
			continue
		}
		c := top.comments[top.next]
		top.next++
		depth := top.depth
		out = append(out, CommentNode{Comment: c, Depth: depth})
		if len(c.Children) > 0 {
			stack = append(stack, frame{comments: c.Children, depth: depth + 1})
		}
	}
	return out
}

// CommentIndent is the left offset, in columns, of a comment at depth.
func CommentIndent(depth int) int {
	if depth <= 0 {
		return 0
	}
	return depth * indentWidth
}
