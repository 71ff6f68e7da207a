package board

import "github.com/llmit/llmit-term/domain"

// rows lists the focusable rows in display order: each post followed by its
// loaded comments.
func (m Model) rows() []ReplyTarget {
	out := make([]ReplyTarget, 0, len(m.postList))
	for _, p := range m.postList {
		out = append(out, ReplyTarget{PostID: p.ID})
		r, ok := m.regions[p.ID]
		if !ok || !r.loaded {
			continue
		}
		for _, n := range r.nodes {
			out = append(out, ReplyTarget{PostID: p.ID, CommentID: n.Comment.ID})
		}
	}
	return out
}

// focusIndex locates the focused row. A focused comment that disappeared
// falls back to its post, and a vanished post to the first row.
func focusIndex(rows []ReplyTarget, focus ReplyTarget) int {
	if len(rows) == 0 {
		return -1
	}
	postRow := -1
	for i, r := range rows {
		if r == focus {
			return i
		}
		if r.PostID == focus.PostID && r.IsPostLevel() {
			postRow = i
		}
	}
	if postRow >= 0 {
		return postRow
	}
	return 0
}

func (m *Model) normalizeFocus() {
	rows := m.rows()
	idx := focusIndex(rows, m.focus)
	if idx < 0 {
		m.focus = ReplyTarget{}
		return
	}
	m.focus = rows[idx]
}

func (m *Model) moveFocus(delta int) {
	rows := m.rows()
	idx := focusIndex(rows, m.focus)
	if idx < 0 {
		return
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	m.focus = rows[idx]
}

func (m Model) focusedPost() (domain.Post, bool) {
	for _, p := range m.postList {
		if p.ID == m.focus.PostID {
			return p, true
		}
	}
	return domain.Post{}, false
}

func (m Model) focusedComment() (domain.Comment, bool) {
	if m.focus.IsPostLevel() {
		return domain.Comment{}, false
	}
	r, ok := m.regions[m.focus.PostID]
	if !ok {
		return domain.Comment{}, false
	}
	for _, n := range r.nodes {
		if n.Comment.ID == m.focus.CommentID {
			return n.Comment, true
		}
	}
	return domain.Comment{}, false
}
