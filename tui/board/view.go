package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/tui/common"
)

const (
	msgLoadingPosts   = "Loading posts..."
	msgNoPosts        = "No posts available for this group."
	msgPostsError     = "Error loading posts. Please try again later."
	msgLoadingComment = "Loading comments..."
	msgNoComments     = "No comments yet."
	msgCommentsError  = "Error loading comments."
)

// View renders the board as a string.
func (m Model) View() string {
	width, height := m.size()

	header := m.renderHeader()
	footer := m.renderFooter(width)
	avail := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if avail < 3 {
		avail = 3
	}

	pw := m.postsWidth()
	lines, focusLine := m.renderPosts(pw)
	lines = scrollTo(lines, focusLine, avail)
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, pw, "")
	}
	body := strings.Join(lines, "\n")

	if m.showNav() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderNav(avail), " ", body)
	}

	return header + "\n" + body + "\n" + footer
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

func (m Model) showNav() bool {
	w, _ := m.size()
	return w >= minNavTotal
}

// postsWidth is the width of the posts column. The navigation pane takes
// its width plus border and gap when shown.
func (m Model) postsWidth() int {
	w, _ := m.size()
	if m.showNav() {
		return w - navWidth - 3
	}
	return w
}

func (m Model) renderHeader() string {
	title := common.AppTitleStyle.Render("LLMit")
	group := common.GroupStyle.Render(" " + m.view.Group)
	tagline := common.TaglineStyle.Render(fmt.Sprintf("sorted by %s · page %d", m.view.Sort, m.view.Page))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, title, group, tagline)
}

// renderPosts returns the posts column as lines and the index of the line
// holding the focused row, or -1.
func (m Model) renderPosts(width int) ([]string, int) {
	switch {
	case m.loading && len(m.postList) == 0:
		return []string{fmt.Sprintf("%s %s", m.spinner.View(), msgLoadingPosts)}, -1
	case m.err != nil:
		return []string{common.ErrorStyle.Render(msgPostsError)}, -1
	case len(m.postList) == 0:
		return []string{common.PlaceholderStyle.Render(msgNoPosts)}, -1
	}

	var lines []string
	focusLine := -1
	for _, p := range m.postList {
		card, offset := m.renderCard(p, width)
		if offset >= 0 {
			focusLine = len(lines) + offset
		}
		lines = append(lines, strings.Split(card, "\n")...)
	}
	return lines, focusLine
}

// renderCard draws one post with its comment region and reply forms. The
// returned offset is the card line holding the focused row, or -1.
func (m Model) renderCard(p domain.Post, width int) (string, int) {
	inner := max(width-4, 10)
	var parts []string
	focusOffset := -1
	// mark records the line the next part starts on as the focused line.
	mark := func() {
		focusOffset = 0
		if len(parts) > 0 {
			focusOffset = lipgloss.Height(strings.Join(parts, "\n"))
		}
	}

	postTarget := ReplyTarget{PostID: p.ID}
	if m.focus == postTarget {
		mark()
	}
	parts = append(parts,
		common.TitleStyle.Width(inner).Render(p.Title),
		common.MetadataStyle.Render(PostByline(p)),
		m.renderMeta(PostMeta(p), p.IsAIGenerated),
	)
	if p.HasImage() {
		parts = append(parts, common.MetadataStyle.Render("image: "+common.Truncate(p.ImageURL, inner-7)))
		if preview := m.previews[p.ImageURL]; m.showPreview && preview != "" {
			parts = append(parts, preview)
		}
	}
	if p.Content != "" {
		parts = append(parts, "", common.ContentStyle.Width(inner).Render(p.Content))
	}
	if m.replyOpen[postTarget] {
		parts = append(parts, m.renderReplyForm(postTarget, inner))
	}

	if r, ok := m.regions[p.ID]; ok {
		parts = append(parts, "")
		switch {
		case r.loading:
			parts = append(parts, common.PlaceholderStyle.Render(m.spinner.View()+" "+msgLoadingComment))
		case r.err != nil:
			parts = append(parts, common.ErrorStyle.Render(msgCommentsError))
		case len(r.nodes) == 0:
			parts = append(parts, common.PlaceholderStyle.Render(msgNoComments))
		default:
			for _, n := range r.nodes {
				t := ReplyTarget{PostID: p.ID, CommentID: n.Comment.ID}
				if m.focus == t {
					mark()
				}
				parts = append(parts, m.renderComment(n, t, inner))
			}
		}
	}

	style := common.UnselectedStyle
	if m.focus.PostID == p.ID {
		style = common.SelectedStyle
	}
	card := style.Width(width - 2).Render(strings.Join(parts, "\n"))
	if focusOffset >= 0 {
		// Top border.
		focusOffset++
	}
	return card, focusOffset
}

func (m Model) renderMeta(meta string, ai bool) string {
	if !ai {
		return common.MetadataStyle.Render(meta)
	}
	base := strings.TrimSuffix(meta, " · AI")
	return common.MetadataStyle.Render(base+" · ") + common.AIBadgeStyle.Render("AI")
}

func (m Model) renderComment(n CommentNode, t ReplyTarget, inner int) string {
	pad := strings.Repeat(" ", CommentIndent(n.Depth))
	w := max(inner-CommentIndent(n.Depth)-2, 10)

	marker := "•"
	if m.focus == t {
		marker = common.FocusedCommentStyle.Render("▸")
	}
	head := pad + marker + " " + common.AuthorStyle.Render(n.Comment.Author) + " " +
		m.renderMeta(CommentMeta(n.Comment), n.Comment.IsAIGenerated)

	lines := []string{head}
	if n.Comment.Content != "" {
		lines = append(lines, indentBlock(common.ContentStyle.Width(w).Render(n.Comment.Content), pad+"  "))
	}
	if m.replyOpen[t] {
		lines = append(lines, indentBlock(m.renderReplyForm(t, w), pad+"  "))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderReplyForm(t ReplyTarget, width int) string {
	label := "Reply to comment"
	if t.IsPostLevel() {
		label = "Reply to post"
	}

	var body, hint string
	switch {
	case m.editing && m.editTarget == t:
		body = m.editor.View()
		hint = "ctrl+s submit · esc done, then r hides"
	case m.drafts[t] != "":
		body = common.ContentStyle.Render(m.drafts[t])
		hint = "i edit · s submit · r hide"
	default:
		body = common.PlaceholderStyle.Render("(empty)")
		hint = "i edit · s submit · r hide"
	}
	if m.submitting[t] {
		hint = "posting..."
	}

	content := strings.Join([]string{
		common.AuthorStyle.Render(label),
		body,
		common.MetadataStyle.Render(hint),
	}, "\n")
	return common.ReplyFormStyle.Width(max(width-2, 10)).Render(content)
}

func (m Model) renderNav(height int) string {
	inner := navWidth - 2
	lines := []string{common.TitleStyle.Render("Subllmits")}
	if m.searching {
		lines = append(lines, m.search.View())
	}

	room := max(height-2-len(lines), 1)
	start := 0
	if m.navCursor >= room {
		start = m.navCursor - room + 1
	}
	end := min(start+room, len(m.groupList))
	for i := start; i < end; i++ {
		g := m.groupList[i]
		name := common.Truncate(g.Name, inner-2)
		switch {
		case m.navFocused && i == m.navCursor:
			lines = append(lines, common.NavCursorStyle.Render("> "+name))
		case strings.EqualFold(g.Name, m.view.Group):
			lines = append(lines, common.NavActiveStyle.Render("• "+name))
		default:
			lines = append(lines, "  "+name)
		}
	}

	style := common.NavStyle
	if m.navFocused {
		style = style.BorderForeground(lipgloss.Color("#FF4500"))
	}
	return style.Width(navWidth).Height(max(height-2, 1)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderFooter(width int) string {
	var b strings.Builder

	var pager []string
	if m.controls.Previous {
		pager = append(pager, "[ prev")
	}
	if !m.controls.Empty() {
		pager = append(pager, fmt.Sprintf("page %d", m.view.Page))
	}
	if m.controls.Next {
		pager = append(pager, "next ]")
	}
	if len(pager) > 0 {
		b.WriteString(common.MetadataStyle.Render(strings.Join(pager, "   ")))
		b.WriteString("\n")
	}

	if m.notice != "" {
		style := common.SuccessStyle
		if m.noticeErr {
			style = common.ErrorStyle
		}
		b.WriteString(style.Render(common.Truncate(m.notice, width)))
		b.WriteString("\n")
	}

	b.WriteString(common.StatusBarStyle.Render(m.helpView()))
	return b.String()
}

func (m Model) helpView() string {
	switch {
	case m.editing:
		return "ctrl+s: submit reply • esc: stop editing (closes an empty form) • esc r: hide form"
	case m.searching:
		return "enter: search • esc: cancel"
	case m.navFocused:
		return "↑/↓: move • enter: open subllmit • /: search • tab: posts"
	}
	if !m.showHints {
		return "↑/↓: move • c: comments • r: reply • t/n: top/new • [ ]: page • tab: subllmits • ?: more • q: quit"
	}
	newPost := "p: new post"
	if m.view.IsFrontPage() {
		newPost = "p: create subllmit (browser)"
	}
	return strings.Join([]string{
		"↑/↓: move • enter/c: load comments • r: toggle reply • i: edit reply • s: submit reply",
		"t: top • n: new • [: prev page • ]: next page • b: frontpage • /: search subllmits",
		"+/-: vote • o: open image • v: image previews • " + newPost + " • R: refresh • ?: fewer keys • q: quit",
	}, "\n")
}

// scrollTo keeps the focused line in the upper third of a window of height
// lines.
func scrollTo(lines []string, focusLine, height int) []string {
	if len(lines) <= height {
		return lines
	}
	offset := 0
	if focusLine >= 0 {
		offset = focusLine - height/3
	}
	offset = max(0, min(offset, len(lines)-height))
	return clipLines(lines[offset:], height)
}

func clipLines(lines []string, maxLines int) []string {
	if maxLines <= 0 || len(lines) <= maxLines {
		return lines
	}
	return lines[:maxLines]
}

func indentBlock(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
