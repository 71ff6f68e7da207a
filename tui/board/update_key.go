package board

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/domain"
)

// handleKeyMsg is the single key dispatcher. Text fields take precedence,
// then the navigation pane, then actions on the focused row.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case m.editing:
		return m.handleEditorKey(msg)
	case m.searching:
		return m.handleSearchKey(msg)
	case m.navFocused:
		if next, cmd, handled := m.handleNavKey(msg); handled {
			return next, cmd
		}
	}
	return m.handleBoardKey(msg)
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		t := m.editTarget
		m.stopEditing(true)
		// Nothing typed: leaving the editor closes the form as well.
		if m.drafts[t] == "" {
			delete(m.drafts, t)
			delete(m.replyOpen, t)
		}
		return m, nil
	case key.Matches(msg, m.keys.SubmitForm):
		return m.submitReply(m.editTarget)
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.stopSearch()
		m.restoreGroups()
		return m, nil
	case tea.KeyEnter:
		query := strings.TrimSpace(m.search.Value())
		m.stopSearch()
		m.navFocused = true
		m.navCursor = 0
		if query == "" {
			m.restoreGroups()
			return m, nil
		}
		m.groupsSeq++
		return m, m.fetchGroups(m.groupsSeq, query)
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleNavKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.navCursor > 0 {
			m.navCursor--
		}
		return m, nil, true
	case key.Matches(msg, m.keys.Down):
		if m.navCursor < len(m.groupList)-1 {
			m.navCursor++
		}
		return m, nil, true
	case key.Matches(msg, m.keys.Select):
		if m.navCursor < 0 || m.navCursor >= len(m.groupList) {
			return m, nil, true
		}
		m.view.SelectGroup(m.groupList[m.navCursor].Name)
		m.navFocused = false
		next, cmd := m.reloadPosts()
		return next, cmd, true
	case key.Matches(msg, m.keys.FocusNav):
		m.navFocused = false
		return m, nil, true
	case key.Matches(msg, m.keys.Cancel):
		m.navFocused = false
		m.restoreGroups()
		return m, nil, true
	}
	return m, nil, false
}

func (m Model) handleBoardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = !m.showHints
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
		return m, m.ensurePreviewCmd()

	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
		return m, m.ensurePreviewCmd()

	case key.Matches(msg, m.keys.Preview):
		m.showPreview = !m.showPreview
		return m, m.ensurePreviewCmd()

	case key.Matches(msg, m.keys.FocusNav):
		m.navFocused = true
		m.navCursor = m.currentGroupIndex()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.navFocused = true
		m.searching = true
		m.search.Reset()
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.LoadComments):
		if !m.hasPost(m.focus.PostID) {
			return m, nil
		}
		return m.loadComments(m.focus.PostID)

	case key.Matches(msg, m.keys.Reply):
		return m.toggleReply(m.focus)

	case key.Matches(msg, m.keys.Submit):
		return m.submitReply(m.focus)

	case key.Matches(msg, m.keys.Resume):
		if !m.replyOpen[m.focus] {
			return m, nil
		}
		return m.startEditing(m.focus)

	case key.Matches(msg, m.keys.Cancel):
		m.showHints = false
		m.notice = ""
		return m, nil

	case key.Matches(msg, m.keys.SortTop):
		m.view.SetSort(domain.SortTop)
		return m.reloadPosts()

	case key.Matches(msg, m.keys.SortNew):
		m.view.SetSort(domain.SortNew)
		return m.reloadPosts()

	case key.Matches(msg, m.keys.NextPage):
		if !m.controls.Next {
			return m, nil
		}
		m.view.NextPage()
		return m.reloadPosts()

	case key.Matches(msg, m.keys.PrevPage):
		if !m.controls.Previous {
			return m, nil
		}
		m.view.PrevPage()
		return m.reloadPosts()

	case key.Matches(msg, m.keys.Back):
		m.view.SelectGroup(domain.FrontPage)
		return m.reloadPosts()

	case key.Matches(msg, m.keys.NewPost):
		if m.view.IsFrontPage() {
			return m, openURL(m.baseURL + "/create_subllmit")
		}
		group := m.view.Group
		return m, func() tea.Msg { return ComposePostMsg{Group: group} }

	case key.Matches(msg, m.keys.Open):
		p, ok := m.focusedPost()
		if !ok || !p.HasImage() {
			return m, nil
		}
		return m, openURL(p.ImageURL)

	case key.Matches(msg, m.keys.Upvote):
		return m.castVote(domain.Upvote)

	case key.Matches(msg, m.keys.Downvote):
		return m.castVote(domain.Downvote)

	case key.Matches(msg, m.keys.Refresh):
		next, cmd := m.reloadPosts()
		next.groupsSeq++
		return next, tea.Batch(cmd, next.fetchGroups(next.groupsSeq, ""))
	}

	return m, nil
}

// toggleReply flips the visibility of t's reply form. Opening a form starts
// editing it; closing keeps its draft.
func (m Model) toggleReply(t ReplyTarget) (Model, tea.Cmd) {
	if !m.hasPost(t.PostID) {
		return m, nil
	}
	if m.replyOpen[t] {
		delete(m.replyOpen, t)
		if m.editing && m.editTarget == t {
			m.stopEditing(true)
		}
		return m, nil
	}
	m.replyOpen[t] = true
	return m.startEditing(t)
}

func (m Model) startEditing(t ReplyTarget) (Model, tea.Cmd) {
	if m.editing {
		m.stopEditing(true)
	}
	m.editTarget = t
	m.editing = true
	m.editor.SetValue(m.drafts[t])
	cmd := m.editor.Focus()
	return m, cmd
}

// stopEditing leaves the reply editor, optionally keeping its text as the
// target's draft.
func (m *Model) stopEditing(save bool) {
	if !m.editing {
		return
	}
	if save {
		m.drafts[m.editTarget] = m.editor.Value()
	}
	m.editor.Blur()
	m.editing = false
}

// submitReply sends the draft of an open reply form. Nothing is validated;
// the server decides what to accept.
func (m Model) submitReply(t ReplyTarget) (Model, tea.Cmd) {
	if !m.replyOpen[t] || m.submitting[t] {
		return m, nil
	}
	if m.editing && m.editTarget == t {
		m.stopEditing(true)
	}
	m.submitting[t] = true
	m.setNotice("Posting reply...", false)
	return m, m.submitComment(t, m.drafts[t])
}

func (m Model) castVote(vote domain.VoteType) (Model, tea.Cmd) {
	if !m.hasPost(m.focus.PostID) {
		return m, nil
	}
	if !m.focus.IsPostLevel() {
		if _, ok := m.focusedComment(); !ok {
			return m, nil
		}
	}
	return m, m.vote(m.focus, vote)
}

func (m *Model) stopSearch() {
	m.searching = false
	m.search.Blur()
	m.search.Reset()
}

// restoreGroups shows the full list again. A search still in flight is
// superseded.
func (m *Model) restoreGroups() {
	m.groupsSeq++
	m.groupQuery = ""
	if m.allGroups != nil {
		m.groupList = m.allGroups
	} else {
		m.groupList = withFrontPage(nil)
	}
	if m.navCursor >= len(m.groupList) {
		m.navCursor = len(m.groupList) - 1
	}
}

func (m Model) currentGroupIndex() int {
	for i, g := range m.groupList {
		if strings.EqualFold(g.Name, m.view.Group) {
			return i
		}
	}
	return 0
}
