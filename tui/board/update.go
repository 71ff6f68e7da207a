package board

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/domain"
)

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor.SetWidth(max(m.postsWidth()-8, 20))
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case GroupsLoadedMsg:
		// The navigation list keeps its previous entries on failure; the
		// client has already logged the error.
		if msg.Err != nil {
			return m, nil
		}
		list := withFrontPage(msg.Groups)
		switch {
		case msg.Query == "":
			m.allGroups = list
			if m.groupQuery != "" {
				return m, nil
			}
		case msg.ReqSeq != m.groupsSeq:
			// Superseded search.
			return m, nil
		}
		m.groupList = list
		m.groupQuery = msg.Query
		if m.navCursor >= len(m.groupList) {
			m.navCursor = len(m.groupList) - 1
		}
		return m, nil

	case PostsLoadedMsg, PostsErrorMsg:
		return m.handlePostsMsg(msg)

	case CommentsLoadedMsg, CommentsErrorMsg, CommentSubmittedMsg:
		return m.handleCommentsMsg(msg)

	case VoteResultMsg:
		if msg.Err != nil {
			m.setNotice(domain.MessageOf(msg.Err, "Vote failed."), true)
			return m, nil
		}
		m.setNotice(orDefault(msg.Message, "Vote recorded."), false)
		if msg.CommentID == 0 {
			return m.reloadPosts()
		}
		if _, ok := m.regions[msg.PostID]; ok && m.hasPost(msg.PostID) {
			return m.loadComments(msg.PostID)
		}
		return m, nil

	case MediaPreviewLoadedMsg:
		return m.handlePreviewMsg(msg)

	case OpenURLResultMsg:
		if msg.Err != nil {
			m.setNotice("Could not open "+msg.URL, true)
		}
		return m, nil

	case RefreshMsg:
		return m.reloadPosts()

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	// Cursor blinks and other widget messages.
	switch {
	case m.editing:
		m.editor, cmd = m.editor.Update(msg)
	case m.searching:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

func (m Model) handlePostsMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		if msg.ReqSeq != m.postsSeq || msg.QueryKey != m.view.Key() {
			return m, nil
		}
		m.postList = msg.Posts
		m.loading = false
		m.err = nil
		m.controls = Paginate(len(msg.Posts), m.view.Page, m.view.PageSize)
		m.normalizeFocus()
		return m, m.ensurePreviewCmd()

	case PostsErrorMsg:
		if msg.ReqSeq != m.postsSeq || msg.QueryKey != m.view.Key() {
			return m, nil
		}
		// Page controls stay as they were so the user can move away.
		m.postList = nil
		m.loading = false
		m.err = msg.Err
		m.focus = ReplyTarget{}
		return m, nil
	}
	return m, nil
}

func (m Model) handleCommentsMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case CommentsLoadedMsg:
		if !m.isCurrentCommentFetch(msg.PostID, msg.ReqSeq) {
			return m, nil
		}
		m.regions[msg.PostID] = commentRegion{
			loaded: true,
			nodes:  FlattenComments(msg.Comments),
		}
		m.normalizeFocus()
		return m, nil

	case CommentsErrorMsg:
		if !m.isCurrentCommentFetch(msg.PostID, msg.ReqSeq) {
			return m, nil
		}
		m.regions[msg.PostID] = commentRegion{err: msg.Err}
		m.normalizeFocus()
		return m, nil

	case CommentSubmittedMsg:
		delete(m.submitting, msg.Target)
		if msg.Err != nil {
			m.setNotice(domain.MessageOf(msg.Err, "Failed to post comment."), true)
			return m, nil
		}
		m.setNotice(orDefault(msg.Message, "Comment posted."), false)
		m.clearReplies(msg.Target.PostID)
		if !m.hasPost(msg.Target.PostID) {
			return m, nil
		}
		return m.loadComments(msg.Target.PostID)
	}
	return m, nil
}

// isCurrentCommentFetch reports whether a comment response answers the
// latest request for a post that is still displayed.
func (m Model) isCurrentCommentFetch(postID int64, seq int) bool {
	r, ok := m.regions[postID]
	if !ok || !r.loading {
		return false
	}
	return m.commentSeq[postID] == seq && m.hasPost(postID)
}

// reloadPosts fetches the page described by the current view state. The
// previous page's threads, reply forms and drafts are discarded; its page
// controls are kept until the answer arrives.
func (m Model) reloadPosts() (Model, tea.Cmd) {
	m.postsSeq++
	m.loading = true
	m.err = nil
	m.postList = nil
	m.resetThreads()
	return m, m.fetchPosts(m.postsSeq, m.view)
}

func (m Model) loadComments(postID int64) (Model, tea.Cmd) {
	m.commentSeq[postID]++
	seq := m.commentSeq[postID]
	m.regions[postID] = commentRegion{loading: true}
	m.normalizeFocus()
	return m, m.fetchComments(postID, seq)
}

func (m *Model) resetThreads() {
	m.regions = make(map[int64]commentRegion)
	m.replyOpen = make(map[ReplyTarget]bool)
	m.drafts = make(map[ReplyTarget]string)
	m.submitting = make(map[ReplyTarget]bool)
	m.previews = make(map[string]string)
	m.previewLoading = make(map[string]bool)
	m.stopEditing(false)
	m.editor.Reset()
	m.focus.CommentID = 0
}

// clearReplies closes every reply form of a post and drops its drafts.
func (m *Model) clearReplies(postID int64) {
	for t := range m.replyOpen {
		if t.PostID == postID {
			delete(m.replyOpen, t)
		}
	}
	for t := range m.drafts {
		if t.PostID == postID {
			delete(m.drafts, t)
		}
	}
	if m.editing && m.editTarget.PostID == postID {
		m.stopEditing(false)
		m.editor.Reset()
	}
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
}

func (m Model) hasPost(id int64) bool {
	for _, p := range m.postList {
		if p.ID == id {
			return true
		}
	}
	return false
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
