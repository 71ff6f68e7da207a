package board

import (
	"net/http"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/tui/common"
)

const (
	navWidth       = 24
	minNavTotal    = 72
	defaultWidth   = 80
	defaultHeight  = 24
	replyCharLimit = 4000
)

// Services bundles the API the board talks to.
type Services struct {
	Groups   app.GroupService
	Posts    app.PostService
	Comments app.CommentService
	Votes    app.VoteService
}

// GroupsLoadedMsg carries the navigation list. Query is non-empty for
// search results.
type GroupsLoadedMsg struct {
	Groups []domain.Group
	Query  string
	Err    error
	ReqSeq int
}

// PostsLoadedMsg is sent when a posts page fetch completes.
type PostsLoadedMsg struct {
	Posts    []domain.Post
	QueryKey string
	ReqSeq   int
}

// PostsErrorMsg is sent when a posts page fetch fails.
type PostsErrorMsg struct {
	Err      error
	QueryKey string
	ReqSeq   int
}

// CommentsLoadedMsg is sent when a post's comment tree arrives.
type CommentsLoadedMsg struct {
	PostID   int64
	Comments []domain.Comment
	ReqSeq   int
}

// CommentsErrorMsg is sent when a post's comment fetch fails.
type CommentsErrorMsg struct {
	PostID int64
	Err    error
	ReqSeq int
}

// CommentSubmittedMsg is sent after a reply was posted.
type CommentSubmittedMsg struct {
	Target  ReplyTarget
	Message string
	Err     error
}

// VoteResultMsg is sent after a vote. CommentID is zero for post votes.
type VoteResultMsg struct {
	PostID    int64
	CommentID int64
	Message   string
	Err       error
}

// ComposePostMsg asks the root model to open the new-post form.
type ComposePostMsg struct {
	Group string
}

// RefreshMsg re-fetches the current page.
type RefreshMsg struct{}

// OpenURLResultMsg reports whether the browser could be started.
type OpenURLResultMsg struct {
	URL string
	Err error
}

// ReplyTarget identifies a reply form. CommentID is zero for a reply to the
// post itself; the server never issues zero ids.
type ReplyTarget struct {
	PostID    int64
	CommentID int64
}

// IsPostLevel reports whether the target replies to the post.
func (t ReplyTarget) IsPostLevel() bool {
	return t.CommentID == 0
}

func (t ReplyTarget) parentID() *int64 {
	if t.IsPostLevel() {
		return nil
	}
	id := t.CommentID
	return &id
}

// commentRegion is the display state of one post's comment thread.
type commentRegion struct {
	loading bool
	loaded  bool
	err     error
	nodes   []CommentNode
}

// Model holds the state for the board: navigation, posts, comment threads
// and reply forms.
type Model struct {
	svc     Services
	baseURL string

	keys      common.KeyMap
	spinner   spinner.Model
	width     int
	height    int
	showHints bool

	view ViewState

	allGroups  []domain.Group
	groupList  []domain.Group
	navFocused bool
	navCursor  int
	searching  bool
	search     textinput.Model
	groupQuery string // search shown in the pane, "" for the full list
	groupsSeq  int

	postList []domain.Post
	loading  bool
	err      error
	controls PageControls
	postsSeq int

	regions    map[int64]commentRegion
	commentSeq map[int64]int

	replyOpen  map[ReplyTarget]bool
	drafts     map[ReplyTarget]string
	submitting map[ReplyTarget]bool
	editor     textarea.Model
	editing    bool
	editTarget ReplyTarget

	// focus is the row under the cursor: a post, or one of its comments.
	focus ReplyTarget

	showPreview    bool
	previews       map[string]string // image URL -> thumbnail; "" when it failed
	previewLoading map[string]bool
	previewClient  *http.Client

	notice    string
	noticeErr bool
}

// New creates a board model with injected dependencies.
func New(svc Services, baseURL string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4500"))

	search := textinput.New()
	search.Placeholder = "search subllmits"
	search.CharLimit = 64
	search.Width = navWidth - 6

	ed := textarea.New()
	ed.Placeholder = "Write a reply..."
	ed.CharLimit = replyCharLimit
	ed.SetHeight(4)
	ed.SetWidth(defaultWidth - 8)

	return Model{
		svc:        svc,
		baseURL:    baseURL,
		keys:       common.DefaultKeyMap(),
		spinner:    s,
		view:       NewViewState(),
		groupList:  withFrontPage(nil),
		search:     search,
		loading:    true,
		regions:    make(map[int64]commentRegion),
		commentSeq: make(map[int64]int),
		replyOpen:  make(map[ReplyTarget]bool),
		drafts:     make(map[ReplyTarget]string),
		submitting: make(map[ReplyTarget]bool),
		editor:     ed,

		previews:       make(map[string]string),
		previewLoading: make(map[string]bool),
		previewClient:  newPreviewClient(),
	}
}

// Init starts the initial group and posts fetches.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchGroups(m.groupsSeq, ""),
		m.fetchPosts(m.postsSeq, m.view),
		m.spinner.Tick,
	)
}

// Update handles messages for the board.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m.update(msg)
}

// ViewState returns the current group, sort and page.
func (m Model) ViewState() ViewState {
	return m.view
}

// Posts returns the posts currently displayed.
func (m Model) Posts() []domain.Post {
	return m.postList
}

// Controls returns the pagination controls currently shown.
func (m Model) Controls() PageControls {
	return m.controls
}

// IsTyping reports whether keystrokes go to a text field.
func (m Model) IsTyping() bool {
	return m.editing || m.searching
}

// IsReplyOpen reports whether the reply form for t is visible.
func (m Model) IsReplyOpen(t ReplyTarget) bool {
	return m.replyOpen[t]
}

// Refresh returns a Cmd that re-fetches the current page.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg { return RefreshMsg{} }
}

// withFrontPage prepends the frontpage entry and drops any duplicate of it.
func withFrontPage(groups []domain.Group) []domain.Group {
	out := make([]domain.Group, 0, len(groups)+1)
	out = append(out, domain.Group{Name: domain.FrontPage})
	for _, g := range groups {
		if domain.IsFrontPage(g.Name) {
			continue
		}
		out = append(out, g)
	}
	return out
}
