package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/infra/editor"
	"github.com/llmit/llmit-term/tui/board"
	"github.com/llmit/llmit-term/tui/common"
	"github.com/llmit/llmit-term/tui/compose"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Groups   app.GroupService
	Posts    app.PostService
	Comments app.CommentService
	Votes    app.VoteService
	Editor   *editor.EnvEditor
	BaseURL  string
}

// PostCreatedMsg is sent after a new post was submitted.
type PostCreatedMsg struct {
	Message string
	Err     error
}

type activeView int

const (
	boardView activeView = iota
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps      Deps
	active    activeView
	board     board.Model
	compose   compose.Model
	keys      common.KeyMap
	status    string // Transient status message (e.g. "Post created.")
	statusErr bool
	width     int
	height    int
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:   deps,
		active: boardView,
		board: board.New(board.Services{
			Groups:   deps.Groups,
			Posts:    deps.Posts,
			Comments: deps.Comments,
			Votes:    deps.Votes,
		}, deps.BaseURL),
		keys: common.DefaultKeyMap(),
	}
}

// Init delegates to the board.
func (a App) Init() tea.Cmd {
	return a.board.Init()
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.active == boardView && key.Matches(msg, a.keys.Quit) && !a.board.IsTyping() {
			return a, tea.Quit
		}
		if a.active == boardView {
			a.status = ""
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		var cmds []tea.Cmd
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		cmds = append(cmds, cmd)
		if a.active == composeView {
			a.compose, cmd = a.compose.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case spinner.TickMsg,
		board.GroupsLoadedMsg,
		board.PostsLoadedMsg, board.PostsErrorMsg,
		board.CommentsLoadedMsg, board.CommentsErrorMsg, board.CommentSubmittedMsg,
		board.VoteResultMsg, board.MediaPreviewLoadedMsg, board.OpenURLResultMsg,
		board.RefreshMsg:
		// Board results land on the board even while the form is open.
		var cmd tea.Cmd
		a.board, cmd = a.board.Update(msg)
		return a, cmd

	case board.ComposePostMsg:
		a.active = composeView
		a.status = ""
		a.compose = compose.New(msg.Group, a.deps.Editor)
		if a.width > 0 {
			a.compose, _ = a.compose.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		return a, a.compose.Init()

	case compose.DoneMsg:
		a.active = boardView
		if msg.Cancelled {
			a.setStatus("Cancelled.", false)
			return a, nil
		}
		a.setStatus("Posting...", false)
		return a, a.createPost(msg.Post)

	case PostCreatedMsg:
		if msg.Err != nil {
			a.setStatus(domain.MessageOf(msg.Err, "Failed to create post."), true)
			return a, nil
		}
		a.setStatus(orDefault(msg.Message, "Post created."), false)
		return a, a.board.Refresh()
	}

	// Delegate to the active sub-model.
	switch a.active {
	case boardView:
		updated, cmd := a.board.Update(msg)
		a.board = updated
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}

	return a, nil
}

func (a App) createPost(p app.NewPost) tea.Cmd {
	posts := a.deps.Posts
	return func() tea.Msg {
		msg, err := posts.CreatePost(context.Background(), p)
		return PostCreatedMsg{Message: msg, Err: err}
	}
}

func (a *App) setStatus(text string, isErr bool) {
	a.status = text
	a.statusErr = isErr
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case boardView:
		s = a.board.View()
	case composeView:
		s = a.compose.View()
	}

	// Append transient status if present.
	if a.status != "" {
		style := common.StatusBarStyle
		if a.statusErr {
			style = common.ErrorStyle
		}
		s += "\n" + style.Render(a.status)
	}

	return s
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
