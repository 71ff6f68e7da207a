package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/infra/editor"
)

// --- Fields ---

type field int

const (
	titleField field = iota
	imageField
	contentField
	fieldCount
)

// --- Messages ---

// DoneMsg is sent when the form is submitted or cancelled.
type DoneMsg struct {
	Post      app.NewPost
	Cancelled bool
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the new-post form.
type Model struct {
	group   string
	editor  *editor.EnvEditor
	title   textinput.Model
	image   textinput.Model
	content textarea.Model
	focus   field
	status  string
	err     error
}

// New creates a form for a post in group. ed may be nil, which disables
// ctrl+e.
func New(group string, ed *editor.EnvEditor) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 300
	title.Width = 64

	image := textinput.New()
	image.Placeholder = "https://... (optional)"
	image.CharLimit = 2048
	image.Width = 64

	ta := textarea.New()
	ta.Placeholder = "What do you want to say?"
	ta.CharLimit = 10000
	ta.SetWidth(72)
	ta.SetHeight(8)

	m := Model{
		group:   group,
		editor:  ed,
		title:   title,
		image:   image,
		content: ta,
	}
	m.focusField(titleField)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Group is the subllmit the post is filed under.
func (m Model) Group() string {
	return m.group
}

// Post returns the submission as currently filled in. Fields are sent as
// typed; the server decides what it accepts.
func (m Model) Post() app.NewPost {
	return app.NewPost{
		Group:    m.group,
		Title:    strings.TrimSpace(m.title.Value()),
		Content:  m.content.Value(),
		ImageURL: strings.TrimSpace(m.image.Value()),
	}
}

// launchEditor hands the content field to $EDITOR via tea.ExecProcess,
// which suspends Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.content.Value(), "New post in "+m.group)
	if err != nil {
		m.err = fmt.Errorf("preparing editor: %w", err)
		return nil
	}
	m.status = "Editing content in $EDITOR..."
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("editor: %w", msg.err)
			m.status = ""
			return m, nil
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			m.err = err
			m.status = ""
			return m, nil
		}
		m.err = nil
		m.content.SetValue(content)
		m.status = "Content updated from editor."
		return m, nil

	case tea.WindowSizeMsg:
		w := max(msg.Width-8, 20)
		m.title.Width = w
		m.image.Width = w
		m.content.SetWidth(w)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, done(DoneMsg{Cancelled: true})
		case "ctrl+s":
			return m, done(DoneMsg{Post: m.Post()})
		case "tab":
			cmd := m.focusField((m.focus + 1) % fieldCount)
			return m, cmd
		case "shift+tab":
			cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd
		case "ctrl+e":
			if m.editor == nil {
				return m, nil
			}
			cmd := m.launchEditor()
			return m, cmd
		}
	}

	// Typing and cursor blinks go to the focused field.
	var cmd tea.Cmd
	switch m.focus {
	case titleField:
		m.title, cmd = m.title.Update(msg)
	case imageField:
		m.image, cmd = m.image.Update(msg)
	case contentField:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusField(f field) tea.Cmd {
	m.focus = f
	m.title.Blur()
	m.image.Blur()
	m.content.Blur()
	switch f {
	case titleField:
		return m.title.Focus()
	case imageField:
		return m.image.Focus()
	default:
		return m.content.Focus()
	}
}

// done wraps a DoneMsg into a tea.Cmd for immediate delivery.
func done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
