package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4500")).
			Padding(1, 1, 0, 1)

	// GroupStyle styles the current subllmit badge next to the title.
	GroupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// TaglineStyle styles the sort/page summary.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Italic(true).
			MarginLeft(1)

	// TitleStyle styles a post title.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#CAD3F5"))

	// AuthorStyle styles author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// MetadataStyle styles scores, timestamps and the "in <group>" label.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// AIBadgeStyle marks machine-generated posts and comments.
	AIBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C6A0F6")).
			Faint(true)

	// ContentStyle styles post and comment text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the card holding the cursor.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4500")).
			Padding(0, 1)

	// UnselectedStyle gives other cards a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// FocusedCommentStyle marks the comment holding the cursor.
	FocusedCommentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF4500")).
				Bold(true)

	// ReplyFormStyle frames an open reply form.
	ReplyFormStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#8BD5CA")).
			PaddingLeft(1)

	// NavStyle frames the subllmit navigation pane.
	NavStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// NavActiveStyle highlights the current subllmit in the pane.
	NavActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// NavCursorStyle highlights the subllmit under the navigation cursor.
	NavCursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4500")).
			Bold(true)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)

	// PlaceholderStyle styles "nothing here" messages.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6E738D")).
				Italic(true)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)
)
