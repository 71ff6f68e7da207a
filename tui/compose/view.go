package compose

import (
	"strings"

	"github.com/llmit/llmit-term/tui/common"
)

// View renders the new-post form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("LLMit"))
	b.WriteString("  New post in ")
	b.WriteString(common.GroupStyle.Render(m.group))
	b.WriteString("\n\n")

	b.WriteString(m.label("Title", titleField))
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(m.label("Image URL", imageField))
	b.WriteString(m.image.View() + "\n\n")
	b.WriteString(m.label("Content", contentField))
	b.WriteString(m.content.View() + "\n")

	if m.err != nil {
		b.WriteString("\n" + common.ErrorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	hint := "tab: next field • ctrl+s: post • esc: cancel"
	if m.editor != nil {
		hint = "tab: next field • ctrl+e: edit content in $EDITOR • ctrl+s: post • esc: cancel"
	}
	if m.status != "" {
		hint = m.status + "  " + hint
	}
	b.WriteString(common.StatusBarStyle.Render(hint))
	return b.String()
}

func (m Model) label(name string, f field) string {
	if m.focus == f {
		return common.NavCursorStyle.Render("> "+name) + "\n"
	}
	return common.MetadataStyle.Render("  "+name) + "\n"
}
