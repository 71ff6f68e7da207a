package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit         key.Binding
	Refresh      key.Binding
	Up           key.Binding
	Down         key.Binding
	FocusNav     key.Binding // tab: switch between subllmits and posts
	Select       key.Binding // enter: select subllmit / load comments
	LoadComments key.Binding // c: load comments for the focused post
	Reply        key.Binding // r: toggle the reply form of the focused node
	Submit       key.Binding // s: submit the focused node's reply
	SubmitForm   key.Binding // ctrl+s: submit while typing
	Resume       key.Binding // i: resume typing into an open reply form
	Cancel       key.Binding // esc
	SortTop      key.Binding
	SortNew      key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding
	Back         key.Binding // b: back to frontpage
	Search       key.Binding // /: search subllmits
	NewPost      key.Binding // p: new post, or create subllmit on the frontpage
	Upvote       key.Binding
	Downvote     key.Binding
	Open         key.Binding // o: open image in browser
	Preview      key.Binding // v: toggle inline image previews
	ToggleHints  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		FocusNav: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "subllmits"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		LoadComments: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comments"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply"),
		),
		Submit: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "submit reply"),
		),
		SubmitForm: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Resume: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit reply"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		SortTop: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "top"),
		),
		SortNew: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("]", "right"),
			key.WithHelp("]", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("[", "left"),
			key.WithHelp("[", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "frontpage"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		NewPost: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "new post"),
		),
		Upvote: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "upvote"),
		),
		Downvote: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "downvote"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "image preview"),
		),
		ToggleHints: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}
