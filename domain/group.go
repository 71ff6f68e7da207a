package domain

import "strings"

// FrontPage is the aggregate group shown when no subllmit is selected.
const FrontPage = "frontpage"

// Group is a subllmit: a named forum category posts are filed under.
type Group struct {
	ID   int64
	Name string
}

// IsFrontPage reports whether name refers to the aggregate frontpage view.
func IsFrontPage(name string) bool {
	name = strings.TrimSpace(name)
	return name == "" || strings.EqualFold(name, FrontPage)
}
