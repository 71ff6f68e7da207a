package board

import (
	"fmt"
	"strings"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
)

// PageSize is the number of posts requested per page.
const PageSize = 10

// ViewState is what the board is currently showing. It is owned by one
// Model and never persisted.
type ViewState struct {
	Group    string
	Sort     domain.SortOrder
	Page     int
	PageSize int
}

// NewViewState returns the initial state: frontpage, top, first page.
func NewViewState() ViewState {
	return ViewState{
		Group:    domain.FrontPage,
		Sort:     domain.SortTop,
		Page:     1,
		PageSize: PageSize,
	}
}

// SelectGroup switches to name and rewinds to the first page. An empty name
// selects the frontpage.
func (v *ViewState) SelectGroup(name string) {
	name = strings.TrimSpace(name)
	if domain.IsFrontPage(name) {
		name = domain.FrontPage
	}
	v.Group = name
	v.Page = 1
}

// SetSort changes the ordering and rewinds to the first page.
func (v *ViewState) SetSort(s domain.SortOrder) {
	v.Sort = s
	v.Page = 1
}

func (v *ViewState) NextPage() {
	v.Page++
}

// PrevPage steps back one page, never below the first.
func (v *ViewState) PrevPage() {
	if v.Page > 1 {
		v.Page--
	}
}

// IsFrontPage reports whether the aggregate frontpage is selected.
func (v ViewState) IsFrontPage() bool {
	return domain.IsFrontPage(v.Group)
}

// Query builds the posts request for the current state.
func (v ViewState) Query() app.PostQuery {
	return app.PostQuery{
		Group: v.Group,
		Sort:  v.Sort,
		Page:  v.Page,
		Limit: v.PageSize,
	}
}

// Key identifies a (group, sort, page) snapshot. Responses fetched for a
// different key are stale.
func (v ViewState) Key() string {
	return fmt.Sprintf("%s|%s|%d", strings.ToLower(v.Group), v.Sort, v.Page)
}
