package board

import (
	"testing"

	"github.com/llmit/llmit-term/domain"
)

func TestNewViewState_Defaults(t *testing.T) {
	v := NewViewState()
	if v.Group != domain.FrontPage || v.Sort != domain.SortTop || v.Page != 1 || v.PageSize != 10 {
		t.Fatalf("unexpected initial state: %+v", v)
	}
}

func TestViewState_SelectGroupAndSortResetPage(t *testing.T) {
	v := NewViewState()
	v.Page = 4
	v.SelectGroup("tech")
	if v.Group != "tech" || v.Page != 1 {
		t.Fatalf("select group must rewind to page 1: %+v", v)
	}

	v.Page = 3
	v.SetSort(domain.SortNew)
	if v.Sort != domain.SortNew || v.Page != 1 {
		t.Fatalf("sort change must rewind to page 1: %+v", v)
	}

	v.Page = 2
	v.SelectGroup("  ")
	if v.Group != domain.FrontPage || v.Page != 1 {
		t.Fatalf("empty group selects frontpage: %+v", v)
	}
}

func TestViewState_PrevPageFloorsAtOne(t *testing.T) {
	v := NewViewState()
	v.PrevPage()
	if v.Page != 1 {
		t.Fatalf("page went below 1: %d", v.Page)
	}
	v.NextPage()
	v.NextPage()
	v.PrevPage()
	if v.Page != 2 {
		t.Fatalf("expected page 2, got %d", v.Page)
	}
}

func TestViewState_QueryAndKey(t *testing.T) {
	v := NewViewState()
	v.SelectGroup("Tech")
	v.SetSort(domain.SortNew)
	v.NextPage()

	q := v.Query()
	if q.Group != "Tech" || q.Sort != domain.SortNew || q.Page != 2 || q.Limit != PageSize {
		t.Fatalf("unexpected query: %+v", q)
	}
	if v.Key() != "tech|new|2" {
		t.Fatalf("unexpected key: %q", v.Key())
	}
	if v.IsFrontPage() {
		t.Fatalf("tech is not the frontpage")
	}
}
