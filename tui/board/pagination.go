package board

// PageControls says which pagination controls are shown.
type PageControls struct {
	Next     bool
	Previous bool
}

// Paginate derives control visibility from the size of the page just
// fetched. A full page is taken to mean more may follow, so an exact
// multiple of pageSize shows one trailing empty page.
func Paginate(resultCount, page, pageSize int) PageControls {
	return PageControls{
		Next:     pageSize > 0 && resultCount == pageSize,
		Previous: page > 1,
	}
}

// Empty reports whether no control is shown.
func (c PageControls) Empty() bool {
	return !c.Next && !c.Previous
}
