package domain

import "strings"

// SortOrder selects how the server orders a page of posts.
type SortOrder string

const (
	// SortTop orders by net votes.
	SortTop SortOrder = "top"
	// SortNew orders by creation time, newest first.
	SortNew SortOrder = "new"
)

// ParseSortOrder maps user input to a SortOrder, defaulting to SortTop.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortNew)) {
		return SortNew
	}
	return SortTop
}

// VoteType is the direction of a vote.
type VoteType string

const (
	Upvote   VoteType = "upvote"
	Downvote VoteType = "downvote"
)
