package board

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
	"github.com/llmit/llmit-term/tui/common"
)

func (m Model) fetchGroups(seq int, query string) tea.Cmd {
	groups := m.svc.Groups
	return func() tea.Msg {
		var (
			list []domain.Group
			err  error
		)
		if query == "" {
			list, err = groups.ListGroups(context.Background())
		} else {
			list, err = groups.SearchGroups(context.Background(), query)
		}
		return GroupsLoadedMsg{Groups: list, Query: query, Err: err, ReqSeq: seq}
	}
}

func (m Model) fetchPosts(seq int, view ViewState) tea.Cmd {
	posts := m.svc.Posts
	q := view.Query()
	key := view.Key()
	return func() tea.Msg {
		list, err := posts.ListPosts(context.Background(), q)
		if err != nil {
			return PostsErrorMsg{Err: err, QueryKey: key, ReqSeq: seq}
		}
		return PostsLoadedMsg{Posts: list, QueryKey: key, ReqSeq: seq}
	}
}

func (m Model) fetchComments(postID int64, seq int) tea.Cmd {
	comments := m.svc.Comments
	return func() tea.Msg {
		list, err := comments.ListComments(context.Background(), postID)
		if err != nil {
			return CommentsErrorMsg{PostID: postID, Err: err, ReqSeq: seq}
		}
		return CommentsLoadedMsg{PostID: postID, Comments: list, ReqSeq: seq}
	}
}

func (m Model) submitComment(target ReplyTarget, content string) tea.Cmd {
	comments := m.svc.Comments
	c := app.NewComment{
		PostID:          target.PostID,
		Content:         content,
		ParentCommentID: target.parentID(),
	}
	return func() tea.Msg {
		msg, err := comments.CreateComment(context.Background(), c)
		return CommentSubmittedMsg{Target: target, Message: msg, Err: err}
	}
}

func (m Model) vote(target ReplyTarget, vote domain.VoteType) tea.Cmd {
	votes := m.svc.Votes
	return func() tea.Msg {
		var (
			msg string
			err error
		)
		if target.IsPostLevel() {
			msg, err = votes.VotePost(context.Background(), target.PostID, vote)
		} else {
			msg, err = votes.VoteComment(context.Background(), target.CommentID, vote)
		}
		return VoteResultMsg{PostID: target.PostID, CommentID: target.CommentID, Message: msg, Err: err}
	}
}

func openURL(rawURL string) tea.Cmd {
	return func() tea.Msg {
		if !common.IsSafeExternalURL(rawURL) {
			return OpenURLResultMsg{URL: rawURL, Err: domain.ErrUnsafeURL}
		}
		if err := browserCommand(rawURL).Start(); err != nil {
			return OpenURLResultMsg{URL: rawURL, Err: fmt.Errorf("opening browser: %w", err)}
		}
		return OpenURLResultMsg{URL: rawURL}
	}
}

func browserCommand(rawURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}
