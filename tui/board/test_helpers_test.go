package board

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
)

type stubGroups struct {
	groups  []domain.Group
	err     error
	queries []string
}

func (s *stubGroups) ListGroups(context.Context) ([]domain.Group, error) {
	return s.groups, s.err
}

func (s *stubGroups) SearchGroups(_ context.Context, query string) ([]domain.Group, error) {
	s.queries = append(s.queries, query)
	return s.groups, s.err
}

type stubPosts struct {
	posts   []domain.Post
	err     error
	queries []app.PostQuery
}

func (s *stubPosts) ListPosts(_ context.Context, q app.PostQuery) ([]domain.Post, error) {
	s.queries = append(s.queries, q)
	return s.posts, s.err
}

func (s *stubPosts) CreatePost(context.Context, app.NewPost) (string, error) {
	return "Post created successfully", nil
}

type stubComments struct {
	comments []domain.Comment
	err      error
	listed   []int64
	created  []app.NewComment
	message  string
}

func (s *stubComments) ListComments(_ context.Context, postID int64) ([]domain.Comment, error) {
	s.listed = append(s.listed, postID)
	return s.comments, s.err
}

func (s *stubComments) CreateComment(_ context.Context, c app.NewComment) (string, error) {
	s.created = append(s.created, c)
	if s.err != nil {
		return "", s.err
	}
	return s.message, nil
}

type voteCall struct {
	id      int64
	comment bool
	vote    domain.VoteType
}

type stubVotes struct {
	calls []voteCall
	err   error
}

func (s *stubVotes) VotePost(_ context.Context, id int64, v domain.VoteType) (string, error) {
	s.calls = append(s.calls, voteCall{id: id, vote: v})
	return "Vote recorded", s.err
}

func (s *stubVotes) VoteComment(_ context.Context, id int64, v domain.VoteType) (string, error) {
	s.calls = append(s.calls, voteCall{id: id, comment: true, vote: v})
	return "Vote recorded", s.err
}

type stubs struct {
	groups   *stubGroups
	posts    *stubPosts
	comments *stubComments
	votes    *stubVotes
}

func newTestModel() (Model, stubs) {
	st := stubs{
		groups:   &stubGroups{},
		posts:    &stubPosts{},
		comments: &stubComments{message: "Comment created successfully"},
		votes:    &stubVotes{},
	}
	m := New(Services{
		Groups:   st.groups,
		Posts:    st.posts,
		Comments: st.comments,
		Votes:    st.votes,
	}, "http://localhost:5000")
	return m, st
}

// withPosts delivers a posts page answering the model's latest request.
func withPosts(m Model, posts []domain.Post) Model {
	m, _ = m.Update(PostsLoadedMsg{Posts: posts, QueryKey: m.view.Key(), ReqSeq: m.postsSeq})
	return m
}

// withComments loads a comment tree for postID through the normal fetch path.
func withComments(m Model, st stubs, postID int64, comments []domain.Comment) Model {
	st.comments.comments = comments
	m, cmd := m.loadComments(postID)
	m, _ = m.Update(cmd())
	return m
}

func makePost(id int64, group string) domain.Post {
	return domain.Post{
		ID:        id,
		Title:     "Post " + group,
		Content:   "body",
		Author:    "alice",
		Group:     group,
		Upvotes:   3,
		Downvotes: 1,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func makePosts(n int) []domain.Post {
	out := make([]domain.Post, n)
	for i := range out {
		out[i] = makePost(int64(i+1), "tech")
	}
	return out
}

func parent(id int64) *int64 {
	return &id
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runeKey(r))
	}
	return m
}

// sampleThread is 1 -> (2 -> 3), 4.
func sampleThread(postID int64) []domain.Comment {
	return []domain.Comment{
		{
			ID: 1, PostID: postID, Author: "bob", Content: "root",
			Children: []domain.Comment{
				{
					ID: 2, PostID: postID, ParentCommentID: parent(1), Author: "carol", Content: "child",
					Children: []domain.Comment{
						{ID: 3, PostID: postID, ParentCommentID: parent(2), Author: "dave", Content: "grandchild"},
					},
				},
			},
		},
		{ID: 4, PostID: postID, Author: "erin", Content: "second root", Children: []domain.Comment{}},
	}
}
