package llmit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llmit/llmit-term/app"
	"github.com/llmit/llmit-term/domain"
)

func TestGroupService_ListAndSearch(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		writeJSON(w, http.StatusOK, []map[string]any{
			{"id": 1, "name": "tech"},
			{"id": 2, "name": "  "},
			{"id": 3, "name": "news"},
		})
	}))
	svc := NewGroupService(c)

	groups, err := svc.ListGroups(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/api/subllmits/all", gotPath)
	assert.Equal(t, []domain.Group{{ID: 1, Name: "tech"}, {ID: 3, Name: "news"}}, groups)

	_, err = svc.SearchGroups(context.Background(), " te ")
	require.NoError(t, err)
	assert.Equal(t, "/api/subllmits", gotPath)
	assert.Equal(t, "te", gotQuery.Get("query"))
}

func TestPostService_ListPosts_RequestShape(t *testing.T) {
	tests := []struct {
		name      string
		q         app.PostQuery
		wantOrder string
		wantGroup string
		wantPage  string
	}{
		{name: "top", q: app.PostQuery{Group: "tech", Sort: domain.SortTop, Page: 2, Limit: 10}, wantGroup: "tech", wantPage: "2"},
		{name: "new adds order", q: app.PostQuery{Group: "tech", Sort: domain.SortNew, Page: 1, Limit: 10}, wantOrder: "desc", wantGroup: "tech", wantPage: "1"},
		{name: "defaults", q: app.PostQuery{Limit: 10}, wantGroup: "frontpage", wantPage: "1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery url.Values
			c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/posts", r.URL.Path)
				gotQuery = r.URL.Query()
				writeJSON(w, http.StatusOK, []any{})
			}))
			posts, err := NewPostService(c).ListPosts(context.Background(), tc.q)
			require.NoError(t, err)
			assert.Empty(t, posts)
			assert.Equal(t, tc.wantGroup, gotQuery.Get("group"))
			assert.Equal(t, tc.wantPage, gotQuery.Get("page"))
			assert.Equal(t, "10", gotQuery.Get("limit"))
			assert.Equal(t, tc.wantOrder, gotQuery.Get("order"))
			_, hasOrder := gotQuery["order"]
			assert.Equal(t, tc.wantOrder != "", hasOrder)
		})
	}
}

func TestPostService_ListPosts_Mapping(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 7, "group": "tech", "title": "<b>Hello</b>", "content": "a &amp; b<br>c",
			 "image_url": "https://img.example/x.png", "upvotes": 5, "downvotes": 2,
			 "is_ai_generated": true, "timestamp": "2024-05-01T12:30:00.123456", "author": "alice"},
			{"id": 8, "group": "tech", "title": "t", "content": "c", "image_url": null,
			 "timestamp": "garbage", "author": ""}
		]`))
	}))
	posts, err := NewPostService(c).ListPosts(context.Background(), app.PostQuery{Group: "tech", Limit: 10})
	require.NoError(t, err)
	require.Len(t, posts, 2)

	p := posts[0]
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Hello", p.Title)
	assert.Equal(t, "a & b\nc", p.Content)
	assert.Equal(t, "https://img.example/x.png", p.ImageURL)
	assert.Equal(t, 3, p.Score())
	assert.True(t, p.IsAIGenerated)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 30, 0, 123456000, time.UTC), p.CreatedAt)

	assert.False(t, posts[1].HasImage())
	assert.True(t, posts[1].CreatedAt.IsZero())
	assert.Equal(t, "Anonymous", posts[1].Author)
}

func TestPostService_CreatePost(t *testing.T) {
	var body map[string]any
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, map[string]string{"message": "Post submitted successfully."})
	}))
	msg, err := NewPostService(c).CreatePost(context.Background(), app.NewPost{
		Group: "tech", Title: "T", Content: "C", ImageURL: "",
	})
	require.NoError(t, err)
	assert.Equal(t, "Post submitted successfully.", msg)
	assert.Equal(t, map[string]any{"group": "tech", "title": "T", "content": "C", "image_url": ""}, body)
}

func TestCommentService_ListComments_Tree(t *testing.T) {
	var gotPath string
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[
			{"id": 1, "post_id": 42, "content": "root", "author": "a", "parent_comment_id": null, "level": 0,
			 "children": [
				{"id": 2, "post_id": 42, "content": "child", "author": "b", "parent_comment_id": 1, "level": 1,
				 "children": [{"id": 3, "content": "grandchild", "author": "c", "level": 2}]}
			 ]},
			{"id": 4, "post_id": 42, "content": "null children", "author": "d", "children": null},
			{"id": 5, "post_id": 42, "content": "no children key", "author": "e"}
		]`))
	}))
	roots, err := NewCommentService(c).ListComments(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "/api/posts/42/comments", gotPath)
	require.Len(t, roots, 3)
	assert.Equal(t, 5, domain.CountComments(roots))

	assert.True(t, roots[0].IsRoot())
	child := roots[0].Children[0]
	require.NotNil(t, child.ParentCommentID)
	assert.Equal(t, int64(1), *child.ParentCommentID)

	grand := child.Children[0]
	assert.Equal(t, int64(42), grand.PostID, "post id inherited from enclosing tree")
	require.NotNil(t, grand.ParentCommentID)
	assert.Equal(t, int64(2), *grand.ParentCommentID, "parent id inherited from enclosing node")
	assert.True(t, grand.IsLeaf())

	assert.True(t, roots[1].IsLeaf())
	assert.True(t, roots[2].IsLeaf())
}

func TestCommentService_CreateComment_RootSendsNullParent(t *testing.T) {
	var raw map[string]json.RawMessage
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/comments", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		writeJSON(w, http.StatusOK, map[string]string{"message": "Comment submitted successfully"})
	}))
	msg, err := NewCommentService(c).CreateComment(context.Background(), app.NewComment{PostID: 42, Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Comment submitted successfully", msg)
	assert.JSONEq(t, "42", string(raw["post_id"]))
	assert.JSONEq(t, `"hi"`, string(raw["content"]))
	assert.JSONEq(t, "null", string(raw["parent_comment_id"]))
}

func TestCommentService_CreateComment_Reply(t *testing.T) {
	var raw map[string]json.RawMessage
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	}))
	parent := int64(9)
	_, err := NewCommentService(c).CreateComment(context.Background(), app.NewComment{PostID: 42, Content: "hi", ParentCommentID: &parent})
	require.NoError(t, err)
	assert.JSONEq(t, "9", string(raw["parent_comment_id"]))
}

func TestVoteService(t *testing.T) {
	var gotPath string
	var body map[string]any
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]string{"message": "Vote recorded"})
	}))
	svc := NewVoteService(c)

	msg, err := svc.VotePost(context.Background(), 3, domain.Upvote)
	require.NoError(t, err)
	assert.Equal(t, "Vote recorded", msg)
	assert.Equal(t, "/api/votes/posts", gotPath)
	assert.Equal(t, map[string]any{"post_id": float64(3), "vote_type": "upvote"}, body)

	_, err = svc.VoteComment(context.Background(), 4, domain.Downvote)
	require.NoError(t, err)
	assert.Equal(t, "/api/votes/comments", gotPath)
	assert.Equal(t, map[string]any{"comment_id": float64(4), "vote_type": "downvote"}, body)
}

func TestVoteService_NotFound(t *testing.T) {
	c := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Post not found"})
	}))
	_, err := NewVoteService(c).VotePost(context.Background(), 99, domain.Upvote)
	assert.Equal(t, "Post not found", domain.MessageOf(err, "generic"))
}
