package client_test

import (
	"testing"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/client"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newPost(text string) models.Post {
	return models.Post{
		ID:       primitive.NewObjectID(),
		Text:     text,
		Likes:    []string{},
		Comments: []models.Comment{},
	}
}

func TestSessionAuth(t *testing.T) {
	t.Parallel()

	s := client.NewSession()
	require.False(t, s.SignedIn())

	s.SignIn(models.User{Username: "alice"})
	require.True(t, s.SignedIn())

	s.SetPosts([]models.Post{newPost("hello")})
	s.SearchTerm = "bo"
	s.OpenModal = "create-post"

	s.SignOut()
	require.False(t, s.SignedIn())
	require.Empty(t, s.Posts)
	require.Empty(t, s.SearchTerm)
	require.Empty(t, s.OpenModal)
}

func TestSessionInFlightGuard(t *testing.T) {
	t.Parallel()

	s := client.NewSession()
	require.True(t, s.TryBegin())
	require.True(t, s.Busy())
	require.False(t, s.TryBegin()) // duplicate submission blocked

	s.End()
	require.False(t, s.Busy())
	require.True(t, s.TryBegin())
}

func TestSessionMergePost(t *testing.T) {
	t.Parallel()

	s := client.NewSession()
	existing := newPost("original")
	s.SetPosts([]models.Post{existing})

	t.Run("new post is prepended", func(t *testing.T) {
		fresh := newPost("fresh")
		s.MergePost(fresh)
		require.Len(t, s.Posts, 2)
		require.Equal(t, "fresh", s.Posts[0].Text)
	})

	t.Run("known post is replaced in place", func(t *testing.T) {
		updated := existing
		updated.Text = "edited"
		s.MergePost(updated)
		require.Len(t, s.Posts, 2)
		require.Equal(t, "edited", s.Posts[1].Text)
	})
}

func TestSessionServerResponseMerge(t *testing.T) {
	t.Parallel()

	s := client.NewSession()
	post := newPost("hello")
	s.SetPosts([]models.Post{post})

	likes := []string{"user-v"}
	s.SetLikes(post.ID.Hex(), likes)
	require.Equal(t, likes, s.Posts[0].Likes)

	comments := []models.Comment{{ID: primitive.NewObjectID(), Text: "nice"}}
	s.SetComments(post.ID.Hex(), comments)
	require.Equal(t, comments, s.Posts[0].Comments)

	s.RemovePost(post.ID.Hex())
	require.Empty(t, s.Posts)
}

func TestSessionCommentPanels(t *testing.T) {
	t.Parallel()

	s := client.NewSession()
	require.False(t, s.CommentPanelOpen("p1"))

	s.ToggleCommentPanel("p1")
	require.True(t, s.CommentPanelOpen("p1"))
	require.False(t, s.CommentPanelOpen("p2"))

	s.ToggleCommentPanel("p1")
	require.False(t, s.CommentPanelOpen("p1"))
}
