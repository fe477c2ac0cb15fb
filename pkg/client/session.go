package client

import (
	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"github.com/samber/lo"
)

// Session holds the client-side state for one application run: the
// authenticated user (or none), the loaded post collection and transient
// view state. Views receive the session explicitly; there is no ambient
// global. Mutations are not optimistic: callers apply only the server's
// response through the Set*/Merge* methods.
type Session struct {
	CurrentUser *models.User
	Posts       []models.Post

	SearchTerm string
	OpenModal  string

	commentPanels map[string]bool
	inFlight      bool
}

// NewSession creates an empty, signed-out session.
func NewSession() *Session {
	return &Session{
		Posts:         []models.Post{},
		commentPanels: map[string]bool{},
	}
}

// SignedIn reports whether a user is cached; navigation gating keys off
// this alone.
func (s *Session) SignedIn() bool {
	return s.CurrentUser != nil
}

// SignIn caches the authenticated user.
func (s *Session) SignIn(user models.User) {
	s.CurrentUser = &user
}

// SignOut clears the user and all loaded state.
func (s *Session) SignOut() {
	s.CurrentUser = nil
	s.Posts = []models.Post{}
	s.SearchTerm = ""
	s.OpenModal = ""
	s.commentPanels = map[string]bool{}
	s.inFlight = false
}

// TryBegin marks a submission as outstanding. It returns false while a
// previous submission has not ended, which is how duplicate clicks are
// suppressed. Callers must pair a successful TryBegin with End.
func (s *Session) TryBegin() bool {
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// End clears the outstanding-submission flag.
func (s *Session) End() {
	s.inFlight = false
}

// Busy reports whether a submission is outstanding.
func (s *Session) Busy() bool {
	return s.inFlight
}

// SetPosts replaces the loaded post collection.
func (s *Session) SetPosts(posts []models.Post) {
	s.Posts = posts
}

// MergePost replaces the stored copy of a post, or prepends it when the
// post is new.
func (s *Session) MergePost(post models.Post) {
	_, i, found := lo.FindIndexOf(s.Posts, func(p models.Post) bool {
		return p.ID == post.ID
	})
	if found {
		s.Posts[i] = post
		return
	}
	s.Posts = append([]models.Post{post}, s.Posts...)
}

// RemovePost drops a post from the loaded collection.
func (s *Session) RemovePost(id string) {
	s.Posts = lo.Reject(s.Posts, func(p models.Post, _ int) bool {
		return p.ID.Hex() == id
	})
}

// SetLikes applies the server's likes list to the stored post.
func (s *Session) SetLikes(postID string, likes []string) {
	for i := range s.Posts {
		if s.Posts[i].ID.Hex() == postID {
			s.Posts[i].Likes = likes
			return
		}
	}
}

// SetComments applies the server's comment list to the stored post.
func (s *Session) SetComments(postID string, comments []models.Comment) {
	for i := range s.Posts {
		if s.Posts[i].ID.Hex() == postID {
			s.Posts[i].Comments = comments
			return
		}
	}
}

// ToggleCommentPanel flips the comment-panel visibility for a post.
func (s *Session) ToggleCommentPanel(postID string) {
	s.commentPanels[postID] = !s.commentPanels[postID]
}

// CommentPanelOpen reports the comment-panel visibility for a post.
func (s *Session) CommentPanelOpen(postID string) bool {
	return s.commentPanels[postID]
}
