package handlers

import (
	"net/http"
	"time"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/repositories"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	userRepository repositories.UserRepository // To resolve denormalized owner fields
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		userRepository: userRepo,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.PUT("/posts/like/:id", h.ToggleLike)
	g.POST("/posts/comment/:id", h.CreateComment)
	g.DELETE("/posts/comment/:id/:commentId", h.DeleteComment)
}

// CreatePost creates a new post owned by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	caller := callerID(c)
	if caller == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	owner, err := h.userRepository.GetUserByID(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	post := &models.Post{
		UserID:       caller,
		Username:     owner.Username,
		ProfileImage: owner.ProfileImage,
		Text:         req.Text,
		Image:        req.Image,
		Likes:        []string{},
		Comments:     []models.Comment{},
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPosts retrieves all posts, newest first, with owner and comment-owner
// fields refreshed from the users collection
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	h.resolveOwners(c, posts)

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts := []models.Post{*post}
	h.resolveOwners(c, posts)

	return c.JSON(http.StatusOK, posts[0])
}

// DeletePost deletes a post; only the owner may delete it
func (h *PostHandler) DeletePost(c echo.Context) error {
	caller := callerID(c)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if post.UserID != caller {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authorized")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post removed"})
}

// ToggleLike flips the caller's membership in the post's likes list:
// prepends on like, removes on unlike. Returns the updated likes list.
func (h *PostHandler) ToggleLike(c echo.Context) error {
	caller := callerID(c)

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if lo.Contains(post.Likes, caller) {
		post.Likes = lo.Without(post.Likes, caller)
	} else {
		post.Likes = append([]string{caller}, post.Likes...)
	}

	if err := h.postRepository.ReplacePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post.Likes)
}

// CreateComment prepends a new comment to a post and returns the updated
// comment list
func (h *PostHandler) CreateComment(c echo.Context) error {
	caller := callerID(c)

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	author, err := h.userRepository.GetUserByID(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	comment := models.Comment{
		ID:           primitive.NewObjectID(),
		UserID:       caller,
		Username:     author.Username,
		ProfileImage: author.ProfileImage,
		Text:         req.Text,
		CreatedAt:    time.Now(),
	}

	post.Comments = append([]models.Comment{comment}, post.Comments...)

	if err := h.postRepository.ReplacePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post.Comments)
}

// DeleteComment removes a comment by its identifier; only the comment
// owner may delete it. Returns the updated comment list.
func (h *PostHandler) DeleteComment(c echo.Context) error {
	caller := callerID(c)
	commentID := c.Param("commentId")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	comment, found := lo.Find(post.Comments, func(cm models.Comment) bool {
		return cm.ID.Hex() == commentID
	})
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Comment does not exist")
	}

	if comment.UserID != caller {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authorized")
	}

	post.Comments = lo.Reject(post.Comments, func(cm models.Comment, _ int) bool {
		return cm.ID.Hex() == commentID
	})

	if err := h.postRepository.ReplacePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, post.Comments)
}

// resolveOwners refreshes denormalized username/avatar fields on posts and
// their comments so profile edits show up on older documents.
func (h *PostHandler) resolveOwners(c echo.Context, posts []models.Post) {
	ids := []string{}
	for _, p := range posts {
		ids = append(ids, p.UserID)
		for _, cm := range p.Comments {
			ids = append(ids, cm.UserID)
		}
	}

	users := map[string]*models.User{}
	for _, id := range lo.Uniq(ids) {
		user, err := h.userRepository.GetUserByID(c.Request().Context(), id)
		if err != nil {
			continue // deleted owners keep their stored snapshot
		}
		users[id] = user
	}

	for i := range posts {
		if u, ok := users[posts[i].UserID]; ok {
			posts[i].Username = u.Username
			posts[i].ProfileImage = u.ProfileImage
		}
		for j := range posts[i].Comments {
			if u, ok := users[posts[i].Comments[j].UserID]; ok {
				posts[i].Comments[j].Username = u.Username
				posts[i].Comments[j].ProfileImage = u.ProfileImage
			}
		}
	}
}
