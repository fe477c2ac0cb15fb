package handlers

import (
	"net/http"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"github.com/Hira-Iftikhar-123/SociaLite/internal/repositories"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/config"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
	postRepository repositories.PostRepository // For the posts shown on a profile
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, postRepo repositories.PostRepository) *UserHandler {
	return &UserHandler{
		userRepository: userRepo,
		postRepository: postRepo,
	}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/profile/:id", h.GetProfile)
	g.PUT("/users/profile", h.UpdateProfile)
	g.PUT("/users/follow/:id", h.ToggleFollow)
	g.GET("/users/search", h.SearchUsers)
}

// GetProfile retrieves a user together with their posts, newest first
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.userRepository.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	posts, err := h.postRepository.GetPostsByUserID(c.Request().Context(), user.ID.Hex())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"user": user, "posts": posts})
}

// UpdateProfile applies the provided subset of profile fields to the
// caller's user document. Absent fields are left untouched.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	caller := callerID(c)

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userRepository.GetUserByID(c.Request().Context(), caller)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}

	if err := h.userRepository.ReplaceUser(c.Request().Context(), user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, user)
}

// ToggleFollow flips the follow relation between the caller and the
// target user: both the caller's following list and the target's
// followers list gain or lose the respective IDs. The two documents are
// saved sequentially without a transaction, target first; a failure on
// the second save leaves the relation asymmetric and is only logged.
func (h *UserHandler) ToggleFollow(c echo.Context) error {
	caller := callerID(c)
	targetID := c.Param("id")

	if targetID == caller {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot follow yourself")
	}

	target, err := h.userRepository.GetUserByID(c.Request().Context(), targetID)
	if err != nil {
		if err == repositories.ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	current, err := h.userRepository.GetUserByID(c.Request().Context(), caller)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Authenticated user not found in database")
	}

	if lo.Contains(current.Following, targetID) {
		current.Following = lo.Without(current.Following, targetID)
		target.Followers = lo.Without(target.Followers, caller)
	} else {
		current.Following = append([]string{targetID}, current.Following...)
		target.Followers = append([]string{caller}, target.Followers...)
	}

	if err := h.userRepository.ReplaceUser(c.Request().Context(), target); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if err := h.userRepository.ReplaceUser(c.Request().Context(), current); err != nil {
		config.Logger.Warn("follow toggle saved target but not caller, relation is asymmetric",
			zap.String("caller", caller),
			zap.String("target", targetID),
			zap.Error(err),
		)
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{
		"following": current.Following,
		"followers": target.Followers,
	})
}

// SearchUsers searches for users by a query string (username or email)
func (h *UserHandler) SearchUsers(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Search query 'q' is required")
	}

	users, err := h.userRepository.SearchUsers(c.Request().Context(), query)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if len(users) > repositories.SearchLimit {
		users = users[:repositories.SearchLimit]
	}

	return c.JSON(http.StatusOK, users)
}
