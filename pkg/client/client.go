package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"resty.dev/v3"
)

// Client is the Go API client covering the full SociaLite surface. The
// bearer token installed by Login/Register authenticates every later call.
type Client struct {
	baseURL string
	http    *resty.Client
}

// New creates a client against the given server base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    resty.New().SetTimeout(10 * time.Second),
	}
}

func (c *Client) Close() error {
	return c.http.Close()
}

// SetToken installs the bearer token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func (c *Client) r(ctx context.Context) *resty.Request {
	return c.http.R().WithContext(ctx)
}

func statusErr(op string, res *resty.Response) error {
	return fmt.Errorf("%s: status %d", op, res.StatusCode())
}

// AuthResponse is returned by the register/login endpoints.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// ProfileResponse is returned by the profile endpoint.
type ProfileResponse struct {
	User  models.User   `json:"user"`
	Posts []models.Post `json:"posts"`
}

// FollowResponse is returned by the follow-toggle endpoint.
type FollowResponse struct {
	Following []string `json:"following"`
	Followers []string `json:"followers"`
}

// Register creates an account and installs the returned token.
func (c *Client) Register(ctx context.Context, username, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	res, err := c.r(ctx).
		SetBody(models.RegisterRequest{Username: username, Email: email, Password: password}).
		SetResult(&out).
		Post(c.baseURL + "/api/auth/register")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("register", res)
	}
	c.SetToken(out.Token)
	return &out, nil
}

// Login authenticates and installs the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	res, err := c.r(ctx).
		SetBody(models.LoginRequest{Email: email, Password: password}).
		SetResult(&out).
		Post(c.baseURL + "/api/auth/login")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("login", res)
	}
	c.SetToken(out.Token)
	return &out, nil
}

// CreatePost publishes a post and returns the server's copy.
func (c *Client) CreatePost(ctx context.Context, text, image string) (*models.Post, error) {
	var out models.Post
	res, err := c.r(ctx).
		SetBody(models.CreatePostRequest{Text: text, Image: image}).
		SetResult(&out).
		Post(c.baseURL + "/api/posts")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("create post", res)
	}
	return &out, nil
}

// ListPosts fetches the full feed, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var out []models.Post
	res, err := c.r(ctx).SetResult(&out).Get(c.baseURL + "/api/posts")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("list posts", res)
	}
	return out, nil
}

// GetPost fetches one post by ID.
func (c *Client) GetPost(ctx context.Context, id string) (*models.Post, error) {
	var out models.Post
	res, err := c.r(ctx).SetResult(&out).Get(c.baseURL + "/api/posts/" + id)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("get post", res)
	}
	return &out, nil
}

// DeletePost removes one of the caller's posts.
func (c *Client) DeletePost(ctx context.Context, id string) error {
	res, err := c.r(ctx).Delete(c.baseURL + "/api/posts/" + id)
	if err != nil {
		return err
	}
	if res.IsError() {
		return statusErr("delete post", res)
	}
	return nil
}

// ToggleLike flips the caller's like on a post and returns the new likes list.
func (c *Client) ToggleLike(ctx context.Context, id string) ([]string, error) {
	var out []string
	res, err := c.r(ctx).SetResult(&out).Put(c.baseURL + "/api/posts/like/" + id)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("toggle like", res)
	}
	return out, nil
}

// AddComment comments on a post and returns the new comment list.
func (c *Client) AddComment(ctx context.Context, id, text string) ([]models.Comment, error) {
	var out []models.Comment
	res, err := c.r(ctx).
		SetBody(models.CreateCommentRequest{Text: text}).
		SetResult(&out).
		Post(c.baseURL + "/api/posts/comment/" + id)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("add comment", res)
	}
	return out, nil
}

// DeleteComment removes the caller's comment and returns the new comment list.
func (c *Client) DeleteComment(ctx context.Context, postID, commentID string) ([]models.Comment, error) {
	var out []models.Comment
	res, err := c.r(ctx).
		SetResult(&out).
		Delete(c.baseURL + "/api/posts/comment/" + postID + "/" + commentID)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("delete comment", res)
	}
	return out, nil
}

// Profile fetches a user together with their posts.
func (c *Client) Profile(ctx context.Context, id string) (*ProfileResponse, error) {
	var out ProfileResponse
	res, err := c.r(ctx).SetResult(&out).Get(c.baseURL + "/api/users/profile/" + id)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("profile", res)
	}
	return &out, nil
}

// UpdateProfile patches the caller's profile; only non-nil fields change.
func (c *Client) UpdateProfile(ctx context.Context, patch models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	res, err := c.r(ctx).
		SetBody(patch).
		SetResult(&out).
		Put(c.baseURL + "/api/users/profile")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("update profile", res)
	}
	return &out, nil
}

// ToggleFollow flips the follow relation with the target user.
func (c *Client) ToggleFollow(ctx context.Context, id string) (*FollowResponse, error) {
	var out FollowResponse
	res, err := c.r(ctx).SetResult(&out).Put(c.baseURL + "/api/users/follow/" + id)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("toggle follow", res)
	}
	return &out, nil
}

// SearchUsers finds up to ten users matching the query.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]models.User, error) {
	var out []models.User
	res, err := c.r(ctx).
		SetQueryParam("q", query).
		SetResult(&out).
		Get(c.baseURL + "/api/users/search")
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, statusErr("search users", res)
	}
	return out, nil
}

// GenerateCaption asks the server for an AI caption for the given mood.
func (c *Client) GenerateCaption(ctx context.Context, mood string) (string, error) {
	var out struct {
		Caption string `json:"caption"`
	}
	res, err := c.r(ctx).
		SetBody(models.CaptionRequest{Mood: mood}).
		SetResult(&out).
		Post(c.baseURL + "/api/ai/caption")
	if err != nil {
		return "", err
	}
	if res.IsError() {
		return "", statusErr("generate caption", res)
	}
	return out.Caption, nil
}
