package handlers

import (
	"fmt"
	"net/http"

	"github.com/Hira-Iftikhar-123/SociaLite/internal/models"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/config"
	"github.com/Hira-Iftikhar-123/SociaLite/pkg/openai"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	captionModel     = "gpt-3.5-turbo"
	captionMaxTokens = 50
)

// CaptionHandler forwards a mood to the completion API and returns a caption
type CaptionHandler struct {
	ai *openai.Client
}

// NewCaptionHandler creates a new CaptionHandler
func NewCaptionHandler(aiClient *openai.Client) *CaptionHandler {
	return &CaptionHandler{ai: aiClient}
}

// RegisterCaptionRoutes registers AI-related routes
func (h *CaptionHandler) RegisterCaptionRoutes(g *echo.Group) {
	g.POST("/ai/caption", h.GenerateCaption)
}

// GenerateCaption builds the caption prompt around the given mood and
// returns the trimmed completion. Upstream failure detail stays in the
// log; the client only sees a generic error.
func (h *CaptionHandler) GenerateCaption(c echo.Context) error {
	var req models.CaptionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prompt := fmt.Sprintf("Suggest a social media post caption based on the mood: %q", req.Mood)

	caption, err := h.ai.CompleteChat(c.Request().Context(), captionModel, prompt, captionMaxTokens)
	if err != nil {
		config.Logger.Error("caption generation failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate caption")
	}

	return c.JSON(http.StatusOK, echo.Map{"caption": caption})
}
