package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/domain/dto"
	"github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/internal/usecase"
	apperrors "github.com/UmangBhardwaj855/POC1-AI-Adoption-Dashboard/pkg/errors"
)

// GitHubHandler triggers Copilot data syncs. Tokens are used for the request only.
type GitHubHandler struct {
	service *usecase.SyncService
	logger  *zap.Logger
}

func NewGitHubHandler(service *usecase.SyncService, logger *zap.Logger) *GitHubHandler {
	return &GitHubHandler{
		service: service,
		logger:  logger,
	}
}

// Sync handles POST /api/github/sync
func (h *GitHubHandler) Sync(c echo.Context) error {
	var req dto.SyncRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.service.Sync(c.Request().Context(), &req)
	if err != nil {
		return fail(h.logger, c, err, "GitHub sync failed", zap.String("org", req.Org))
	}
	return c.JSON(http.StatusOK, resp)
}

// TestConnection handles GET /api/github/test-connection?token=&org=
func (h *GitHubHandler) TestConnection(c echo.Context) error {
	token := c.QueryParam("token")
	org := c.QueryParam("org")
	if token == "" || org == "" {
		return fail(h.logger, c, apperrors.InvalidArgument("token and org are required"), "Invalid test-connection query")
	}

	resp, err := h.service.TestConnection(c.Request().Context(), token, org)
	if err != nil {
		return fail(h.logger, c, err, "GitHub connection test failed", zap.String("org", org))
	}
	return c.JSON(http.StatusOK, resp)
}
