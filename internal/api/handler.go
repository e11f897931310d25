package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	apperrors "github.com/ghcollect/ghcollect/internal/errors"
	"github.com/ghcollect/ghcollect/internal/models"
)

// CollectorService defines the collection operations the API depends on
type CollectorService interface {
	// Collect runs one full collection for a repository URL
	Collect(ctx context.Context, repoURL string) (*models.Bundle, error)
}

// ErrorResponse is the error body returned by all endpoints
type ErrorResponse struct {
	Error string `json:"error" example:"collection failed"`
}

type Handler struct {
	collector CollectorService
	logger    *logrus.Logger
}

func NewHandler(collector CollectorService, logger *logrus.Logger) *Handler {
	return &Handler{
		collector: collector,
		logger:    logger,
	}
}

// GetRepositoryStats godoc
// @Summary Collect repository statistics
// @Description Runs a full collection for a repository and returns the bundle of commits, pull requests, issues and derived metrics
// @Tags repository
// @Accept json
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} models.Bundle
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos/{owner}/{repo}/stats [get]
func (h *Handler) GetRepositoryStats(c *gin.Context) {
	bundle, ok := h.collect(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// GetRepositoryMetrics godoc
// @Summary Collect repository metrics
// @Description Runs a full collection for a repository and returns only the derived metrics
// @Tags repository
// @Accept json
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} models.Metrics
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /repos/{owner}/{repo}/metrics [get]
func (h *Handler) GetRepositoryMetrics(c *gin.Context) {
	bundle, ok := h.collect(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, bundle.Metrics)
}

// HealthCheck godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// collect runs the pipeline for the path params and writes the error
// response on failure. The dashboard degrades to a warning on a failed
// collection, so failures map to statuses it can tell apart: 400 for a bad
// repository path, 429 when the rate limit was the cause, 502 otherwise.
func (h *Handler) collect(c *gin.Context) (*models.Bundle, bool) {
	owner := c.Param("owner")
	repo := c.Param("repo")

	repoURL := fmt.Sprintf("https://github.com/%s/%s", owner, repo)
	bundle, err := h.collector.Collect(c.Request.Context(), repoURL)
	if err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"owner": owner,
			"repo":  repo,
		}).Error("Collection request failed")
		respondWithError(c, err)
		return nil, false
	}

	return bundle, true
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case apperrors.IsInvalidRepoURL(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid repository"})
	case apperrors.IsRateLimit(err):
		c.JSON(http.StatusTooManyRequests, ErrorResponse{Error: "GitHub API rate limit exceeded, retry later"})
	default:
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "collection failed"})
	}
}
