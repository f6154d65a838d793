package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go.metgrid.io/nbhood-api/internal/domain"
	"go.metgrid.io/nbhood-api/internal/usecase"
)

// Handler handles HTTP requests for grid post-processing.
type Handler struct {
	postprocUC *usecase.PostProcessUseCase
}

// NewHandler creates a new HTTP handler.
func NewHandler(postprocUC *usecase.PostProcessUseCase) *Handler {
	return &Handler{
		postprocUC: postprocUC,
	}
}

// ProcessNeighbourhood handles POST /v1/nbhood/process.
func (h *Handler) ProcessNeighbourhood(c *gin.Context) {
	var req usecase.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	result, err := h.postprocUC.ProcessNeighbourhood(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cube": result})
}

// Blend handles POST /v1/blend.
func (h *Handler) Blend(c *gin.Context) {
	var req usecase.BlendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	result, err := h.postprocUC.Blend(req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"cube": result})
}

// HealthCheck handles GET /health.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFor maps engine failures onto HTTP statuses. Every error kind is
// a caller-input problem; shape failures reached through an otherwise
// well-formed request are distinguished as unprocessable.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrShape):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
