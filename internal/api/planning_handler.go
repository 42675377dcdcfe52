package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hr-bulk-import-api/internal/planning"
	"github.com/rs/zerolog"
)

// PlanningHandler handles task scheduling checks
type PlanningHandler struct {
	log zerolog.Logger
}

// NewPlanningHandler creates a new PlanningHandler
func NewPlanningHandler(log zerolog.Logger) *PlanningHandler {
	return &PlanningHandler{log: log.With().Str("handler", "planning").Logger()}
}

// conflictRequest is the body of POST /v1/tasks/conflicts
type conflictRequest struct {
	Task         planning.Task         `json:"task"`
	Dependencies []planning.Dependency `json:"dependencies"`
}

// CheckConflicts handles POST /v1/tasks/conflicts
// Reports every dependency whose end date is on or after the task's start.
func (h *PlanningHandler) CheckConflicts(c *gin.Context) {
	var req conflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	conflicts := planning.DateConflicts(req.Task, req.Dependencies)

	c.JSON(http.StatusOK, gin.H{
		"task_id":   req.Task.ID,
		"conflicts": conflicts,
		"count":     len(conflicts),
	})
}
