package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hr-bulk-import-api/internal/config"
	"github.com/hr-bulk-import-api/internal/service"
	"github.com/rs/zerolog"
)

// ImportHandler handles the preview and commit import endpoints
type ImportHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "import").Logger(),
	}
}

// Preview handles POST /v1/imports/preview
// Classifies every row of the uploaded CSV without persisting anything.
func (h *ImportHandler) Preview(c *gin.Context) {
	entity, content, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.services.Import.Preview(c.Request.Context(), entity, content)
	if err != nil {
		h.log.Error().Err(err).Str("entity", entity).Msg("Preview failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "preview failed"})
		return
	}

	h.log.Info().
		Str("entity", entity).
		Int("total", report.Summary.Total).
		Int("valid", report.Summary.Valid).
		Int("duplicates", report.Summary.Duplicates).
		Int("errors", report.Summary.Errors).
		Int("warnings", report.Summary.Warnings).
		Msg("Preview computed")

	c.JSON(http.StatusOK, report)
}

// Commit handles POST /v1/imports
// Classifies the uploaded CSV and persists the valid and warning rows.
func (h *ImportHandler) Commit(c *gin.Context) {
	entity, content, ok := h.readUpload(c)
	if !ok {
		return
	}

	report, err := h.services.Import.Commit(c.Request.Context(), entity, content)
	if err != nil {
		h.log.Error().Err(err).Str("entity", entity).Msg("Import failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "import failed"})
		return
	}

	h.log.Info().
		Str("entity", entity).
		Int("created", report.Outcome.Created).
		Int("skipped", report.Outcome.Skipped).
		Int("errors", report.Outcome.Errors).
		Msg("Import finished")

	c.JSON(http.StatusOK, report)
}

// readUpload extracts the entity parameter and the uploaded file content.
// On failure it writes the error response and returns ok=false.
func (h *ImportHandler) readUpload(c *gin.Context) (entity, content string, ok bool) {
	entity = c.PostForm("entity")
	if entity == "" {
		entity = c.Query("entity")
	}
	if entity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity parameter is required (leaves, milestones)"})
		return "", "", false
	}
	if !service.ValidEntities[entity] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "entity must be one of: leaves, milestones"})
		return "", "", false
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file upload is required"})
		return "", "", false
	}
	defer file.Close()

	if header.Size > h.cfg.Import.MaxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file too large, max size is %d MB", h.cfg.Import.MaxUploadSize/(1024*1024)),
		})
		return "", "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to read upload")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return "", "", false
	}

	return entity, string(data), true
}
