package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/cvlens-api/internal/middleware"
	"github.com/yourusername/cvlens-api/internal/repository"
)

type HistoryHandler struct {
	analysisRepo *repository.AnalysisRepo
}

func NewHistoryHandler(analysisRepo *repository.AnalysisRepo) *HistoryHandler {
	return &HistoryHandler{analysisRepo: analysisRepo}
}

// List handles GET /analyses
func (h *HistoryHandler) List(c *gin.Context) {
	userUID := middleware.GetFirebaseUID(c)
	if userUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, err := h.analysisRepo.ListByUser(c.Request.Context(), userUID, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list analyses")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list analyses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": records})
}

// Get handles GET /analyses/:id
func (h *HistoryHandler) Get(c *gin.Context) {
	userUID := middleware.GetFirebaseUID(c)
	if userUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis ID"})
		return
	}

	record, err := h.analysisRepo.FindByID(c.Request.Context(), id, userUID)
	if err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to fetch analysis")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analysis"})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /analyses/:id
func (h *HistoryHandler) Delete(c *gin.Context) {
	userUID := middleware.GetFirebaseUID(c)
	if userUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis ID"})
		return
	}

	if err := h.analysisRepo.Delete(c.Request.Context(), id, userUID); err != nil {
		if err == pgx.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Analysis not found"})
			return
		}
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete analysis")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete analysis"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
