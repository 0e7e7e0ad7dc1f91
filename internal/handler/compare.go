package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/cvlens-api/internal/analysis"
	"github.com/yourusername/cvlens-api/internal/middleware"
	"github.com/yourusername/cvlens-api/internal/model"
)

type CompareHandler struct {
	analyzer *analysis.Analyzer
}

func NewCompareHandler(analyzer *analysis.Analyzer) *CompareHandler {
	return &CompareHandler{analyzer: analyzer}
}

// Compare handles POST /compare
// Benchmarks structured CV data against industry peers and returns the match
// score, gap suggestions and example professionals.
func (h *CompareHandler) Compare(c *gin.Context) {
	if middleware.GetFirebaseUID(c) == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var cv model.CVData
	if err := c.ShouldBindJSON(&cv); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid CV data"})
		return
	}

	if len(cv.Skills) == 0 && cv.ExperienceText == "" && len(cv.Experience) == 0 && cv.Education == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide at least skills, experience, or education"})
		return
	}

	report := h.analyzer.Compare(cv)

	log.Info().
		Str("industry", report.Classification.Industry).
		Str("level", report.Classification.ExperienceLevel).
		Float64("matchScore", report.MatchScore).
		Msg("CV compared against benchmark")

	c.JSON(http.StatusOK, report)
}
