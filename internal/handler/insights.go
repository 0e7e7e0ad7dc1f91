package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourusername/cvlens-api/internal/analysis"
)

type InsightsHandler struct {
	analyzer *analysis.Analyzer
}

func NewInsightsHandler(analyzer *analysis.Analyzer) *InsightsHandler {
	return &InsightsHandler{analyzer: analyzer}
}

// ListIndustries handles GET /industries
func (h *InsightsHandler) ListIndustries(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"industries": h.analyzer.Taxonomy().Industries(),
	})
}

// GetInsights handles GET /industries/:industry/insights
// Unknown industries resolve to a generic entry rather than a 404; the
// classifier can produce "general", which has no dedicated insights row.
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	industry := c.Param("industry")
	c.JSON(http.StatusOK, gin.H{
		"industry": industry,
		"insights": analysis.InsightsFor(industry),
	})
}

// GetBenchmark handles GET /benchmarks
// Returns the canonical benchmark for an (industry, level) pair, with the
// computed match fields zeroed since no user skills are involved.
func (h *InsightsHandler) GetBenchmark(c *gin.Context) {
	industry := c.Query("industry")
	level := c.Query("level")
	if industry == "" || level == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "industry and level query parameters are required"})
		return
	}

	benchmark := h.analyzer.Benchmarks().Lookup(industry, level, nil)
	c.JSON(http.StatusOK, benchmark)
}
