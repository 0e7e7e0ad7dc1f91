package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cvlens-api/internal/analysis"
	"github.com/yourusername/cvlens-api/internal/middleware"
	"github.com/yourusername/cvlens-api/internal/model"
)

// newTestRouter wires the handlers behind a stub auth middleware that sets a
// fixed Firebase UID. The analysis repo is nil; tests never set save=true.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	analyzer, err := analysis.NewAnalyzer(analysis.DefaultTaxonomy())
	require.NoError(t, err)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyFirebaseUID, "test-uid")
	})

	analyzeHandler := NewAnalyzeHandler(analyzer, nil, 10*1024*1024)
	compareHandler := NewCompareHandler(analyzer)
	insightsHandler := NewInsightsHandler(analyzer)

	r.POST("/analyze", analyzeHandler.Analyze)
	r.POST("/compare", compareHandler.Compare)
	r.GET("/industries", insightsHandler.ListIndustries)
	r.GET("/industries/:industry/insights", insightsHandler.GetInsights)
	r.GET("/benchmarks", insightsHandler.GetBenchmark)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/analyze", gin.H{
		"resumeText": "John Doe\njohn@example.com\nSkills: Python, Django, SQL\n5 years of experience\nBachelor of Science",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Equal(t, "john@example.com", report.Profile.Contact.Email)
	assert.Contains(t, report.Profile.Skills, "python")
	assert.Equal(t, "software_engineering", report.Classification.Industry)
	assert.Equal(t, model.LevelMid, report.Classification.ExperienceLevel)
	assert.Greater(t, report.ScoreReport.TotalScore, 0.0)
	assert.Zero(t, report.JobMatchScore)
}

func TestAnalyze_WithJobDescription(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/analyze", gin.H{
		"resumeText":     "Skills: Python, Docker",
		"jobDescription": "must know python and aws",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 50.0, report.JobMatchScore)
}

func TestAnalyze_MissingResumeText(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/analyze", gin.H{"jobDescription": "python developer"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "resumeText")
}

func TestAnalyze_WhitespaceOnly(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/analyze", gin.H{"resumeText": "   \n\t  "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error  string               `json:"error"`
		Report model.AnalysisReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Zero(t, resp.Report.ScoreReport.TotalScore)
}

func TestAnalyze_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	analyzer, err := analysis.NewAnalyzer(analysis.DefaultTaxonomy())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/analyze", NewAnalyzeHandler(analyzer, nil, 10*1024*1024).Analyze)

	req := httptest.NewRequest(http.MethodPost, "/analyze",
		strings.NewReader(`{"resumeText":"Skills: Python"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCompare(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/compare", model.CVData{
		Name:           "Jane Doe",
		Skills:         []string{"Python", "SQL", "Git"},
		ExperienceText: "2 years as a backend developer",
		Education:      "Bachelor of Science",
		Projects:       []string{"Inventory tracker"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var report model.ComparisonReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.Equal(t, "software_engineering", report.Classification.Industry)
	assert.Equal(t, model.LevelJunior, report.Classification.ExperienceLevel)
	assert.Equal(t, 3, report.SkillsCount)
	assert.Greater(t, report.MatchScore, 0.0)
	assert.NotEmpty(t, report.SimilarProfessionals)
}

func TestCompare_EmptyCV(t *testing.T) {
	r := newTestRouter(t)

	w := postJSON(t, r, "/compare", model.CVData{Name: "Nameless"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
