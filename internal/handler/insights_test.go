package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cvlens-api/internal/model"
)

func getPath(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListIndustries(t *testing.T) {
	r := newTestRouter(t)

	w := getPath(t, r, "/industries")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Industries []string `json:"industries"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Industries, "software_engineering")
	assert.Contains(t, resp.Industries, "textile_engineering")
}

func TestGetInsights(t *testing.T) {
	r := newTestRouter(t)

	w := getPath(t, r, "/industries/software_engineering/insights")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Industry string                 `json:"industry"`
		Insights model.IndustryInsights `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "software_engineering", resp.Industry)
	assert.NotEmpty(t, resp.Insights.TrendingSkills)
}

func TestGetInsights_UnknownIndustry(t *testing.T) {
	r := newTestRouter(t)

	// Unknown industries fall back to the generic entry, not a 404.
	w := getPath(t, r, "/industries/basket_weaving/insights")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Insights model.IndustryInsights `json:"insights"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Insights.JobOutlook)
}

func TestGetBenchmark(t *testing.T) {
	r := newTestRouter(t)

	w := getPath(t, r, "/benchmarks?industry=software_engineering&level=entry_level")
	require.Equal(t, http.StatusOK, w.Code)

	var benchmark model.BenchmarkProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &benchmark))
	assert.Equal(t, "software_engineering", benchmark.Industry)
	assert.Equal(t, model.LevelEntry, benchmark.ExperienceLevel)
	assert.NotEmpty(t, benchmark.RequiredSkills)
	assert.Zero(t, benchmark.SkillMatchPercentage)
	assert.Zero(t, benchmark.UserSkillsCount)
}

func TestGetBenchmark_MissingParams(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, getPath(t, r, "/benchmarks").Code)
	assert.Equal(t, http.StatusBadRequest, getPath(t, r, "/benchmarks?industry=software_engineering").Code)
	assert.Equal(t, http.StatusBadRequest, getPath(t, r, "/benchmarks?level=entry_level").Code)
}
