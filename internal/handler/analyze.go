package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
	"github.com/yourusername/cvlens-api/internal/analysis"
	"github.com/yourusername/cvlens-api/internal/middleware"
	"github.com/yourusername/cvlens-api/internal/repository"
)

// Résumés beyond this length add noise, cost and no signal.
const maxResumeChars = 30000

type AnalyzeHandler struct {
	analyzer       *analysis.Analyzer
	analysisRepo   *repository.AnalysisRepo
	maxUploadBytes int64
}

func NewAnalyzeHandler(analyzer *analysis.Analyzer, analysisRepo *repository.AnalysisRepo, maxUploadBytes int64) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, analysisRepo: analysisRepo, maxUploadBytes: maxUploadBytes}
}

// Analyze handles POST /analyze
// Accepts plain résumé text (already decoded from any document format) and
// an optional target job description, runs the scoring pipeline, and
// optionally persists the report.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	userUID := middleware.GetFirebaseUID(c)
	if userUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req struct {
		ResumeText     string `json:"resumeText" binding:"required"`
		JobDescription string `json:"jobDescription"`
		Save           bool   `json:"save"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resumeText is required"})
		return
	}

	if len(req.ResumeText) > maxResumeChars {
		req.ResumeText = req.ResumeText[:maxResumeChars]
	}

	report := h.analyzer.Analyze(req.ResumeText, req.JobDescription)
	if report.Profile.NormalizedText == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "Could not extract usable content from the resume text.",
			"report": report,
		})
		return
	}

	log.Info().
		Int("resumeLen", len(req.ResumeText)).
		Str("industry", report.Classification.Industry).
		Str("level", report.Classification.ExperienceLevel).
		Float64("totalScore", report.ScoreReport.TotalScore).
		Msg("Resume analyzed")

	if req.Save {
		if _, err := h.analysisRepo.Create(c.Request.Context(), userUID, "", req.ResumeText, report); err != nil {
			// Persistence is best-effort; the report is still returned.
			log.Error().Err(err).Msg("Failed to store analysis")
		}
	}

	c.JSON(http.StatusOK, report)
}

// AnalyzeUpload handles POST /analyze/upload
// Accepts a PDF file via multipart form, extracts its text, then runs the
// same pipeline as Analyze. The analysis core itself never sees bytes.
func (h *AnalyzeHandler) AnalyzeUpload(c *gin.Context) {
	userUID := middleware.GetFirebaseUID(c)
	if userUID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF files are supported"})
		return
	}

	if header.Size > h.maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("File too large. Maximum size is %dMB.", h.maxUploadBytes/(1024*1024)),
		})
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}

	// Validate PDF magic bytes (header must start with %PDF)
	if len(fileBytes) < 4 || string(fileBytes[:4]) != "%PDF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid PDF file"})
		return
	}

	text, err := extractPDFText(fileBytes)
	if err != nil {
		log.Error().Err(err).Msg("Failed to extract text from PDF")
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Could not extract text from this PDF. It may be image-based or corrupted.",
		})
		return
	}

	text = strings.TrimSpace(text)
	if len(text) < 50 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Very little text was extracted. This PDF may be image-based (scanned). Try a text-based PDF.",
		})
		return
	}
	if len(text) > maxResumeChars {
		text = text[:maxResumeChars]
	}

	log.Info().
		Str("filename", header.Filename).
		Int("bytes", len(fileBytes)).
		Int("textLen", len(text)).
		Msg("Resume PDF text extracted")

	jobDescription := c.PostForm("jobDescription")
	report := h.analyzer.Analyze(text, jobDescription)

	if c.PostForm("save") == "true" {
		if _, err := h.analysisRepo.Create(c.Request.Context(), userUID, header.Filename, text, report); err != nil {
			log.Error().Err(err).Msg("Failed to store analysis")
		}
	}

	c.JSON(http.StatusOK, report)
}

// ── Helpers ──────────────────────────────────────────

func extractPDFText(data []byte) (string, error) {
	// Write to temp file — ledongthuc/pdf requires a file reader
	tmpFile, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := tmpFile.Write(data); err != nil {
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	f, reader, err := pdf.Open(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := reader.NumPage()

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Warn().Int("page", i).Err(err).Msg("Failed to extract text from PDF page")
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
