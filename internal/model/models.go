package model

import (
	"time"

	"github.com/google/uuid"
)

// ── Profile types ──────────────────────────────────────

// ContactInfo holds the contact signals pulled out of résumé text.
// Fields are empty strings when nothing plausible was found.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ExtractedProfile is everything the extraction stages pull from one résumé.
// It is built once per analysis call and never mutated afterwards.
type ExtractedProfile struct {
	RawText          string      `json:"rawText"`
	NormalizedText   string      `json:"-"`
	Skills           []string    `json:"skills"`
	Contact          ContactInfo `json:"contact"`
	ExperienceYears  int         `json:"experienceYears"`
	EducationLevel   string      `json:"educationLevel"`
	DetectedSections []string    `json:"detectedSections"`
}

// HasSection reports whether the given section was detected in the résumé.
func (p *ExtractedProfile) HasSection(name string) bool {
	for _, s := range p.DetectedSections {
		if s == name {
			return true
		}
	}
	return false
}

// ── Classification ─────────────────────────────────────

// Experience levels, coarsest to most senior.
const (
	LevelEntry  = "entry_level"
	LevelJunior = "junior"
	LevelMid    = "mid_level"
	LevelSenior = "senior"
)

// IndustryGeneral is the fallback when no industry keywords match.
const IndustryGeneral = "general"

// Classification is the inferred (industry, seniority) pair for a profile.
type Classification struct {
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experienceLevel"`
}

// ── Benchmark ──────────────────────────────────────────

// BenchmarkProfile is the canonical expectation set for an (industry, level)
// pair, plus two fields computed against the user's extracted skills.
type BenchmarkProfile struct {
	Industry             string   `json:"industry"`
	ExperienceLevel      string   `json:"experienceLevel"`
	RequiredSkills       []string `json:"requiredSkills"`
	AverageSkillCount    int      `json:"averageSkillCount"`
	CommonCertifications []string `json:"commonCertifications"`
	ExpectedProjectCount int      `json:"expectedProjectCount"`
	SalaryRange          string   `json:"salaryRange"`
	SkillMatchPercentage float64  `json:"skillMatchPercentage"`
	UserSkillsCount      int      `json:"userSkillsCount"`
}

// ── Scoring ────────────────────────────────────────────

// ScoreReport is the ATS-style compatibility breakdown for one résumé.
// TotalScore is always StructureScore + KeywordScore + FormatScore,
// rounded to one decimal.
type ScoreReport struct {
	StructureScore  float64        `json:"structureScore"`
	KeywordScore    float64        `json:"keywordScore"`
	FormatScore     float64        `json:"formatScore"`
	TotalScore      float64        `json:"totalScore"`
	KeywordMatches  map[string]int `json:"keywordMatches"`
	MissingKeywords []string       `json:"missingKeywords"`
}

// AnalysisReport is the full result of one analysis call.
type AnalysisReport struct {
	Profile         ExtractedProfile `json:"profile"`
	Classification  Classification   `json:"classification"`
	Benchmark       BenchmarkProfile `json:"benchmark"`
	ScoreReport     ScoreReport      `json:"scoreReport"`
	MatchScore      float64          `json:"matchScore"`
	JobMatchScore   float64          `json:"jobMatchScore,omitempty"`
	Recommendations []string         `json:"recommendations"`
}

// ── Industry insights ──────────────────────────────────

// IndustryInsights is static market context for one industry.
type IndustryInsights struct {
	GrowthRate     string   `json:"growthRate"`
	TrendingSkills []string `json:"trendingSkills"`
	JobOutlook     string   `json:"jobOutlook"`
	AverageSalary  string   `json:"averageSalary"`
	TopCompanies   []string `json:"topCompanies"`
}

// SimilarProfessional is an example peer profile for an (industry, level) pair.
type SimilarProfessional struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

// ComparisonReport is the benchmark-comparison view of a résumé.
type ComparisonReport struct {
	Classification       Classification        `json:"classification"`
	SkillsCount          int                   `json:"skillsCount"`
	Benchmark            BenchmarkProfile      `json:"benchmark"`
	MatchScore           float64               `json:"matchScore"`
	Suggestions          []string              `json:"suggestions"`
	SimilarProfessionals []SimilarProfessional `json:"similarProfessionals"`
}

// CVData is structured CV content supplied by a caller that already parsed
// the résumé (or collected the fields from a form). Experience may arrive as
// free text, a list of positions, or both; ExperienceText wins when present.
type CVData struct {
	Name           string   `json:"name"`
	Email          string   `json:"email,omitempty"`
	Summary        string   `json:"summary,omitempty"`
	Skills         []string `json:"skills"`
	ExperienceText string   `json:"experienceText,omitempty"`
	Experience     []string `json:"experience,omitempty"`
	Education      string   `json:"education,omitempty"`
	Projects       []string `json:"projects,omitempty"`
	Certifications []string `json:"certifications,omitempty"`
	LinkedIn       string   `json:"linkedin,omitempty"`
}

// ── Persistence ────────────────────────────────────────

// AnalysisRecord is one stored analysis, keyed by the authenticated user.
type AnalysisRecord struct {
	ID          uuid.UUID       `json:"id"`
	UserUID     string          `json:"-"`
	Filename    string          `json:"filename,omitempty"`
	ResumeText  string          `json:"resumeText"`
	Industry    string          `json:"industry"`
	Level       string          `json:"level"`
	TotalScore  float64         `json:"totalScore"`
	MatchScore  float64         `json:"matchScore"`
	Report      *AnalysisReport `json:"report,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}
