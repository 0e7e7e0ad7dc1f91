package analysis

import (
	"math"
	"strings"

	"github.com/yourusername/cvlens-api/internal/model"
)

// benchmarkEntry is one row of the static benchmark table, before the
// user-specific fields are computed.
type benchmarkEntry struct {
	RequiredSkills       []string
	AverageSkillCount    int
	CommonCertifications []string
	ExpectedProjectCount int
	SalaryRange          string
}

// BenchmarkProvider resolves (industry, experience level) pairs to canonical
// benchmark profiles. The table is immutable process-lifetime data; unknown
// pairs fall back to a generic default instead of failing.
type BenchmarkProvider struct {
	table      map[string]map[string]benchmarkEntry
	defaultOne benchmarkEntry
}

func NewBenchmarkProvider() *BenchmarkProvider {
	return &BenchmarkProvider{
		table: map[string]map[string]benchmarkEntry{
			"software_engineering": {
				model.LevelEntry: {
					RequiredSkills:       []string{"Python", "JavaScript", "Git", "HTML/CSS", "SQL"},
					AverageSkillCount:    10,
					CommonCertifications: []string{"AWS Cloud Practitioner", "Google Analytics"},
					ExpectedProjectCount: 3,
					SalaryRange:          "$60,000 - $80,000",
				},
				model.LevelJunior: {
					RequiredSkills:       []string{"Python", "JavaScript", "Git", "SQL", "React", "Docker"},
					AverageSkillCount:    12,
					CommonCertifications: []string{"AWS Solutions Architect Associate", "Certified Kubernetes Application Developer"},
					ExpectedProjectCount: 4,
					SalaryRange:          "$80,000 - $100,000",
				},
				model.LevelMid: {
					RequiredSkills:       []string{"Python", "JavaScript", "SQL", "Docker", "Kubernetes", "AWS", "Terraform"},
					AverageSkillCount:    15,
					CommonCertifications: []string{"AWS Solutions Architect Professional"},
					ExpectedProjectCount: 6,
					SalaryRange:          "$100,000 - $130,000",
				},
			},
			"data_science": {
				model.LevelEntry: {
					RequiredSkills:       []string{"Python", "SQL", "Pandas", "Statistics", "Jupyter"},
					AverageSkillCount:    9,
					CommonCertifications: []string{"Google Data Analytics", "Azure Data Fundamentals"},
					ExpectedProjectCount: 3,
					SalaryRange:          "$65,000 - $85,000",
				},
				model.LevelJunior: {
					RequiredSkills:       []string{"Python", "SQL", "Pandas", "Scikit-learn", "TensorFlow", "Spark"},
					AverageSkillCount:    12,
					CommonCertifications: []string{"TensorFlow Developer Certificate"},
					ExpectedProjectCount: 4,
					SalaryRange:          "$85,000 - $110,000",
				},
			},
			"textile_engineering": {
				model.LevelEntry: {
					RequiredSkills:       []string{"Yarn Engineering", "Fiber Technology", "Quality Control", "Textile Testing"},
					AverageSkillCount:    8,
					CommonCertifications: []string{"Textile Technology Certificate", "Quality Management"},
					ExpectedProjectCount: 2,
					SalaryRange:          "$35,000 - $45,000",
				},
				model.LevelJunior: {
					RequiredSkills:       []string{"Yarn Engineering", "Process Optimization", "Quality Control", "Textile Testing", "Production Management"},
					AverageSkillCount:    12,
					CommonCertifications: []string{"Six Sigma", "Lean Manufacturing", "Quality Management"},
					ExpectedProjectCount: 4,
					SalaryRange:          "$45,000 - $60,000",
				},
			},
		},
		defaultOne: benchmarkEntry{
			RequiredSkills:       []string{"Communication", "Problem Solving", "Teamwork"},
			AverageSkillCount:    8,
			CommonCertifications: []string{"Professional Development Certificate"},
			ExpectedProjectCount: 2,
			SalaryRange:          "$30,000 - $50,000",
		},
	}
}

// Lookup resolves the benchmark for an (industry, level) pair and computes
// the user-specific match fields against the given skills. A pair with no
// table entry resolves to the default profile, never an error.
func (p *BenchmarkProvider) Lookup(industry, level string, userSkills []string) model.BenchmarkProfile {
	entry := p.defaultOne
	if byLevel, found := p.table[industry]; found {
		if e, found := byLevel[level]; found {
			entry = e
		}
	}

	required := map[string]bool{}
	for _, s := range entry.RequiredSkills {
		required[strings.ToLower(s)] = true
	}
	matched := 0
	for _, s := range userSkills {
		if required[strings.ToLower(s)] {
			matched++
		}
	}

	// Empty required set is defined as 0% match, never a division error.
	matchPct := 0.0
	if len(required) > 0 {
		matchPct = float64(matched) / float64(len(required)) * 100
	}

	return model.BenchmarkProfile{
		Industry:             industry,
		ExperienceLevel:      level,
		RequiredSkills:       entry.RequiredSkills,
		AverageSkillCount:    entry.AverageSkillCount,
		CommonCertifications: entry.CommonCertifications,
		ExpectedProjectCount: entry.ExpectedProjectCount,
		SalaryRange:          entry.SalaryRange,
		SkillMatchPercentage: round2(matchPct),
		UserSkillsCount:      len(userSkills),
	}
}

// MissingSkills returns the benchmark's required skills the user does not
// have, in benchmark order, compared case-insensitively.
func MissingSkills(benchmark model.BenchmarkProfile, userSkills []string) []string {
	have := map[string]bool{}
	for _, s := range userSkills {
		have[strings.ToLower(s)] = true
	}
	var missing []string
	for _, s := range benchmark.RequiredSkills {
		if !have[strings.ToLower(s)] {
			missing = append(missing, s)
		}
	}
	return missing
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
