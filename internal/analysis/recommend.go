package analysis

import (
	"fmt"
	"strings"

	"github.com/yourusername/cvlens-api/internal/model"
)

// maxRecommendations caps the suggestion list so the report stays scannable.
const maxRecommendations = 5

// GapInput is the candidate-side view the gap rules and match scorer compare
// against a benchmark: just the facts, however they were obtained (extracted
// from raw text or supplied as structured CV data).
type GapInput struct {
	Skills            []string
	ProjectCount      int
	HasCertifications bool
	HasSummary        bool
	HasLinkedIn       bool
}

// GapInputFromProfile derives a GapInput from an extracted profile. Raw text
// only reveals whether a projects section exists, not how many projects it
// holds, so a detected section counts as a single project.
func GapInputFromProfile(profile *model.ExtractedProfile) GapInput {
	projectCount := 0
	if profile.HasSection("projects") {
		projectCount = 1
	}
	return GapInput{
		Skills:            profile.Skills,
		ProjectCount:      projectCount,
		HasCertifications: profile.HasSection("certifications"),
		HasSummary:        profile.HasSection("summary"),
		HasLinkedIn:       strings.Contains(profile.NormalizedText, "linkedin"),
	}
}

// Recommend produces improvement suggestions from the gap between the
// candidate and the benchmark. The rules run in a fixed order and the output
// is capped at maxRecommendations, so identical input always yields the
// identical list.
func Recommend(in GapInput, benchmark model.BenchmarkProfile) []string {
	var suggestions []string

	if missing := MissingSkills(benchmark, in.Skills); len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding these industry-relevant skills: %s", strings.Join(missing, ", ")))
	}

	if benchmark.UserSkillsCount < benchmark.AverageSkillCount {
		suggestions = append(suggestions, fmt.Sprintf(
			"Industry professionals typically have %d skills. Consider expanding your skill set.",
			benchmark.AverageSkillCount))
	}

	if in.ProjectCount < benchmark.ExpectedProjectCount {
		suggestions = append(suggestions, fmt.Sprintf(
			"Add more projects to your portfolio. Industry professionals typically showcase %d projects.",
			benchmark.ExpectedProjectCount))
	}

	if !in.HasCertifications {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider obtaining certifications such as: %s",
			strings.Join(benchmark.CommonCertifications, ", ")))
	}

	if !in.HasSummary {
		suggestions = append(suggestions,
			"Add a professional summary to highlight your key strengths and career objectives.")
	}

	if !in.HasLinkedIn {
		suggestions = append(suggestions,
			"Add your LinkedIn profile to enhance professional networking opportunities.")
	}

	if len(suggestions) > maxRecommendations {
		suggestions = suggestions[:maxRecommendations]
	}
	return suggestions
}
