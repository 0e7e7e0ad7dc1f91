package analysis

import (
	"strings"

	"github.com/yourusername/cvlens-api/internal/model"
)

// Structure awards, in points. Their sum is the structure cap.
const (
	pointsContact    = 10
	pointsSummary    = 5
	pointsExperience = 10
	pointsEducation  = 3
	pointsSkills     = 2

	structureCap = 30
	keywordCap   = 40

	// Generated and plain-text résumés are assumed well-formatted; the
	// formatting component is a constant rather than a penalty system.
	formatScore = 30

	// A single keyword stops counting after this many mentions, so keyword
	// stuffing cannot dominate the density score.
	maxMentionsPerKeyword = 3
)

// Scorer computes the ATS compatibility score and the professional match
// score. It never fails on missing fields; absent data simply scores zero.
type Scorer struct {
	tax *Taxonomy
}

func NewScorer(tax *Taxonomy) *Scorer {
	return &Scorer{tax: tax}
}

// ATSScore estimates how well the résumé would survive automated screening:
// structural completeness (max 30) + keyword density for the classified
// industry (max 40) + the constant formatting component (30). The total is
// rounded to one decimal.
func (s *Scorer) ATSScore(profile *model.ExtractedProfile, industry string) model.ScoreReport {
	structure := 0
	if profile.Contact.Email != "" || profile.Contact.Phone != "" {
		structure += pointsContact
	}
	if profile.HasSection("summary") {
		structure += pointsSummary
	}
	if profile.HasSection("experience") {
		structure += pointsExperience
	}
	if profile.HasSection("education") {
		structure += pointsEducation
	}
	if profile.HasSection("skills") {
		structure += pointsSkills
	}
	if structure > structureCap {
		structure = structureCap
	}

	keywords := s.tax.ATSKeywordsFor(industry)
	matches := map[string]int{}
	var missing []string
	counted := 0
	for _, kw := range keywords {
		count := strings.Count(profile.NormalizedText, strings.ToLower(kw))
		if count > 0 {
			matches[kw] = count
			if count > maxMentionsPerKeyword {
				count = maxMentionsPerKeyword
			}
			counted += count
		} else {
			missing = append(missing, kw)
		}
	}

	keywordScore := 0.0
	if len(keywords) > 0 {
		keywordScore = float64(counted) / float64(len(keywords)) * keywordCap
		if keywordScore > keywordCap {
			keywordScore = keywordCap
		}
	}

	structureScore := float64(structure)
	total := round1(structureScore + keywordScore + float64(formatScore))

	return model.ScoreReport{
		StructureScore:  structureScore,
		KeywordScore:    keywordScore,
		FormatScore:     formatScore,
		TotalScore:      total,
		KeywordMatches:  matches,
		MissingKeywords: missing,
	}
}

// MatchScore compares a candidate against the benchmark as a weighted linear
// combination: skills overlap 40%, skill-count sufficiency 20%, projects 20%,
// certifications 10%, summary 10%. The sum is normalized by the weight
// actually applied and expressed as a percentage rounded to two decimals.
func (s *Scorer) MatchScore(in GapInput, benchmark model.BenchmarkProfile) float64 {
	score := 0.0
	totalWeight := 0.0

	score += benchmark.SkillMatchPercentage / 100 * 0.4
	totalWeight += 0.4

	countMatch := 0.0
	if benchmark.AverageSkillCount > 0 {
		countMatch = float64(benchmark.UserSkillsCount) / float64(benchmark.AverageSkillCount)
		if countMatch > 1.0 {
			countMatch = 1.0
		}
	}
	score += countMatch * 0.2
	totalWeight += 0.2

	if in.ProjectCount > 0 {
		score += 0.2
	}
	totalWeight += 0.2

	if in.HasCertifications {
		score += 0.1
	}
	totalWeight += 0.1

	if in.HasSummary {
		score += 0.1
	}
	totalWeight += 0.1

	if totalWeight == 0 {
		return 0
	}
	return round2(score / totalWeight * 100)
}

// JobMatchScore measures CV-to-job-description skill overlap as a percentage
// of the job's detected skills. Returns 0 when the job description yields no
// recognizable skills.
func JobMatchScore(cvSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 0
	}
	have := map[string]bool{}
	for _, s := range cvSkills {
		have[s] = true
	}
	matched := 0
	for _, s := range jobSkills {
		if have[s] {
			matched++
		}
	}
	pct := float64(matched) / float64(len(jobSkills)) * 100
	if pct > 100 {
		pct = 100
	}
	return round2(pct)
}
