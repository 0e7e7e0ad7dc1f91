package analysis

import (
	"strings"

	"github.com/yourusername/cvlens-api/internal/model"
)

// Classifier infers education level, experience level and industry from
// extracted résumé signals. Every method degrades to a documented default
// instead of failing.
type Classifier struct {
	tax *Taxonomy
}

func NewClassifier(tax *Taxonomy) *Classifier {
	return &Classifier{tax: tax}
}

// EducationLevel scans the education keyword table and returns the display
// label of the highest-scoring keyword present. Ties go to the keyword that
// appears first in the table: only a strictly higher score replaces the
// current winner. Returns "Unknown" when nothing matches.
func (c *Classifier) EducationLevel(text string) string {
	best := 0
	label := "Unknown"
	for _, ek := range c.tax.EducationKeywords {
		if strings.Contains(text, ek.Keyword) && ek.Score > best {
			best = ek.Score
			label = ek.Label
		}
	}
	return label
}

// ExperienceLevel buckets free-form experience text into a seniority level.
// The thresholds are heuristic but fixed: entry markers first, then 1-3
// years, then 4-7, then senior. Empty text means no experience data at all
// and classifies as entry level.
func (c *Classifier) ExperienceLevel(experienceText string) string {
	text := strings.TrimSpace(experienceText)
	if text == "" {
		return model.LevelEntry
	}

	for _, marker := range []string{"fresh", "graduate", "entry"} {
		if strings.Contains(text, marker) {
			return model.LevelEntry
		}
	}
	for _, phrase := range []string{"1 year", "2 year", "3 year"} {
		if strings.Contains(text, phrase) {
			return model.LevelJunior
		}
	}
	for _, phrase := range []string{"4 year", "5 year", "6 year", "7 year"} {
		if strings.Contains(text, phrase) {
			return model.LevelMid
		}
	}
	return model.LevelSenior
}

// ExperienceLevelFromEntries classifies by job-entry count when experience
// arrives as a structured list instead of free text: up to two entries is
// junior, more is mid level, none is entry level.
func (c *Classifier) ExperienceLevelFromEntries(count int) string {
	switch {
	case count <= 0:
		return model.LevelEntry
	case count <= 2:
		return model.LevelJunior
	default:
		return model.LevelMid
	}
}

// Industry returns the first industry in the table whose keyword list has
// any hit in the combined skills + background text. Table order is the
// tie-break. Returns "general" when nothing matches.
func (c *Classifier) Industry(skills []string, backgroundText string) string {
	all := strings.ToLower(strings.Join(skills, " ") + " " + backgroundText)
	for _, entry := range c.tax.IndustryTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(all, kw) {
				return entry.Industry
			}
		}
	}
	return model.IndustryGeneral
}

// Classify runs both axes over an extracted profile.
func (c *Classifier) Classify(profile *model.ExtractedProfile) model.Classification {
	return model.Classification{
		Industry:        c.Industry(profile.Skills, profile.NormalizedText),
		ExperienceLevel: c.ExperienceLevel(profile.NormalizedText),
	}
}
