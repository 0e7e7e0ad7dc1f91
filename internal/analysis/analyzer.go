package analysis

import (
	"github.com/yourusername/cvlens-api/internal/model"
)

// Analyzer runs the full pipeline: normalize, extract, classify, benchmark,
// score, recommend. It holds only immutable tables, so one instance serves
// concurrent calls without locking.
type Analyzer struct {
	tax        *Taxonomy
	extractor  *Extractor
	classifier *Classifier
	benchmarks *BenchmarkProvider
	scorer     *Scorer
}

// NewAnalyzer builds an analyzer over the given taxonomy. A malformed
// taxonomy is a configuration fault and fails construction; per-request
// calls never validate.
func NewAnalyzer(tax *Taxonomy) (*Analyzer, error) {
	if err := tax.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		tax:        tax,
		extractor:  NewExtractor(tax),
		classifier: NewClassifier(tax),
		benchmarks: NewBenchmarkProvider(),
		scorer:     NewScorer(tax),
	}, nil
}

// Analyze produces the full report for one résumé. rawText is plain text,
// already decoded from whatever document format carried it. When
// jobDescription is non-empty a secondary CV-to-job skill match is computed.
// Whitespace-only input yields an empty report with zero scores rather than
// an error, so callers can still render "no data extracted".
func (a *Analyzer) Analyze(rawText, jobDescription string) *model.AnalysisReport {
	normalized := Normalize(rawText)
	if normalized == "" {
		return &model.AnalysisReport{
			Profile: model.ExtractedProfile{RawText: rawText},
			Classification: model.Classification{
				Industry:        model.IndustryGeneral,
				ExperienceLevel: model.LevelEntry,
			},
			Recommendations: []string{},
		}
	}

	contact := a.extractor.Contact(normalized)
	sections := a.extractor.Sections(normalized)
	if contact.Email != "" || contact.Phone != "" {
		sections = append([]string{"contact"}, sections...)
	}

	profile := model.ExtractedProfile{
		RawText:          rawText,
		NormalizedText:   normalized,
		Skills:           a.extractor.Skills(normalized),
		Contact:          contact,
		ExperienceYears:  a.extractor.ExperienceYears(normalized),
		EducationLevel:   a.classifier.EducationLevel(normalized),
		DetectedSections: sections,
	}

	classification := a.classifier.Classify(&profile)
	benchmark := a.benchmarks.Lookup(classification.Industry, classification.ExperienceLevel, profile.Skills)
	scoreReport := a.scorer.ATSScore(&profile, classification.Industry)

	gap := GapInputFromProfile(&profile)
	report := &model.AnalysisReport{
		Profile:         profile,
		Classification:  classification,
		Benchmark:       benchmark,
		ScoreReport:     scoreReport,
		MatchScore:      a.scorer.MatchScore(gap, benchmark),
		Recommendations: Recommend(gap, benchmark),
	}

	if jobDescription != "" {
		jobSkills := a.extractor.Skills(Normalize(jobDescription))
		report.JobMatchScore = JobMatchScore(profile.Skills, jobSkills)
	}

	return report
}

// Compare benchmarks structured CV data against industry peers. Unlike
// Analyze it receives already-parsed fields, so project and certification
// counts are exact rather than inferred from section markers.
func (a *Analyzer) Compare(cv model.CVData) *model.ComparisonReport {
	level := a.classifyStructuredExperience(cv)
	industry := a.classifier.Industry(cv.Skills, Normalize(cv.Education))
	benchmark := a.benchmarks.Lookup(industry, level, cv.Skills)

	gap := GapInput{
		Skills:            cv.Skills,
		ProjectCount:      len(cv.Projects),
		HasCertifications: len(cv.Certifications) > 0,
		HasSummary:        cv.Summary != "",
		HasLinkedIn:       cv.LinkedIn != "",
	}

	return &model.ComparisonReport{
		Classification:       model.Classification{Industry: industry, ExperienceLevel: level},
		SkillsCount:          len(cv.Skills),
		Benchmark:            benchmark,
		MatchScore:           a.scorer.MatchScore(gap, benchmark),
		Suggestions:          Recommend(gap, benchmark),
		SimilarProfessionals: SimilarProfessionalsFor(industry, level, cv.Skills),
	}
}

// classifyStructuredExperience prefers free-form experience text when
// present, falls back to entry count for listed positions, and defaults to
// entry level when no experience data exists at all.
func (a *Analyzer) classifyStructuredExperience(cv model.CVData) string {
	if text := Normalize(cv.ExperienceText); text != "" {
		return a.classifier.ExperienceLevel(text)
	}
	if len(cv.Experience) > 0 {
		return a.classifier.ExperienceLevelFromEntries(len(cv.Experience))
	}
	return model.LevelEntry
}

// Taxonomy exposes the analyzer's vocabulary for read-only use.
func (a *Analyzer) Taxonomy() *Taxonomy {
	return a.tax
}

// Benchmarks exposes the benchmark provider for read-only lookups.
func (a *Analyzer) Benchmarks() *BenchmarkProvider {
	return a.benchmarks
}
