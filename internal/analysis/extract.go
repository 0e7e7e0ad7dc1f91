package analysis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yourusername/cvlens-api/internal/model"
)

// Extractor pulls contact details, experience signals, skills and section
// markers out of normalized résumé text. All methods are pure functions of
// their input plus the immutable taxonomy.
type Extractor struct {
	tax *Taxonomy
}

func NewExtractor(tax *Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\+?[1-9]?[0-9]{7,15}`)

	// Résumés state experience in several inconsistent ways; each pattern
	// family contributes candidates and the maximum wins.
	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
		regexp.MustCompile(`experience.*?(\d+)\+?\s*years?`),
		regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*\w+`),
	}

	calendarYearRe = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// Contact returns the first plausible email and phone tokens in the text.
// Fields are empty when nothing matched.
func (e *Extractor) Contact(text string) model.ContactInfo {
	return model.ContactInfo{
		Email: emailRe.FindString(text),
		Phone: phoneRe.FindString(text),
	}
}

// ExperienceYears estimates total years of experience from the text. It
// collects every candidate the pattern families produce, adds the span
// between the earliest and latest calendar year mentioned (when at least two
// distinct years appear), and returns the maximum. Deliberately optimistic:
// it never under-counts relative to any single phrasing. Returns 0 when no
// signal is found.
func (e *Extractor) ExperienceYears(text string) int {
	var candidates []int
	for _, re := range experienceRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if n, err := strconv.Atoi(m[1]); err == nil {
				candidates = append(candidates, n)
			}
		}
	}

	years := map[int]bool{}
	for _, m := range calendarYearRe.FindAllString(text, -1) {
		if y, err := strconv.Atoi(m); err == nil {
			years[y] = true
		}
	}
	if len(years) >= 2 {
		minYear, maxYear := 0, 0
		for y := range years {
			if minYear == 0 || y < minYear {
				minYear = y
			}
			if y > maxYear {
				maxYear = y
			}
		}
		candidates = append(candidates, maxYear-minYear)
	}

	best := 0
	for _, c := range candidates {
		if c > best {
			best = c
		}
	}
	return best
}

// Skills matches every taxonomy token against the text by substring
// containment and returns the sorted, deduplicated hits. Substring (not
// word-boundary) matching is intentional; short tokens can match inside
// longer words.
func (e *Extractor) Skills(text string) []string {
	found := map[string]bool{}
	for _, cat := range e.tax.SkillCategories {
		for _, skill := range cat.Skills {
			if strings.Contains(text, skill) {
				found[skill] = true
			}
		}
	}

	out := make([]string, 0, len(found))
	for skill := range found {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// Sections returns the résumé sections whose marker phrases appear in the
// text, in taxonomy table order.
func (e *Extractor) Sections(text string) []string {
	var out []string
	for _, entry := range e.tax.SectionTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(text, kw) {
				out = append(out, entry.Section)
				break
			}
		}
	}
	return out
}
