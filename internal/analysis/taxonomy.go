package analysis

import "fmt"

// SkillCategory is one taxonomy category and its recognized skill tokens.
type SkillCategory struct {
	Name   string
	Skills []string
}

// EducationKeyword maps a keyword to its education score and display label.
// Table order is the tie-break: the first keyword to reach the maximum
// score wins.
type EducationKeyword struct {
	Keyword string
	Score   int
	Label   string
}

// IndustryKeywords maps an industry to its trigger keywords. Table order is
// the tie-break: the first industry with any keyword hit wins.
type IndustryKeywords struct {
	Industry string
	Keywords []string
}

// SectionKeywords maps a résumé section name to the phrases that mark it.
type SectionKeywords struct {
	Section  string
	Keywords []string
}

// Taxonomy is the static, versioned vocabulary every pipeline stage reads.
// It is built once at process start and never mutated, so it is safe to
// share across concurrent analysis calls.
type Taxonomy struct {
	Version            string
	SkillCategories    []SkillCategory
	EducationKeywords  []EducationKeyword
	IndustryTable      []IndustryKeywords
	SectionTable       []SectionKeywords
	ATSKeywords        map[string][]string
	DefaultATSKeywords []string
}

// DefaultTaxonomy returns the built-in vocabulary tables.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Version: "2024.1",

		SkillCategories: []SkillCategory{
			{Name: "programming", Skills: []string{
				"python", "javascript", "java", "c++", "c#", "go", "rust", "php",
				"typescript", "kotlin", "swift", "ruby", "scala", "dart", "r",
			}},
			{Name: "web_development", Skills: []string{
				"react", "angular", "vue", "node.js", "express", "django", "flask",
				"fastapi", "spring", "laravel", "rails", "next.js", "nuxt.js",
			}},
			{Name: "databases", Skills: []string{
				"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
				"sqlite", "oracle", "sql server", "dynamodb", "cassandra",
			}},
			{Name: "cloud", Skills: []string{
				"aws", "azure", "gcp", "docker", "kubernetes", "terraform",
				"jenkins", "github actions", "gitlab ci", "circleci",
			}},
			{Name: "data_science", Skills: []string{
				"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
				"keras", "matplotlib", "seaborn", "jupyter", "spark",
			}},
			{Name: "tools", Skills: []string{
				"git", "jira", "confluence", "slack", "figma", "postman",
				"vscode", "intellij", "eclipse", "linux", "bash",
			}},
		},

		EducationKeywords: []EducationKeyword{
			{Keyword: "phd", Score: 4, Label: "PhD/Doctorate"},
			{Keyword: "doctorate", Score: 4, Label: "PhD/Doctorate"},
			{Keyword: "doctoral", Score: 4, Label: "PhD/Doctorate"},
			{Keyword: "masters", Score: 3, Label: "Master's Degree"},
			{Keyword: "master", Score: 3, Label: "Master's Degree"},
			{Keyword: "msc", Score: 3, Label: "Master's Degree"},
			{Keyword: "mba", Score: 3, Label: "Master's Degree"},
			{Keyword: "bachelor", Score: 2, Label: "Bachelor's Degree"},
			{Keyword: "degree", Score: 2, Label: "Bachelor's Degree"},
			{Keyword: "bsc", Score: 2, Label: "Bachelor's Degree"},
			{Keyword: "ba", Score: 2, Label: "Bachelor's Degree"},
			{Keyword: "diploma", Score: 1, Label: "Diploma"},
			{Keyword: "certificate", Score: 1, Label: "Certificate"},
			{Keyword: "certification", Score: 1, Label: "Certificate"},
		},

		IndustryTable: []IndustryKeywords{
			{Industry: "software_engineering", Keywords: []string{
				"python", "javascript", "java", "react", "node", "software", "programming", "developer",
			}},
			{Industry: "data_science", Keywords: []string{
				"machine learning", "data science", "python", "sql", "analytics", "statistics",
			}},
			{Industry: "textile_engineering", Keywords: []string{
				"textile", "yarn", "fabric", "fiber", "cotton", "spinning", "weaving",
			}},
			{Industry: "mechanical_engineering", Keywords: []string{
				"mechanical", "cad", "solidworks", "manufacturing", "design",
			}},
			{Industry: "electrical_engineering", Keywords: []string{
				"electrical", "electronics", "circuit", "power", "control",
			}},
			{Industry: "business", Keywords: []string{
				"marketing", "sales", "business", "management", "finance", "accounting",
			}},
			{Industry: "healthcare", Keywords: []string{
				"medical", "nursing", "healthcare", "hospital", "clinical",
			}},
		},

		SectionTable: []SectionKeywords{
			{Section: "summary", Keywords: []string{"summary", "objective", "about me", "profile"}},
			{Section: "experience", Keywords: []string{"experience", "work history", "employment", "career"}},
			{Section: "education", Keywords: []string{"education", "academic", "qualification", "degree"}},
			{Section: "skills", Keywords: []string{"skills", "technical skills", "competencies"}},
			{Section: "projects", Keywords: []string{"projects", "portfolio", "work samples"}},
			{Section: "certifications", Keywords: []string{"certifications", "certificates", "training"}},
		},

		ATSKeywords: map[string][]string{
			"software_engineering": {
				"agile", "scrum", "python", "javascript", "react", "node.js",
				"api", "database", "cloud", "devops",
			},
			"data_science": {
				"machine learning", "python", "sql", "statistics", "data analysis",
				"visualization", "modeling",
			},
			"business": {
				"digital marketing", "seo", "sales targets", "crm", "budgeting",
				"forecasting", "negotiation", "roi",
			},
			"healthcare": {
				"patient care", "medical records", "hipaa", "clinical",
				"healthcare", "medical", "patient",
			},
			"mechanical_engineering": {
				"design", "testing", "quality assurance", "project management",
				"technical", "innovation",
			},
			"electrical_engineering": {
				"design", "testing", "quality assurance", "project management",
				"technical", "innovation",
			},
			"textile_engineering": {
				"quality control", "production", "testing", "process improvement",
				"manufacturing", "technical",
			},
		},
		DefaultATSKeywords: []string{
			"leadership", "communication", "problem solving", "teamwork",
			"project management", "analytical",
		},
	}
}

// Validate checks the taxonomy for structural faults. A failure here is a
// fatal configuration error and belongs at process start, never per-request.
func (t *Taxonomy) Validate() error {
	if len(t.SkillCategories) == 0 {
		return fmt.Errorf("taxonomy %s: no skill categories", t.Version)
	}
	for _, cat := range t.SkillCategories {
		if cat.Name == "" {
			return fmt.Errorf("taxonomy %s: unnamed skill category", t.Version)
		}
		if len(cat.Skills) == 0 {
			return fmt.Errorf("taxonomy %s: category %q has no skills", t.Version, cat.Name)
		}
		for _, s := range cat.Skills {
			if s == "" {
				return fmt.Errorf("taxonomy %s: category %q has an empty skill token", t.Version, cat.Name)
			}
		}
	}
	for _, ek := range t.EducationKeywords {
		if ek.Keyword == "" || ek.Label == "" || ek.Score <= 0 {
			return fmt.Errorf("taxonomy %s: malformed education keyword %+v", t.Version, ek)
		}
	}
	for _, ik := range t.IndustryTable {
		if ik.Industry == "" || len(ik.Keywords) == 0 {
			return fmt.Errorf("taxonomy %s: malformed industry entry %q", t.Version, ik.Industry)
		}
	}
	for _, sk := range t.SectionTable {
		if sk.Section == "" || len(sk.Keywords) == 0 {
			return fmt.Errorf("taxonomy %s: malformed section entry %q", t.Version, sk.Section)
		}
	}
	if len(t.DefaultATSKeywords) == 0 {
		return fmt.Errorf("taxonomy %s: empty default keyword list", t.Version)
	}
	return nil
}

// ATSKeywordsFor returns the keyword list for an industry, falling back to
// the default list for unknown industries (including "general").
func (t *Taxonomy) ATSKeywordsFor(industry string) []string {
	if kws, ok := t.ATSKeywords[industry]; ok {
		return kws
	}
	return t.DefaultATSKeywords
}

// Industries lists the industries the classifier can produce, in table order,
// excluding the "general" fallback.
func (t *Taxonomy) Industries() []string {
	out := make([]string, 0, len(t.IndustryTable))
	for _, ik := range t.IndustryTable {
		out = append(out, ik.Industry)
	}
	return out
}
