package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cvlens-api/internal/model"
)

func newTestClassifier(t *testing.T) *Classifier {
	t.Helper()
	tax := DefaultTaxonomy()
	require.NoError(t, tax.Validate())
	return NewClassifier(tax)
}

func TestEducationLevel(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"phd outranks masters", "holds a phd and a masters", "PhD/Doctorate"},
		{"synonym maps to level label", "msc in data engineering", "Master's Degree"},
		{"bachelor", "bachelor of science", "Bachelor's Degree"},
		{"equal scores keep first table hit", "diploma and certificate holder", "Diploma"},
		{"nothing matches", "self taught tinkerer", "Unknown"},
		{"empty", "", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.EducationLevel(tt.text))
		})
	}
}

func TestExperienceLevel(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"fresh marker", "fresh out of university", model.LevelEntry},
		{"graduate marker beats year phrases", "graduate with 5 years tinkering", model.LevelEntry},
		{"one year", "1 year at acme", model.LevelJunior},
		{"three years", "roughly 3 years shipping software", model.LevelJunior},
		{"four years", "4 years of backend work", model.LevelMid},
		{"seven years", "7 years leading migrations", model.LevelMid},
		{"beyond the buckets", "a decade architecting platforms", model.LevelSenior},
		{"no experience data", "", model.LevelEntry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.ExperienceLevel(tt.text))
		})
	}
}

func TestExperienceLevelFromEntries(t *testing.T) {
	c := newTestClassifier(t)

	assert.Equal(t, model.LevelEntry, c.ExperienceLevelFromEntries(0))
	assert.Equal(t, model.LevelJunior, c.ExperienceLevelFromEntries(1))
	assert.Equal(t, model.LevelJunior, c.ExperienceLevelFromEntries(2))
	assert.Equal(t, model.LevelMid, c.ExperienceLevelFromEntries(3))
}

func TestIndustry(t *testing.T) {
	c := newTestClassifier(t)

	tests := []struct {
		name       string
		skills     []string
		background string
		want       string
	}{
		{"software from skills", []string{"python", "react"}, "", "software_engineering"},
		{"table order breaks ties", []string{"python", "machine learning"}, "", "software_engineering"},
		{"data science without software markers", []string{"sql"}, "statistics coursework", "data_science"},
		{"textile from background", nil, "spinning and weaving mill floor", "textile_engineering"},
		{"healthcare", nil, "clinical rotations at a hospital", "healthcare"},
		{"default", []string{"juggling"}, "circus arts", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Industry(tt.skills, tt.background))
		})
	}
}
