package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/cvlens-api/internal/model"
)

func TestBenchmarkLookup(t *testing.T) {
	p := NewBenchmarkProvider()

	t.Run("full skill match", func(t *testing.T) {
		userSkills := []string{"python", "javascript", "git", "html/css", "sql"}
		b := p.Lookup("software_engineering", model.LevelEntry, userSkills)

		assert.Equal(t, "software_engineering", b.Industry)
		assert.Equal(t, model.LevelEntry, b.ExperienceLevel)
		assert.Equal(t, 100.0, b.SkillMatchPercentage)
		assert.Equal(t, 5, b.UserSkillsCount)
		assert.Equal(t, "$60,000 - $80,000", b.SalaryRange)
	})

	t.Run("partial match is case insensitive", func(t *testing.T) {
		b := p.Lookup("software_engineering", model.LevelEntry, []string{"Python", "rust"})
		assert.Equal(t, 20.0, b.SkillMatchPercentage)
		assert.Equal(t, 2, b.UserSkillsCount)
	})

	t.Run("unknown pair falls back to default", func(t *testing.T) {
		b := p.Lookup("underwater_basketry", "grandmaster", nil)

		assert.Equal(t, []string{"Communication", "Problem Solving", "Teamwork"}, b.RequiredSkills)
		assert.Equal(t, 8, b.AverageSkillCount)
		assert.Equal(t, "$30,000 - $50,000", b.SalaryRange)
		assert.Equal(t, 0.0, b.SkillMatchPercentage)
		assert.Equal(t, 0, b.UserSkillsCount)
	})

	t.Run("known industry unknown level falls back", func(t *testing.T) {
		b := p.Lookup("software_engineering", model.LevelSenior, []string{"communication"})
		assert.Equal(t, "$30,000 - $50,000", b.SalaryRange)
		assert.InDelta(t, 33.33, b.SkillMatchPercentage, 0.001)
	})

	t.Run("rounds match percentage to two decimals", func(t *testing.T) {
		// 1 of 6 required junior skills: 16.666... -> 16.67
		b := p.Lookup("software_engineering", model.LevelJunior, []string{"react"})
		assert.Equal(t, 16.67, b.SkillMatchPercentage)
	})
}

func TestMissingSkills(t *testing.T) {
	p := NewBenchmarkProvider()
	b := p.Lookup("software_engineering", model.LevelEntry, []string{"python", "sql"})

	missing := MissingSkills(b, []string{"python", "sql"})
	assert.Equal(t, []string{"JavaScript", "Git", "HTML/CSS"}, missing)

	assert.Empty(t, MissingSkills(b, []string{"python", "javascript", "git", "html/css", "sql"}))
}
