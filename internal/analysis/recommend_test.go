package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cvlens-api/internal/model"
)

func TestRecommend(t *testing.T) {
	p := NewBenchmarkProvider()

	t.Run("gap rules fire in declaration order", func(t *testing.T) {
		// No summary, no certifications, 1 project against an expectation
		// of 3: both the project and certification suggestions appear, with
		// the project rule first.
		skills := []string{"python", "javascript", "git", "html/css", "sql",
			"docker", "aws", "react", "linux", "bash"}
		benchmark := p.Lookup("software_engineering", model.LevelEntry, skills)
		in := GapInput{Skills: skills, ProjectCount: 1, HasLinkedIn: true}

		got := Recommend(in, benchmark)
		require.Len(t, got, 3)
		assert.Contains(t, got[0], "Add more projects")
		assert.Contains(t, got[0], "3 projects")
		assert.Contains(t, got[1], "certifications such as: AWS Cloud Practitioner")
		assert.Contains(t, got[2], "professional summary")
	})

	t.Run("missing skills suggestion lists the gap", func(t *testing.T) {
		benchmark := p.Lookup("software_engineering", model.LevelEntry, []string{"python"})
		in := GapInput{
			Skills:            []string{"python"},
			ProjectCount:      5,
			HasCertifications: true,
			HasSummary:        true,
			HasLinkedIn:       true,
		}

		got := Recommend(in, benchmark)
		require.NotEmpty(t, got)
		assert.Contains(t, got[0], "JavaScript, Git, HTML/CSS, SQL")
		assert.Contains(t, got[1], "typically have 10 skills")
	})

	t.Run("output is capped at five", func(t *testing.T) {
		benchmark := p.Lookup("software_engineering", model.LevelEntry, nil)
		got := Recommend(GapInput{}, benchmark)

		// All six rules fire; the LinkedIn rule falls off the cap.
		assert.Len(t, got, maxRecommendations)
		for _, s := range got {
			assert.False(t, strings.Contains(s, "LinkedIn"))
		}
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		benchmark := p.Lookup("general", model.LevelEntry, []string{"communication"})
		in := GapInput{Skills: []string{"communication"}}

		first := Recommend(in, benchmark)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Recommend(in, benchmark))
		}
	})

	t.Run("nothing to improve", func(t *testing.T) {
		skills := []string{"communication", "problem solving", "teamwork",
			"leadership", "writing", "planning", "negotiation", "mentoring"}
		benchmark := p.Lookup("general", model.LevelEntry, skills)
		in := GapInput{
			Skills:            skills,
			ProjectCount:      4,
			HasCertifications: true,
			HasSummary:        true,
			HasLinkedIn:       true,
		}
		assert.Empty(t, Recommend(in, benchmark))
	})
}
