package services

import (
	"encoding/json"
	"testing"

	"api/models"

	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain json", input: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", input: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", input: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", input: "  {\"a\":1}\n", want: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, stripCodeFences(tt.input))
		})
	}
}

func TestAnalysisResponseContract(t *testing.T) {
	// The shape the prompt instructs Gemini to return must round-trip into the
	// stored model
	raw := "```json\n" + `{
		"aiGeneratedScore": 20,
		"ideaUniqueness": 75,
		"technicalComplexity": 60,
		"ideaQuality": 80,
		"overallScore": 70,
		"detailedAnalysis": {
			"aiDetectionReasoning": "Reads as human-written.",
			"uniquenessReasoning": "Novel take on ticketing.",
			"complexityReasoning": "Full-stack with realtime sync.",
			"qualityReasoning": "Solves a real pain point.",
			"strengths": ["clear scope"],
			"weaknesses": ["no tests"],
			"recommendations": ["add monitoring"]
		}
	}` + "\n```"

	var analysis models.AIAnalysis
	require.NoError(t, json.Unmarshal([]byte(stripCodeFences(raw)), &analysis))
	require.Equal(t, 20.0, analysis.AIGeneratedScore)
	require.Equal(t, 70.0, analysis.OverallScore)
	require.Equal(t, []string{"clear scope"}, analysis.DetailedAnalysis.Strengths)
	require.Nil(t, analysis.DetailedAnalysis.DuplicacyCheck)
}

func TestDuplicacyResponseContract(t *testing.T) {
	raw := `{
		"hasSimilar": true,
		"similarProjects": [
			{"teamName": "Team A", "projectTitle": "Smart Parking", "similarityScore": 72, "reason": "Same core idea"}
		]
	}`

	var check models.DuplicacyCheck
	require.NoError(t, json.Unmarshal([]byte(stripCodeFences(raw)), &check))
	require.True(t, check.HasSimilar)
	require.Len(t, check.SimilarProjects, 1)
	require.Equal(t, "Team A", check.SimilarProjects[0].TeamName)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	team := &models.Registration{
		TeamName:           "Hack Squad",
		CollegeName:        "DSCE",
		ProjectTitle:       "Smart Parking",
		ProjectDescription: "Realtime parking availability",
		SubmissionDetails: models.SubmissionDetails{
			GithubRepo: "https://github.com/org/parking",
		},
	}

	prompt := buildAnalysisPrompt(team)
	require.Contains(t, prompt, "Smart Parking")
	require.Contains(t, prompt, "Hack Squad")
	require.Contains(t, prompt, "https://github.com/org/parking")
	require.NotContains(t, prompt, "**Live Demo:**")
	require.Contains(t, prompt, `"aiGeneratedScore"`)
}

func TestBuildDuplicacyPrompt(t *testing.T) {
	team := &models.Registration{
		ProjectTitle:       "Smart Parking",
		ProjectDescription: "Realtime parking availability",
	}
	others := []models.Registration{
		{TeamName: "Team B", ProjectTitle: "Park Easy", ProjectDescription: "Find parking spots"},
	}

	prompt := buildDuplicacyPrompt(team, others)
	require.Contains(t, prompt, "Smart Parking")
	require.Contains(t, prompt, `"Park Easy" by Team B`)
	require.Contains(t, prompt, `"hasSimilar"`)
}
