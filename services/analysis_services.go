package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"api/config"
	"api/models"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// AnalysisService scores project submissions through the Gemini API
type AnalysisService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewAnalysisService() *AnalysisService {
	return &AnalysisService{
		apiKey: config.GeminiAPIKey,
		model:  config.GeminiModel,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether an API key is present
func (s *AnalysisService) Configured() bool {
	return s.apiKey != ""
}

// AnalyzeSubmission runs the scoring prompt for team and, when checkDuplicacy
// is set, a second pass comparing it against the other registrations. A failed
// duplicate check is logged and dropped; the scores still come back.
func (s *AnalysisService) AnalyzeSubmission(ctx context.Context, team *models.Registration, others []models.Registration, checkDuplicacy bool) (*models.AIAnalysis, error) {
	text, err := s.generate(ctx, buildAnalysisPrompt(team))
	if err != nil {
		return nil, err
	}

	var analysis models.AIAnalysis
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}
	analysis.AnalyzedAt = time.Now().UTC()

	if checkDuplicacy && len(others) > 0 {
		dupText, err := s.generate(ctx, buildDuplicacyPrompt(team, others))
		if err != nil {
			log.Printf("Duplicacy check failed for team %s: %v", team.TeamCode, err)
			return &analysis, nil
		}

		var check models.DuplicacyCheck
		if err := json.Unmarshal([]byte(stripCodeFences(dupText)), &check); err != nil {
			log.Printf("Failed to parse duplicacy response for team %s: %v", team.TeamCode, err)
			return &analysis, nil
		}
		analysis.DetailedAnalysis.DuplicacyCheck = &check
	}

	return &analysis, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt to the Gemini generateContent endpoint and
// returns the first candidate's text.
func (s *AnalysisService) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf(geminiEndpoint, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %s: %s", resp.Status, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// stripCodeFences removes markdown code blocks Gemini sometimes wraps its
// JSON in despite instructions.
func stripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

func buildAnalysisPrompt(team *models.Registration) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert hackathon judge and AI content detector. Analyze the following project submission in extreme detail.

**Project Title:** %s

**Project Description:** %s

**Team Name:** %s

**College:** %s
`, team.ProjectTitle, team.ProjectDescription, team.TeamName, team.CollegeName)

	if team.SubmissionDetails.GithubRepo != "" {
		fmt.Fprintf(&b, "\n**GitHub Repository:** %s", team.SubmissionDetails.GithubRepo)
	}
	if team.SubmissionDetails.LiveDemo != "" {
		fmt.Fprintf(&b, "\n**Live Demo:** %s", team.SubmissionDetails.LiveDemo)
	}
	if team.SubmissionDetails.AdditionalNotes != "" {
		fmt.Fprintf(&b, "\n**Additional Notes:** %s", team.SubmissionDetails.AdditionalNotes)
	}

	b.WriteString(`

Please provide a comprehensive analysis with scores (0-100) for each factor:

1. **AI-Generated Content Detection** (0-100, where 0 = completely human-written, 100 = completely AI-generated)
   - Analyze writing style, patterns, and tell-tale signs of AI generation
   - Look for generic phrases, overly formal language, lack of personal touch
   - Check for repetitive structures common in AI text

2. **Idea Uniqueness** (0-100, where 0 = completely generic, 100 = highly innovative)
   - How original is this idea in the hackathon/startup space?
   - Does it solve a real problem in a novel way?
   - Is it just a rehash of existing solutions?

3. **Technical Complexity** (0-100, where 0 = trivial, 100 = highly complex)
   - Evaluate the technical sophistication required
   - Consider the tech stack, architecture, and implementation challenges
   - Assess the depth of technical knowledge needed

4. **Idea Quality/Goodness** (0-100, where 0 = poor, 100 = excellent)
   - Is this a viable, practical idea?
   - Does it have real-world impact potential?
   - Is the problem worth solving?
   - Is the solution well thought out?

5. **Overall Score** (0-100) - Weighted average considering all factors

Additionally, provide:
- Detailed reasoning for each score (2-3 sentences)
- 3-5 key strengths
- 3-5 key weaknesses
- 3-5 actionable recommendations for improvement

**IMPORTANT:** Respond ONLY with valid JSON in this exact format:
{
  "aiGeneratedScore": <number 0-100>,
  "ideaUniqueness": <number 0-100>,
  "technicalComplexity": <number 0-100>,
  "ideaQuality": <number 0-100>,
  "overallScore": <number 0-100>,
  "detailedAnalysis": {
    "aiDetectionReasoning": "<string>",
    "uniquenessReasoning": "<string>",
    "complexityReasoning": "<string>",
    "qualityReasoning": "<string>",
    "strengths": ["<string>", "<string>", ...],
    "weaknesses": ["<string>", "<string>", ...],
    "recommendations": ["<string>", "<string>", ...]
  }
}

Do NOT include any markdown formatting, code blocks, or additional text. Return ONLY the JSON object.`)

	return b.String()
}

func buildDuplicacyPrompt(team *models.Registration, others []models.Registration) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Compare the following project with other projects and identify if there are any similar ideas.

**Current Project:**
Title: %s
Description: %s

**Other Projects:**
`, team.ProjectTitle, team.ProjectDescription)

	for i, other := range others {
		fmt.Fprintf(&b, "%d. %q by %s: %s\n\n", i+1, other.ProjectTitle, other.TeamName, other.ProjectDescription)
	}

	b.WriteString(`Identify any projects that are significantly similar (similarity > 60%) to the current project. For each similar project found, provide:
- The project title and team name
- Similarity score (0-100)
- Brief reason for similarity

Respond ONLY with valid JSON in this format:
{
  "hasSimilar": <boolean>,
  "similarProjects": [
    {
      "teamName": "<string>",
      "projectTitle": "<string>",
      "similarityScore": <number 0-100>,
      "reason": "<string>"
    }
  ]
}

If no similar projects found, return: {"hasSimilar": false, "similarProjects": []}

Do NOT include any markdown formatting or additional text. Return ONLY the JSON object.`)

	return b.String()
}
