package models

import "time"

// AIAnalysis is the structured scoring object produced by the Gemini-backed
// submission analyzer. Scores are 0-100.
type AIAnalysis struct {
	AIGeneratedScore    float64          `bson:"aiGeneratedScore" json:"aiGeneratedScore"`
	IdeaUniqueness      float64          `bson:"ideaUniqueness" json:"ideaUniqueness"`
	TechnicalComplexity float64          `bson:"technicalComplexity" json:"technicalComplexity"`
	IdeaQuality         float64          `bson:"ideaQuality" json:"ideaQuality"`
	OverallScore        float64          `bson:"overallScore" json:"overallScore"`
	DetailedAnalysis    DetailedAnalysis `bson:"detailedAnalysis" json:"detailedAnalysis"`
	AnalyzedAt          time.Time        `bson:"analyzedAt" json:"analyzedAt"`
}

// DetailedAnalysis carries the per-score reasoning and actionable notes
type DetailedAnalysis struct {
	AIDetectionReasoning string          `bson:"aiDetectionReasoning" json:"aiDetectionReasoning"`
	UniquenessReasoning  string          `bson:"uniquenessReasoning" json:"uniquenessReasoning"`
	ComplexityReasoning  string          `bson:"complexityReasoning" json:"complexityReasoning"`
	QualityReasoning     string          `bson:"qualityReasoning" json:"qualityReasoning"`
	Strengths            []string        `bson:"strengths" json:"strengths"`
	Weaknesses           []string        `bson:"weaknesses" json:"weaknesses"`
	Recommendations      []string        `bson:"recommendations" json:"recommendations"`
	DuplicacyCheck       *DuplicacyCheck `bson:"duplicacyCheck,omitempty" json:"duplicacyCheck,omitempty"`
}

// DuplicacyCheck lists projects Gemini flagged as similar to the analyzed one
type DuplicacyCheck struct {
	HasSimilar      bool             `bson:"hasSimilar" json:"hasSimilar"`
	SimilarProjects []SimilarProject `bson:"similarProjects" json:"similarProjects"`
}

type SimilarProject struct {
	TeamName        string  `bson:"teamName" json:"teamName"`
	ProjectTitle    string  `bson:"projectTitle" json:"projectTitle"`
	SimilarityScore float64 `bson:"similarityScore" json:"similarityScore"`
	Reason          string  `bson:"reason" json:"reason"`
}
