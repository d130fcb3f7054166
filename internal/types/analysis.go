package types

// ATSAnalysisResult is the derived output of scoring a resume against a job
// description. It is recomputed on demand and never persisted as source of
// truth; identical inputs always yield an identical result.
type ATSAnalysisResult struct {
	OverallScore     int              `json:"overall_score"`
	KeywordScore     int              `json:"keyword_score"`
	FormatScore      int              `json:"format_score"`
	ContentScore     int              `json:"content_score"`
	MatchedKeywords  []string         `json:"matched_keywords"`
	MissingKeywords  []string         `json:"missing_keywords"`
	Recommendations  []string         `json:"recommendations"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
}

// DetailedAnalysis holds per-section findings and auxiliary metrics
type DetailedAnalysis struct {
	Sections         []SectionAnalysis `json:"sections"`
	ReadabilityScore int               `json:"readability_score"`
	LengthAnalysis   LengthAnalysis    `json:"length_analysis"`
}

// SectionAnalysis holds findings for one non-empty resume section
type SectionAnalysis struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// LengthAnalysis reports whether the resume word count is in the optimal range
type LengthAnalysis struct {
	WordCount      int    `json:"word_count"`
	Optimal        bool   `json:"optimal"`
	Recommendation string `json:"recommendation,omitempty"`
}
