// Package scoring evaluates a structured resume against a job description
// using keyword overlap, formatting heuristics, and content-quality
// heuristics. Scoring is a pure function: identical inputs always produce an
// identical result, and no input ever causes an error.
package scoring

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Weights for the overall score
const (
	keywordWeight = 0.4
	formatWeight  = 0.3
	contentWeight = 0.3
)

const (
	// Returned as the keyword score when the job description yields no keywords.
	emptyJobKeywordScore = 75

	keywordScoreMin  = 30
	keywordScoreMax  = 95
	formatScoreFloor = 60
	contentScoreMin  = 50
	contentScoreMax  = 95

	keywordBonusThreshold  = 10
	keywordBonusExtra      = 15
	minSummaryLen          = 50
	minActionVerbs         = 5
	maxRecommendations     = 8
	lowDensityThreshold    = 0.3
	missingKeywordsToName  = 3
	missingKeywordsTrigger = 5
)

// quantifiableRe matches evidence of measurable results
var quantifiableRe = regexp.MustCompile(`(?i)\d+%|\d+\$|\d+ years|\d+k|\d+ million`)

// actionVerbs are the strong verbs the content heuristic rewards
var actionVerbs = []string{
	"led", "managed", "developed", "created", "implemented", "designed",
	"launched", "improved", "increased", "reduced", "delivered", "built",
	"drove", "coordinated", "established", "streamlined", "achieved",
	"negotiated", "mentored", "optimized",
}

// Score evaluates a resume against a job description. It is total: an empty
// job description is valid input and triggers the documented fallback
// constants, and a resume with every field empty simply scores low.
func Score(resume *types.StructuredResume, jobDescription string) *types.ATSAnalysisResult {
	keywords := ExtractJobKeywords(jobDescription)
	resumeText := resume.FullText()
	lowerResume := strings.ToLower(resumeText)

	matched, missing := partitionKeywords(keywords, lowerResume)
	density := keywordDensity(len(matched), len(keywords))

	keywordScore := computeKeywordScore(len(keywords), len(matched), density)
	formatScore, formatRecs := computeFormatScore(resume)
	contentScore, contentRecs := computeContentScore(resumeText)

	overall := int(math.Round(float64(keywordScore)*keywordWeight +
		float64(formatScore)*formatWeight +
		float64(contentScore)*contentWeight))

	return &types.ATSAnalysisResult{
		OverallScore:    overall,
		KeywordScore:    keywordScore,
		FormatScore:     formatScore,
		ContentScore:    contentScore,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Recommendations: buildRecommendations(
			density, missing, formatScore, formatRecs, contentScore, contentRecs),
		DetailedAnalysis: buildDetailedAnalysis(resume, keywords, resumeText),
	}
}

// partitionKeywords splits the extracted job keywords into those present in
// the resume text and those absent, preserving extraction order. The two
// slices are disjoint and together cover the full keyword set.
func partitionKeywords(keywords []string, lowerResume string) ([]string, []string) {
	matched := []string{}
	missing := []string{}
	for _, kw := range keywords {
		if strings.Contains(lowerResume, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	return matched, missing
}

func keywordDensity(found, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(found) / float64(total)
}

// computeKeywordScore converts keyword density to a score with volume
// bonuses, clamped to [keywordScoreMin, keywordScoreMax]. A job description
// with no extractable keywords yields the fixed fallback score.
func computeKeywordScore(total, found int, density float64) int {
	if total == 0 {
		return emptyJobKeywordScore
	}

	score := density * 100
	if found >= keywordBonusThreshold {
		score += 10
	}
	if found >= keywordBonusExtra {
		score += 5
	}

	return clamp(int(math.Round(score)), keywordScoreMin, keywordScoreMax)
}

// computeFormatScore applies structural penalties and collects the
// format-specific recommendations that accompany them.
func computeFormatScore(resume *types.StructuredResume) (int, []string) {
	score := 100
	recs := []string{}

	if !resume.HasName() {
		score -= 15
	}
	if len(strings.TrimSpace(resume.Summary)) < minSummaryLen {
		score -= 10
		recs = append(recs, "Add a professional summary of at least 50 characters to introduce your background")
	}
	if len(resume.Experience) == 0 {
		score -= 20
	}
	if !resume.HasSkills() {
		score -= 15
		recs = append(recs, "Add a dedicated skills section listing the tools and strengths relevant to the role")
	}

	if score < formatScoreFloor {
		score = formatScoreFloor
	}
	return score, recs
}

// computeContentScore rewards quantifiable achievements and action verbs,
// clamped to [contentScoreMin, contentScoreMax].
func computeContentScore(resumeText string) (int, []string) {
	score := 75
	recs := []string{}

	if quantifiableRe.MatchString(resumeText) {
		score += 10
	} else {
		score -= 10
		recs = append(recs, "Quantify your achievements with numbers, percentages, or dollar amounts")
	}

	if countActionVerbs(resumeText) >= minActionVerbs {
		score += 5
	} else {
		score -= 5
		recs = append(recs, "Start bullet points with strong action verbs such as led, built, or improved")
	}

	return clamp(score, contentScoreMin, contentScoreMax), recs
}

func countActionVerbs(resumeText string) int {
	lower := strings.ToLower(resumeText)
	count := 0
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
