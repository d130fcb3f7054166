package scoring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Per-section score constants
const (
	summaryScoreStrong = 85
	summaryScoreWeak   = 65
	summaryMinLen      = 100
	summaryMinKeywords = 3

	experienceScoreStrong = 90
	experienceScoreWeak   = 70
	experienceMinKeywords = 5

	skillsScoreStrong = 85
	skillsScoreWeak   = 60
	skillsMinOverlap  = 5
)

// Readability thresholds on mean words per sentence
const (
	readabilityBest   = 85
	readabilityOK     = 75
	readabilityPoor   = 65
	wordsPerSentLoIn  = 15
	wordsPerSentHiIn  = 25
	wordsPerSentLoOut = 10
	wordsPerSentHiOut = 30
)

// Optimal resume length in words
const (
	optimalWordsMin = 400
	optimalWordsMax = 800
)

// buildDetailedAnalysis produces one section entry per non-empty analyzable
// section, plus readability and length metrics. Sections the resume does not
// have are omitted rather than scored zero.
func buildDetailedAnalysis(resume *types.StructuredResume, keywords []string, resumeText string) types.DetailedAnalysis {
	sections := []types.SectionAnalysis{}

	if strings.TrimSpace(resume.Summary) != "" {
		sections = append(sections, analyzeSummary(resume.Summary, keywords))
	}
	if len(resume.Experience) > 0 {
		sections = append(sections, analyzeExperience(resume, keywords))
	}
	if resume.HasSkills() {
		sections = append(sections, analyzeSkills(resume, keywords))
	}

	return types.DetailedAnalysis{
		Sections:         sections,
		ReadabilityScore: readabilityScore(resumeText),
		LengthAnalysis:   analyzeLength(resumeText),
	}
}

// countKeywordsIn returns how many job keywords appear in the text
func countKeywordsIn(text string, keywords []string) int {
	lower := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

func analyzeSummary(summary string, keywords []string) types.SectionAnalysis {
	analysis := types.SectionAnalysis{
		Name:        "Summary",
		Issues:      []string{},
		Suggestions: []string{},
	}

	if len(summary) >= summaryMinLen && countKeywordsIn(summary, keywords) >= summaryMinKeywords {
		analysis.Score = summaryScoreStrong
		return analysis
	}

	analysis.Score = summaryScoreWeak
	analysis.Issues = append(analysis.Issues, "Summary is brief or misses keywords from the job description")
	analysis.Suggestions = append(analysis.Suggestions, "Expand the summary to at least 100 characters and include terms the job description uses")
	return analysis
}

func analyzeExperience(resume *types.StructuredResume, keywords []string) types.SectionAnalysis {
	analysis := types.SectionAnalysis{
		Name:        "Work Experience",
		Issues:      []string{},
		Suggestions: []string{},
	}

	expText := resume.ExperienceText()
	enoughKeywords := countKeywordsIn(expText, keywords) >= experienceMinKeywords
	hasQuantifiable := quantifiableRe.MatchString(expText)

	if enoughKeywords && hasQuantifiable {
		analysis.Score = experienceScoreStrong
		return analysis
	}

	analysis.Score = experienceScoreWeak
	if !enoughKeywords {
		analysis.Issues = append(analysis.Issues, "Experience descriptions echo few keywords from the job description")
		analysis.Suggestions = append(analysis.Suggestions, "Describe your work using the terminology the job description uses")
	}
	if !hasQuantifiable {
		analysis.Issues = append(analysis.Issues, "Experience descriptions lack measurable results")
		analysis.Suggestions = append(analysis.Suggestions, "Add concrete numbers to experience bullets, such as percentages or dollar amounts")
	}
	return analysis
}

// analyzeSkills counts resume skills that overlap a job keyword by substring
// in either direction.
func analyzeSkills(resume *types.StructuredResume, keywords []string) types.SectionAnalysis {
	analysis := types.SectionAnalysis{
		Name:        "Skills",
		Issues:      []string{},
		Suggestions: []string{},
	}

	overlap := 0
	for _, skill := range resume.AllSkills() {
		skillLower := strings.ToLower(skill)
		for _, kw := range keywords {
			kwLower := strings.ToLower(kw)
			if strings.Contains(skillLower, kwLower) || strings.Contains(kwLower, skillLower) {
				overlap++
				break
			}
		}
	}

	if overlap >= skillsMinOverlap {
		analysis.Score = skillsScoreStrong
		return analysis
	}

	analysis.Score = skillsScoreWeak
	analysis.Issues = append(analysis.Issues, "Skills section overlaps little with the job description")
	analysis.Suggestions = append(analysis.Suggestions, "List the specific skills the job description asks for, where you have them")
	return analysis
}

// readabilityScore grades the mean words-per-sentence of the resume text
func readabilityScore(resumeText string) int {
	sentences := splitSentences(resumeText)
	if len(sentences) == 0 {
		return readabilityPoor
	}

	totalWords := 0
	for _, s := range sentences {
		totalWords += len(strings.Fields(s))
	}
	mean := float64(totalWords) / float64(len(sentences))

	switch {
	case mean >= wordsPerSentLoIn && mean <= wordsPerSentHiIn:
		return readabilityBest
	case mean >= wordsPerSentLoOut && mean <= wordsPerSentHiOut:
		return readabilityOK
	default:
		return readabilityPoor
	}
}

func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := []string{}
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// analyzeLength reports the resume word count against the optimal range
func analyzeLength(resumeText string) types.LengthAnalysis {
	wordCount := len(strings.Fields(resumeText))

	analysis := types.LengthAnalysis{WordCount: wordCount}
	switch {
	case wordCount >= optimalWordsMin && wordCount <= optimalWordsMax:
		analysis.Optimal = true
	case wordCount < optimalWordsMin:
		analysis.Recommendation = "Resume is on the short side; add detail to reach the 400-800 word range"
	default:
		analysis.Recommendation = "Resume is on the long side; trim it toward the 400-800 word range"
	}
	return analysis
}
