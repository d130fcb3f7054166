package scoring

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDetailedAnalysis_OmitsEmptySections(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Summary = "Engineer with a decade of experience building data platforms and leading teams."

	analysis := buildDetailedAnalysis(resume, nil, resume.FullText())

	require.Len(t, analysis.Sections, 1)
	assert.Equal(t, "Summary", analysis.Sections[0].Name)
}

func TestBuildDetailedAnalysis_AllThreeSections(t *testing.T) {
	resume := baselineResume()

	analysis := buildDetailedAnalysis(resume, []string{"Kubernetes"}, resume.FullText())

	require.Len(t, analysis.Sections, 3)
	assert.Equal(t, "Summary", analysis.Sections[0].Name)
	assert.Equal(t, "Work Experience", analysis.Sections[1].Name)
	assert.Equal(t, "Skills", analysis.Sections[2].Name)
}

func TestAnalyzeSummary_StrongWhenLongAndKeywordRich(t *testing.T) {
	summary := "Seasoned engineer specializing in Kubernetes, Docker, and SQL with a " +
		"track record of shipping reliable platforms for large organizations."
	keywords := []string{"Kubernetes", "Docker", "SQL"}

	analysis := analyzeSummary(summary, keywords)

	assert.Equal(t, 85, analysis.Score)
	assert.Empty(t, analysis.Issues)
	assert.Empty(t, analysis.Suggestions)
}

func TestAnalyzeSummary_WeakWhenShort(t *testing.T) {
	analysis := analyzeSummary("Engineer.", []string{"Kubernetes"})

	assert.Equal(t, 65, analysis.Score)
	require.Len(t, analysis.Issues, 1)
	require.Len(t, analysis.Suggestions, 1)
}

func TestAnalyzeSummary_WeakWhenLongButOffTopic(t *testing.T) {
	summary := strings.Repeat("A dedicated professional with many years of varied experience. ", 3)

	analysis := analyzeSummary(summary, []string{"Kubernetes", "Docker", "SQL"})

	assert.Equal(t, 65, analysis.Score, "length alone is not enough without keyword coverage")
}

func TestAnalyzeExperience_StrongNeedsKeywordsAndNumbers(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Experience = []types.ExperienceEntry{
		{
			Title:       "Engineer",
			Company:     "Acme",
			Description: "Ran Kubernetes, Docker, SQL, AWS, and Python workloads, cutting spend by 25%.",
		},
	}
	keywords := []string{"Kubernetes", "Docker", "SQL", "AWS", "Python"}

	analysis := analyzeExperience(resume, keywords)

	assert.Equal(t, "Work Experience", analysis.Name)
	assert.Equal(t, 90, analysis.Score)
	assert.Empty(t, analysis.Issues)
}

func TestAnalyzeExperience_WeakCollectsBothIssues(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Experience = []types.ExperienceEntry{
		{Title: "Engineer", Company: "Acme", Description: "Did various things."},
	}

	analysis := analyzeExperience(resume, []string{"Kubernetes", "Docker", "SQL", "AWS", "Python"})

	assert.Equal(t, 70, analysis.Score)
	assert.Len(t, analysis.Issues, 2, "few keywords and no measurable results are separate findings")
	assert.Len(t, analysis.Suggestions, 2)
}

func TestAnalyzeSkills_OverlapCountsEitherDirection(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Skills.Technical = []string{"Kubernetes", "Docker", "SQL", "AWS"}
	resume.Skills.Soft = []string{"Leadership"}

	analysis := analyzeSkills(resume, []string{"Kubernetes", "Docker", "SQL", "AWS", "Team Leadership"})

	assert.Equal(t, 85, analysis.Score, "resume skill contained in a longer job keyword still overlaps")
}

func TestAnalyzeSkills_WeakBelowOverlapThreshold(t *testing.T) {
	resume := types.NewStructuredResume()
	resume.Skills.Technical = []string{"Photoshop"}

	analysis := analyzeSkills(resume, []string{"Kubernetes", "Docker"})

	assert.Equal(t, 60, analysis.Score)
	assert.NotEmpty(t, analysis.Issues)
}

func TestReadabilityScore(t *testing.T) {
	best := strings.TrimSpace(strings.Repeat("one two three four five six seven eight nine ten "+
		"eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen. ", 3))
	assert.Equal(t, 85, readabilityScore(best), "18 words per sentence is in the ideal band")

	choppy := "Short. Very. Choppy. Text."
	assert.Equal(t, 65, readabilityScore(choppy))

	assert.Equal(t, 65, readabilityScore(""), "no sentences falls back to the low grade")
}

func TestSplitSentences(t *testing.T) {
	sentences := splitSentences("First sentence. Second one! Third? ")
	assert.Len(t, sentences, 3)

	assert.Empty(t, splitSentences("..."))
}

func TestAnalyzeLength(t *testing.T) {
	short := analyzeLength("only a few words here")
	assert.Equal(t, 5, short.WordCount)
	assert.False(t, short.Optimal)
	assert.Contains(t, short.Recommendation, "short")

	optimal := analyzeLength(strings.TrimSpace(strings.Repeat("word ", 500)))
	assert.True(t, optimal.Optimal)
	assert.Empty(t, optimal.Recommendation)

	long := analyzeLength(strings.TrimSpace(strings.Repeat("word ", 900)))
	assert.False(t, long.Optimal)
	assert.Contains(t, long.Recommendation, "long")
}
