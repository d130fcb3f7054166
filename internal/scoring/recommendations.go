package scoring

import (
	"fmt"
	"strings"
)

// buildRecommendations aggregates recommendations in a fixed order: keyword
// density, missing keywords, formatting, then content. The list is truncated
// to maxRecommendations with the original order preserved; there is no
// re-ranking by severity.
func buildRecommendations(density float64, missing []string, formatScore int, formatRecs []string, contentScore int, contentRecs []string) []string {
	recs := []string{}

	if density < lowDensityThreshold {
		recs = append(recs, "Incorporate more keywords from the job description throughout your resume")
	}

	if len(missing) > missingKeywordsTrigger {
		named := missing
		if len(named) > missingKeywordsToName {
			named = named[:missingKeywordsToName]
		}
		recs = append(recs, fmt.Sprintf("Consider adding these missing keywords: %s", strings.Join(named, ", ")))
	}

	if formatScore < 80 {
		recs = append(recs, "Improve your resume structure so applicant tracking systems can read every section")
		recs = append(recs, takeUpTo(formatRecs, 2)...)
	}

	if contentScore < 80 {
		recs = append(recs, takeUpTo(contentRecs, 2)...)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func takeUpTo(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
