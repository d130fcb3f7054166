package structuring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	summaryHeadingRe    = regexp.MustCompile(`(?i)summary|objective|profile|about|overview`)
	experienceHeadingRe = regexp.MustCompile(`(?i)experience|employment|work|career`)
	educationHeadingRe  = regexp.MustCompile(`(?i)education|academic|degree|university|college`)
	anySectionHeadingRe = regexp.MustCompile(`(?i)experience|employment|work|career|education|academic|skills|competencies`)

	certHeadingRe = regexp.MustCompile(`(?i)certification|certificate|license`)

	yearRe     = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	monthRe    = regexp.MustCompile(`\b\d{1,2}/\d{4}\b`)
	degreeRe   = regexp.MustCompile(`(?i)bachelor|master|degree`)
	presentRe  = regexp.MustCompile(`(?i)present|current`)
	gpaValueRe = regexp.MustCompile(`(?i)gpa[:\s]*([0-4]\.\d{1,2})`)
)

const (
	summaryWindow       = 4
	experienceWindow    = 19
	educationWindow     = 9
	certificationWindow = 9

	// Non-date lines shorter than this are not worth keeping as description.
	minDescriptionLen = 11

	placeholderTitle  = "Position"
	placeholderOrg    = "Company"
	placeholderSchool = "University"
)

// isSectionHeading reports whether a line looks like a section heading for
// the given pattern: short, no sentence-ending period, pattern present.
// Body sentences like "5 years experience in retail." must not qualify.
func isSectionHeading(line string, pattern *regexp.Regexp) bool {
	trimmed := strings.TrimSuffix(strings.TrimSpace(line), ":")
	if trimmed == "" || strings.HasSuffix(trimmed, ".") {
		return false
	}
	if len(strings.Fields(trimmed)) > 5 {
		return false
	}
	return pattern.MatchString(trimmed)
}

// findHeading returns the index of the first line that qualifies as a
// heading for the pattern, or -1.
func findHeading(lines []string, pattern *regexp.Regexp) int {
	for i, line := range lines {
		if isSectionHeading(line, pattern) {
			return i
		}
	}
	return -1
}

// extractSummary collects up to a few lines after the summary heading,
// stopping at the next section heading.
func extractSummary(lines []string) string {
	start := findHeading(lines, summaryHeadingRe)
	if start < 0 {
		return ""
	}

	collected := make([]string, 0, summaryWindow)
	for i := start + 1; i < len(lines) && len(collected) < summaryWindow; i++ {
		if isSectionHeading(lines[i], anySectionHeadingRe) {
			break
		}
		collected = append(collected, lines[i])
	}
	return strings.Join(collected, " ")
}

// isDateLine reports whether a line contains a 4-digit year or mm/yyyy token
func isDateLine(line string) bool {
	return yearRe.MatchString(line) || monthRe.MatchString(line)
}

// extractExperience scans a bounded window after the experience heading.
// A date line starts a new entry; the line immediately before it becomes the
// title. Company names are not recoverable from this layout, so the entry
// carries a placeholder.
func extractExperience(lines []string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	start := findHeading(lines, experienceHeadingRe)
	if start < 0 {
		return entries
	}

	end := start + 1 + experienceWindow
	if end > len(lines) {
		end = len(lines)
	}

	var current *types.ExperienceEntry
	var descParts []string
	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(descParts, " ")
		entries = append(entries, *current)
		current = nil
		descParts = nil
	}

	for i := start + 1; i < end; i++ {
		line := lines[i]
		if isDateLine(line) {
			flush()

			title := placeholderTitle
			if i > start+1 {
				title = lines[i-1]
			}
			startDate, endDate := splitDateRange(line)
			current = &types.ExperienceEntry{
				Title:     title,
				Company:   placeholderOrg,
				StartDate: startDate,
				EndDate:   endDate,
				Current:   presentRe.MatchString(line),
			}
			continue
		}
		if current != nil && len(line) >= minDescriptionLen {
			descParts = append(descParts, line)
		}
	}
	flush()

	return entries
}

// splitDateRange splits a date line on the first dash into start and end
func splitDateRange(line string) (string, string) {
	parts := strings.SplitN(line, "-", 2)
	start := strings.TrimSpace(parts[0])
	end := ""
	if len(parts) == 2 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// extractEducation scans a bounded window after the education heading.
// A line with both a year and a degree keyword becomes an entry.
func extractEducation(lines []string) []types.EducationEntry {
	entries := []types.EducationEntry{}

	start := findHeading(lines, educationHeadingRe)
	if start < 0 {
		return entries
	}

	end := start + 1 + educationWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start + 1; i < end; i++ {
		line := lines[i]
		year := yearRe.FindString(line)
		if year == "" || !degreeRe.MatchString(line) {
			continue
		}

		degree := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line[:strings.Index(line, year)]), ",;-"))
		if degree == "" {
			degree = line
		}

		entry := types.EducationEntry{
			Degree:         degree,
			School:         placeholderSchool,
			GraduationYear: year,
		}
		if m := gpaValueRe.FindStringSubmatch(line); m != nil {
			entry.GPA = m[1]
		}
		entries = append(entries, entry)
	}

	return entries
}

// extractCertifications scans a bounded window after a certifications
// heading. Each line becomes an entry: the text before the first comma or
// dash is the name, the remainder the issuer, and any year the date.
func extractCertifications(lines []string) []types.Certification {
	entries := []types.Certification{}

	start := findHeading(lines, certHeadingRe)
	if start < 0 {
		return entries
	}

	end := start + 1 + certificationWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start + 1; i < end; i++ {
		line := lines[i]
		if isSectionHeading(line, anySectionHeadingRe) {
			break
		}

		name := line
		issuer := ""
		if idx := strings.IndexAny(line, ",-"); idx > 0 {
			name = strings.TrimSpace(line[:idx])
			issuer = strings.TrimSpace(line[idx+1:])
		}
		date := yearRe.FindString(line)
		if date != "" {
			issuer = strings.TrimSpace(strings.Trim(strings.ReplaceAll(issuer, date, ""), ",- "))
		}
		if name == "" {
			continue
		}
		entries = append(entries, types.Certification{Name: name, Issuer: issuer, Date: date})
	}

	return entries
}
