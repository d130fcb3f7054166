package structuring

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// North-American phone number with optional country code, optional
	// parentheses, and . - or space separators.
	phoneRe = regexp.MustCompile(`(\+?1[-.\s]?)?(\(\d{3}\)|\d{3})[-.\s]?\d{3}[-.\s]?\d{4}`)

	nameRe = regexp.MustCompile(`^[A-Za-z\s.'-]+$`)

	// City, ST or City, Region: capitalized words on both sides of a comma.
	locationRe = regexp.MustCompile(`[A-Z][a-zA-Z]+(?:[ ][A-Z][a-zA-Z]+)*,\s?[A-Z][a-zA-Z]+`)

	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+`)

	urlRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}(?:/\S*)?`)
)

// emailProviderDomains are common personal-email hosts that should never be
// reported as a personal website.
var emailProviderDomains = []string{"gmail.", "yahoo.", "outlook.", "hotmail."}

const (
	nameScanLines = 5
	nameMinLen    = 3
	nameMaxLen    = 49
)

// extractPersonalInfo runs the independent contact-field matchers over the
// document. Each field is best-effort; a miss leaves it empty.
func extractPersonalInfo(text string, lines []string) types.PersonalInfo {
	return types.PersonalInfo{
		Name:     extractName(lines),
		Email:    emailRe.FindString(text),
		Phone:    strings.TrimSpace(phoneRe.FindString(text)),
		Location: extractLocation(text),
		Website:  extractWebsite(text),
		LinkedIn: linkedinRe.FindString(text),
	}
}

// extractName scans the first few non-empty lines for something name-shaped.
// Falls back to the first line verbatim when nothing qualifies.
func extractName(lines []string) string {
	limit := nameScanLines
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if len(line) < nameMinLen || len(line) > nameMaxLen {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		if nameRe.MatchString(line) {
			return line
		}
	}
	if len(lines) > 0 {
		return lines[0]
	}
	return ""
}

func extractLocation(text string) string {
	return locationRe.FindString(text)
}

// extractWebsite returns the first URL-like token that is not an email
// address, not a LinkedIn profile, and not a common email-provider domain.
func extractWebsite(text string) string {
	for _, token := range strings.Fields(text) {
		if strings.Contains(token, "@") {
			continue
		}
		match := urlRe.FindString(token)
		if match == "" {
			continue
		}
		lower := strings.ToLower(match)
		if strings.Contains(lower, "linkedin.com") {
			continue
		}
		if isEmailProviderDomain(lower) {
			continue
		}
		return match
	}
	return ""
}

func isEmailProviderDomain(lowerURL string) bool {
	for _, provider := range emailProviderDomains {
		if strings.Contains(lowerURL, provider) {
			return true
		}
	}
	return false
}
