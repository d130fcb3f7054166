package structuring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	maxTechnicalSkills = 15
	maxSoftSkills      = 12

	// Fallback caps when scanning the whole document instead of a section.
	fallbackTechnicalCap = 10
	fallbackSoftCap      = 8

	// Exact-match length thresholds for dictionary classification.
	technicalExactMaxLen = 15
	softExactMaxLen      = 20

	// Below this many tokens the section body is assumed to be prose and the
	// dictionary scan takes over.
	minTokenCount = 3
)

// skillTokenSeparators split a skills section body into candidate tokens
var skillTokenSeparators = []string{",", ";", "|", "•", "·", "▪", "‣", "\n", "\t"}

// extractSkills locates a skills section and classifies its tokens, or falls
// back to scanning the whole document against the reduced dictionaries.
func extractSkills(text string, lines []string) types.SkillSet {
	start, bodyEnd := findSkillsSection(lines)
	if start < 0 {
		return fallbackSkillScan(text)
	}

	body := strings.Join(lines[start+1:bodyEnd], "\n")
	tokens := tokenizeSkills(body)
	if len(tokens) < minTokenCount {
		tokens = dictionaryScan(body, append(append([]string{}, TechnicalSkills...), SoftSkills...), 0)
	}

	technical := []string{}
	soft := []string{}
	seen := map[string]bool{}
	for _, token := range tokens {
		key := strings.ToLower(token)
		if seen[key] {
			continue
		}
		seen[key] = true

		switch {
		case isTechnicalSkill(token):
			if len(technical) < maxTechnicalSkills {
				technical = append(technical, token)
			}
		case isSoftSkill(token):
			if len(soft) < maxSoftSkills {
				soft = append(soft, token)
			}
		case isLikelyTechnicalSkill(token):
			if len(technical) < maxTechnicalSkills {
				technical = append(technical, token)
			}
		case isLikelySoftSkill(token):
			if len(soft) < maxSoftSkills {
				soft = append(soft, token)
			}
		}
		// Tokens matching nothing are dropped.
	}

	return types.SkillSet{Technical: technical, Soft: soft}
}

// findSkillsSection returns the heading line index and the exclusive end of
// the section body, or (-1, -1) when no skills heading exists.
func findSkillsSection(lines []string) (int, int) {
	start := -1
	for i, line := range lines {
		normalized := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
		for _, heading := range skillsHeadings {
			if normalized == heading {
				start = i
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return -1, -1
	}

	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isMajorSectionHeader(lines[i]) {
			end = i
			break
		}
	}
	return start, end
}

// isMajorSectionHeader reports whether a line opens one of the fixed resume
// sections that terminate a skills body.
func isMajorSectionHeader(line string) bool {
	normalized := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	for _, header := range majorSectionHeaders {
		if normalized == header || strings.HasPrefix(normalized, header+" ") {
			return true
		}
	}
	return false
}

// tokenizeSkills splits a section body on list separators and bullets
func tokenizeSkills(body string) []string {
	normalized := body
	for _, sep := range skillTokenSeparators {
		normalized = strings.ReplaceAll(normalized, sep, "\x00")
	}

	tokens := []string{}
	for _, raw := range strings.Split(normalized, "\x00") {
		token := strings.TrimSpace(strings.Trim(strings.TrimSpace(raw), "-–—"))
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ContainsTerm reports whether term occurs in haystack. Both arguments must
// already be lowercased. Terms shorter than 4 characters only count on word
// boundaries so that entries like "Go" or "R" do not match inside words.
func ContainsTerm(haystack, term string) bool {
	if term == "" {
		return false
	}
	if len(term) >= 4 {
		return strings.Contains(haystack, term)
	}

	for from := 0; ; {
		idx := strings.Index(haystack[from:], term)
		if idx < 0 {
			return false
		}
		abs := from + idx
		beforeOK := abs == 0 || !isWordChar(haystack[abs-1])
		afterIdx := abs + len(term)
		afterOK := afterIdx >= len(haystack) || !isWordChar(haystack[afterIdx])
		if beforeOK && afterOK {
			return true
		}
		from = abs + 1
		if from >= len(haystack) {
			return false
		}
	}
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// matchesDictionary reports whether a token matches a dictionary entry by
// substring in either direction, or exactly for short tokens. The length
// guards keep tiny entries like "Go" or "R" from matching inside words.
func matchesDictionary(token string, dict []string, exactMaxLen int) bool {
	tokenLower := strings.ToLower(token)
	for _, entry := range dict {
		entryLower := strings.ToLower(entry)
		if len(entryLower) >= 4 && strings.Contains(tokenLower, entryLower) {
			return true
		}
		if len(tokenLower) >= 4 && strings.Contains(entryLower, tokenLower) {
			return true
		}
		if tokenLower == entryLower && len(token) <= exactMaxLen {
			return true
		}
	}
	return false
}

func isTechnicalSkill(token string) bool {
	return matchesDictionary(token, TechnicalSkills, technicalExactMaxLen)
}

func isSoftSkill(token string) bool {
	return matchesDictionary(token, SoftSkills, softExactMaxLen)
}

// technicalSuffixes and vendor markers drive classification of tokens that
// match no dictionary entry.
var technicalSuffixes = []string{
	"software", "system", "systems", "platform", "database", "framework",
	"tool", "tools", "api", "sdk", "suite", "server",
}

var technicalMarkers = []string{
	"microsoft", "adobe", "google", "oracle", "cisco", "ibm", "sap",
	"v1", "v2", "v3", "2.0", "3.0",
}

func isLikelyTechnicalSkill(token string) bool {
	lower := strings.ToLower(token)
	for _, suffix := range technicalSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, marker := range technicalMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

var softSuffixes = []string{"skills", "ability", "abilities", "oriented", "minded"}

var softMarkers = []string{"team", "client", "customer", "creative", "people", "detail"}

func isLikelySoftSkill(token string) bool {
	lower := strings.ToLower(token)
	for _, suffix := range softSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	for _, marker := range softMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// dictionaryScan returns the dictionary entries present in the text, in
// dictionary order, up to cap entries (0 means unlimited).
func dictionaryScan(text string, dict []string, capCount int) []string {
	lower := strings.ToLower(text)
	matches := []string{}
	for _, entry := range dict {
		if ContainsTerm(lower, strings.ToLower(entry)) {
			matches = append(matches, entry)
			if capCount > 0 && len(matches) >= capCount {
				break
			}
		}
	}
	return matches
}

// fallbackSkillScan scans the entire document against reduced dictionaries
// when no skills section heading exists. Only short technical entries are
// considered to keep false positives down.
func fallbackSkillScan(text string) types.SkillSet {
	shortTechnical := make([]string, 0, len(TechnicalSkills))
	for _, entry := range TechnicalSkills {
		if len(strings.Fields(entry)) <= 3 {
			shortTechnical = append(shortTechnical, entry)
		}
	}

	return types.SkillSet{
		Technical: dictionaryScan(text, shortTechnical, fallbackTechnicalCap),
		Soft:      dictionaryScan(text, CommonSoftSkills, fallbackSoftCap),
	}
}
