package extraction

import (
	"regexp"
	"strings"
)

var (
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	blankLinesRe  = regexp.MustCompile(`\n\n\n+`)
	bulletMarkers = []string{"- ", "* ", "• ", "· "}
)

// CleanText normalizes extracted text while preserving line structure. Line
// endings become LF, trailing whitespace is dropped, runs of spaces inside a
// line collapse to one, and more than two consecutive blank lines collapse to
// two. Bullet lines keep their indentation so the structurer still sees them
// as list items.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankLinesRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	if strings.TrimSpace(line) == "" {
		return ""
	}

	trimmed := strings.TrimLeft(line, " \t")
	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		if indent > 0 {
			return strings.Repeat(" ", indent) + trimmed
		}
		return trimmed
	}

	leadingSpace := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(strings.TrimSpace(line), " ")
	if leadingSpace > 0 {
		return strings.Repeat(" ", leadingSpace) + content
	}
	return content
}

func isBulletLine(trimmed string) bool {
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}
