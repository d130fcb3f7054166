// Package structuring turns raw extracted resume text into a structured
// resume record. Parsing is a pipeline of independent best-effort extractors
// over the same text: a missed field stays empty and never aborts the rest.
package structuring

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// StructureResume parses raw document text into a StructuredResume.
// It returns *EmptyDocumentError when the text is empty, and
// *UnreadableDocumentError when text is present but no non-empty lines
// survive trimming. For any other input it is total: fields that cannot be
// extracted are left at their empty defaults.
func StructureResume(rawText string) (*types.StructuredResume, error) {
	if rawText == "" {
		return nil, &EmptyDocumentError{}
	}

	lines := nonEmptyLines(rawText)
	if len(lines) == 0 {
		return nil, &UnreadableDocumentError{}
	}

	resume := types.NewStructuredResume()
	resume.PersonalInfo = extractPersonalInfo(rawText, lines)
	resume.Summary = extractSummary(lines)
	resume.Experience = extractExperience(lines)
	resume.Education = extractEducation(lines)
	resume.Skills = extractSkills(rawText, lines)
	resume.Certifications = extractCertifications(lines)

	return resume, nil
}

// nonEmptyLines normalizes line endings, trims every line, and drops the
// empty ones. Extractors operate on this sequence in document order.
func nonEmptyLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := []string{}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimFunc(raw, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\v' || r == '\f' || r < 0x20
		})
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
