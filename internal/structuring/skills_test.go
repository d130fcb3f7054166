package structuring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkills_CommaSeparatedSection(t *testing.T) {
	text := "TECHNICAL SKILLS\nPython, Excel, Communication, Kubernetes\nEXPERIENCE\n2020"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Equal(t, []string{"Python", "Excel", "Kubernetes"}, skills.Technical)
	assert.Equal(t, []string{"Communication"}, skills.Soft)
}

func TestExtractSkills_BulletedSection(t *testing.T) {
	text := "Core Competencies:\n• Project Coordination Tools\n• Customer Service\n• Financial Reporting"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Contains(t, skills.Soft, "Customer Service")
	assert.Contains(t, skills.Technical, "Financial Reporting")
}

func TestExtractSkills_DeduplicatesCaseInsensitively(t *testing.T) {
	text := "SKILLS\nPython, python, PYTHON, Excel"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Equal(t, []string{"Python", "Excel"}, skills.Technical)
}

func TestExtractSkills_ProseBodyFallsBackToDictionaryScan(t *testing.T) {
	// Fewer than three tokens survive splitting, so the dictionary scan runs
	// against the body instead.
	text := "SKILLS\nDeep familiarity with Tableau and Salesforce plus strong Leadership\nEXPERIENCE\n2019"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Contains(t, skills.Technical, "Salesforce")
	assert.Contains(t, skills.Technical, "Tableau")
	assert.Contains(t, skills.Soft, "Leadership")
}

func TestExtractSkills_NoHeadingScansWholeDocument(t *testing.T) {
	text := "Jane Doe\nWorked daily with Excel and QuickBooks.\nKnown for Communication and Teamwork."
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Contains(t, skills.Technical, "Excel")
	assert.Contains(t, skills.Technical, "QuickBooks")
	assert.Contains(t, skills.Soft, "Communication")
	assert.Contains(t, skills.Soft, "Teamwork")
	assert.LessOrEqual(t, len(skills.Technical), fallbackTechnicalCap)
	assert.LessOrEqual(t, len(skills.Soft), fallbackSoftCap)
}

func TestExtractSkills_UnclassifiableTokensDropped(t *testing.T) {
	text := "SKILLS\nzxqvbnm, Python, qwerty glorp"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Equal(t, []string{"Python"}, skills.Technical)
	assert.Empty(t, skills.Soft)
}

func TestExtractSkills_SuffixHeuristics(t *testing.T) {
	text := "SKILLS\nWarehouse Inventory Software, People Skills, Fabrikam Ticketing Platform"
	skills := extractSkills(text, nonEmptyLines(text))

	assert.Contains(t, skills.Technical, "Warehouse Inventory Software")
	assert.Contains(t, skills.Technical, "Fabrikam Ticketing Platform")
	assert.Contains(t, skills.Soft, "People Skills")
}

func TestFindSkillsSection_StopsAtMajorSectionHeader(t *testing.T) {
	lines := []string{"Skills", "Excel", "Work Experience", "2019"}

	start, end := findSkillsSection(lines)
	require.Equal(t, 0, start)
	assert.Equal(t, 2, end)
}

func TestFindSkillsSection_HeadingMustMatchExactly(t *testing.T) {
	start, _ := findSkillsSection([]string{"My many skills and talents", "Excel"})

	assert.Equal(t, -1, start)
}

func TestContainsTerm_ShortTermsNeedWordBoundaries(t *testing.T) {
	assert.True(t, ContainsTerm("knows go and rust", "go"))
	assert.False(t, ContainsTerm("negotiation category", "go"))
	assert.True(t, ContainsTerm("r, python, sql", "r"))
	assert.False(t, ContainsTerm("regular programming", "r"))
	assert.True(t, ContainsTerm("uses javascript daily", "javascript"))
}

func TestDictionaries_NoDuplicateEntries(t *testing.T) {
	for name, dict := range map[string][]string{
		"technical": TechnicalSkills,
		"soft":      SoftSkills,
		"common":    CommonSoftSkills,
	} {
		seen := map[string]bool{}
		for _, entry := range dict {
			key := strings.ToLower(entry)
			assert.False(t, seen[key], "%s dictionary has duplicate entry %q", name, entry)
			seen[key] = true
		}
	}
}

func TestDictionaries_CommonSoftSkillsAreInSoftSkills(t *testing.T) {
	soft := map[string]bool{}
	for _, entry := range SoftSkills {
		soft[strings.ToLower(entry)] = true
	}
	for _, entry := range CommonSoftSkills {
		assert.True(t, soft[strings.ToLower(entry)], "%q missing from SoftSkills", entry)
	}
}
