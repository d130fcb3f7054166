package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"

	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesInnerSpaces(t *testing.T) {
	assert.Equal(t, "Jane Doe", CleanText("Jane    Doe"))
}

func TestCleanText_PreservesBulletIndentation(t *testing.T) {
	input := "Skills\n  - Python\n  - SQL"

	assert.Equal(t, "Skills\n  - Python\n  - SQL", CleanText(input))
}

func TestCleanText_CollapsesBlankLineRuns(t *testing.T) {
	input := "Summary\n\n\n\n\nExperience"

	assert.Equal(t, "Summary\n\nExperience", CleanText(input))
}

func TestCleanText_TrimsTrailingWhitespacePerLine(t *testing.T) {
	input := "Jane Doe   \t\nEngineer\t"

	assert.Equal(t, "Jane Doe\nEngineer", CleanText(input))
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t  "))
}

func TestIsBulletLine(t *testing.T) {
	assert.True(t, isBulletLine("- item"))
	assert.True(t, isBulletLine("* item"))
	assert.True(t, isBulletLine("• item"))
	assert.False(t, isBulletLine("plain text - with dash"))
	assert.False(t, isBulletLine("-no space after dash"))
}
