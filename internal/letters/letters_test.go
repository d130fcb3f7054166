package letters

import (
	"strings"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResume() *types.StructuredResume {
	resume := types.NewStructuredResume()
	resume.PersonalInfo.Name = "Jane Doe"
	resume.Skills = types.SkillSet{
		Technical: []string{"Python", "SQL", "Tableau"},
		Soft:      []string{"Leadership", "Communication"},
	}
	resume.Experience = []types.ExperienceEntry{
		{Title: "Data Analyst", Company: "Acme Corp"},
	}
	return resume
}

func TestGenerate_ProfessionalTone(t *testing.T) {
	letter, err := Generate(sampleResume(), Job{Company: "Initech", Title: "Analyst"}, ToneProfessional)
	require.NoError(t, err)

	assert.Contains(t, letter, "Dear Hiring Manager,")
	assert.Contains(t, letter, "Analyst position at Initech")
	assert.Contains(t, letter, "Python, SQL, Tableau, and Leadership",
		"top four skills joined naturally, technical before soft")
	assert.Contains(t, letter, "Data Analyst at Acme Corp")
	assert.True(t, strings.HasSuffix(letter, "Jane Doe"))
}

func TestGenerate_HiringManagerGreeting(t *testing.T) {
	job := Job{Company: "Initech", Title: "Analyst", HiringManager: "Mr. Smith"}

	letter, err := Generate(sampleResume(), job, ToneProfessional)
	require.NoError(t, err)

	assert.Contains(t, letter, "Dear Mr. Smith,")
	assert.NotContains(t, letter, "Dear Hiring Manager")
}

func TestGenerate_EachToneReadsDifferently(t *testing.T) {
	resume := sampleResume()
	job := Job{Company: "Initech", Title: "Analyst"}

	professional, err := Generate(resume, job, ToneProfessional)
	require.NoError(t, err)
	conversational, err := Generate(resume, job, ToneConversational)
	require.NoError(t, err)
	impact, err := Generate(resume, job, ToneImpact)
	require.NoError(t, err)

	assert.NotEqual(t, professional, conversational)
	assert.NotEqual(t, conversational, impact)
	assert.Contains(t, professional, "Sincerely")
	assert.Contains(t, conversational, "I'd love to chat")
	assert.Contains(t, impact, "delivers results")
}

func TestGenerate_UnknownTone(t *testing.T) {
	_, err := Generate(sampleResume(), Job{}, Tone("sarcastic"))

	var unknown *UnknownToneError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "sarcastic", unknown.Tone)
}

func TestGenerate_SparseResumeDegradesGracefully(t *testing.T) {
	letter, err := Generate(types.NewStructuredResume(), Job{}, ToneProfessional)
	require.NoError(t, err)

	assert.Contains(t, letter, "open position")
	assert.Contains(t, letter, "your company")
	assert.Contains(t, letter, "Applicant")
	assert.NotContains(t, letter, "My background in", "skills sentence omitted without skills")
	assert.NotContains(t, letter, "most recent position", "experience sentence omitted without experience")
}

func TestGenerate_PlaceholderCompanyOmittedFromRole(t *testing.T) {
	resume := sampleResume()
	resume.Experience[0].Company = "Company"

	letter, err := Generate(resume, Job{Company: "Initech", Title: "Analyst"}, ToneProfessional)
	require.NoError(t, err)

	assert.Contains(t, letter, "as Data Analyst,")
	assert.NotContains(t, letter, "Data Analyst at Company")
}

func TestGenerate_Deterministic(t *testing.T) {
	job := Job{Company: "Initech", Title: "Analyst"}

	first, err := Generate(sampleResume(), job, ToneImpact)
	require.NoError(t, err)
	second, err := Generate(sampleResume(), job, ToneImpact)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJoinNaturally(t *testing.T) {
	assert.Equal(t, "", joinNaturally(nil))
	assert.Equal(t, "Go", joinNaturally([]string{"Go"}))
	assert.Equal(t, "Go and SQL", joinNaturally([]string{"Go", "SQL"}))
	assert.Equal(t, "Go, SQL, and Python", joinNaturally([]string{"Go", "SQL", "Python"}))
}
