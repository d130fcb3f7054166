package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredResume_SlicesInitialized(t *testing.T) {
	resume := NewStructuredResume()

	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills.Technical)
	assert.NotNil(t, resume.Skills.Soft)
	assert.NotNil(t, resume.Certifications)
}

func TestEnsureDefaults_FillsNilSlicesAfterUnmarshal(t *testing.T) {
	var resume StructuredResume
	require.NoError(t, json.Unmarshal([]byte(`{"summary":"text"}`), &resume))
	require.Nil(t, resume.Experience)

	resume.EnsureDefaults()

	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills.Technical)
	assert.NotNil(t, resume.Skills.Soft)
	assert.NotNil(t, resume.Certifications)
	assert.Equal(t, "text", resume.Summary, "existing values are untouched")
}

func TestEnsureDefaults_LeavesPopulatedSlicesAlone(t *testing.T) {
	resume := NewStructuredResume()
	resume.Skills.Technical = []string{"Go"}

	resume.EnsureDefaults()

	assert.Equal(t, []string{"Go"}, resume.Skills.Technical)
}

func TestTouch_IncrementsVersionAndStampsTime(t *testing.T) {
	resume := NewStructuredResume()
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	resume.Touch(now)
	assert.Equal(t, 1, resume.Version)
	assert.Equal(t, "2025-03-14T09:26:53Z", resume.LastModified)

	resume.Touch(now.Add(time.Hour))
	assert.Equal(t, 2, resume.Version)
	assert.Equal(t, "2025-03-14T10:26:53Z", resume.LastModified)
}

func TestTouch_NormalizesToUTC(t *testing.T) {
	resume := NewStructuredResume()
	eastern := time.FixedZone("EST", -5*3600)

	resume.Touch(time.Date(2025, 3, 14, 9, 0, 0, 0, eastern))

	assert.Equal(t, "2025-03-14T14:00:00Z", resume.LastModified)
}

func TestFullText_JoinsAllSectionsInOrder(t *testing.T) {
	resume := NewStructuredResume()
	resume.PersonalInfo.Name = "Jane Doe"
	resume.Summary = "Engineer."
	resume.Experience = []ExperienceEntry{
		{Title: "Developer", Company: "Acme", Description: "Built tools."},
	}
	resume.Education = []EducationEntry{
		{Degree: "BS Computer Science", School: "State University"},
	}
	resume.Skills = SkillSet{Technical: []string{"Go"}, Soft: []string{"Teamwork"}}
	resume.Certifications = []Certification{{Name: "PMP", Issuer: "PMI"}}

	text := resume.FullText()

	assert.Equal(t, "Jane Doe Engineer. Developer Acme Built tools. "+
		"BS Computer Science State University Go Teamwork PMP PMI", text)
}

func TestFullText_SkipsEmptyFields(t *testing.T) {
	resume := NewStructuredResume()
	resume.Summary = "Engineer."
	resume.Experience = []ExperienceEntry{{Title: "Developer"}}

	assert.Equal(t, "Engineer. Developer", resume.FullText())
	assert.Empty(t, NewStructuredResume().FullText())
}

func TestHasName(t *testing.T) {
	resume := NewStructuredResume()
	assert.False(t, resume.HasName())

	resume.PersonalInfo.Name = "   "
	assert.False(t, resume.HasName(), "whitespace is not a name")

	resume.PersonalInfo.Name = "Jane Doe"
	assert.True(t, resume.HasName())
}

func TestHasSkills(t *testing.T) {
	resume := NewStructuredResume()
	assert.False(t, resume.HasSkills())

	resume.Skills.Soft = []string{"Communication"}
	assert.True(t, resume.HasSkills(), "soft skills alone count")
}

func TestAllSkills_TechnicalFirst(t *testing.T) {
	resume := NewStructuredResume()
	resume.Skills = SkillSet{
		Technical: []string{"Go", "SQL"},
		Soft:      []string{"Teamwork"},
	}

	assert.Equal(t, []string{"Go", "SQL", "Teamwork"}, resume.AllSkills())
}

func TestExperienceText(t *testing.T) {
	resume := NewStructuredResume()
	resume.Experience = []ExperienceEntry{
		{Description: "Built pipelines."},
		{Description: ""},
		{Description: "Led migrations."},
	}

	assert.Equal(t, "Built pipelines. Led migrations.", resume.ExperienceText())
}

func TestValidate_EmailFormat(t *testing.T) {
	resume := NewStructuredResume()
	require.NoError(t, resume.Validate(), "empty email is valid, the field is optional")

	resume.PersonalInfo.Email = "jane@example.com"
	assert.NoError(t, resume.Validate())

	resume.PersonalInfo.Email = "not-an-email"
	assert.Error(t, resume.Validate())
}

func TestStructuredResume_JSONRoundTrip(t *testing.T) {
	resume := NewStructuredResume()
	resume.ID = "abc-123"
	resume.Version = 2
	resume.PersonalInfo.Name = "Jane Doe"
	resume.Skills.Technical = []string{"Go"}
	resume.Touch(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))

	data, err := json.Marshal(resume)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"personal_info"`)
	assert.Contains(t, string(data), `"last_modified"`)

	var decoded StructuredResume
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *resume, decoded)
}
