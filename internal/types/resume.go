// Package types provides type definitions for structured data used throughout the resume-builder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// RawDocument represents plain text extracted from an uploaded file.
// It is consumed once by the structurer and then discarded.
type RawDocument struct {
	ID        string `json:"id,omitempty"`
	Filename  string `json:"filename,omitempty"`
	Format    string `json:"format"` // "txt", "docx", "pdf"
	Text      string `json:"text"`
	Hash      string `json:"hash,omitempty"`      // SHA256 hex digest of the text
	Timestamp string `json:"timestamp,omitempty"` // RFC3339 format
}

// PersonalInfo represents contact information extracted from a resume.
// Every field is optional; an empty string means the field was not found.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
}

// ExperienceEntry represents a single work experience entry in document order
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

// EducationEntry represents a single education entry in document order
type EducationEntry struct {
	Degree         string `json:"degree"`
	School         string `json:"school"`
	GraduationYear string `json:"graduation_year"`
	GPA            string `json:"gpa,omitempty"`
}

// SkillSet holds categorized, deduplicated skills
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// Certification represents a single certification entry
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// StructuredResume is the canonical parsed resume record.
// Every field defaults to an empty string or empty slice rather than being
// absent, so downstream code only ever branches on "field is empty".
type StructuredResume struct {
	ID             string            `json:"id,omitempty"`
	Version        int               `json:"version,omitempty"`
	LastModified   string            `json:"last_modified,omitempty"` // RFC3339 format
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Summary        string            `json:"summary"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         SkillSet          `json:"skills"`
	Certifications []Certification   `json:"certifications"`
}

// NewStructuredResume returns a resume with all slices initialized empty.
// Callers can rely on every sequence field being non-nil.
func NewStructuredResume() *StructuredResume {
	return &StructuredResume{
		Experience:     []ExperienceEntry{},
		Education:      []EducationEntry{},
		Skills:         SkillSet{Technical: []string{}, Soft: []string{}},
		Certifications: []Certification{},
	}
}

// EnsureDefaults initializes any nil slice fields to empty slices.
// Useful after unmarshaling JSON produced by other tools.
func (r *StructuredResume) EnsureDefaults() {
	if r.Experience == nil {
		r.Experience = []ExperienceEntry{}
	}
	if r.Education == nil {
		r.Education = []EducationEntry{}
	}
	if r.Skills.Technical == nil {
		r.Skills.Technical = []string{}
	}
	if r.Skills.Soft == nil {
		r.Skills.Soft = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
}

// Touch increments the version counter and stamps LastModified.
// Called by the store on save; the parsed record itself is immutable.
func (r *StructuredResume) Touch(now time.Time) {
	r.Version++
	r.LastModified = now.UTC().Format(time.RFC3339)
}

// FullText concatenates every textual section of the resume into one
// space-joined string. Used by keyword matching.
func (r *StructuredResume) FullText() string {
	parts := []string{
		r.PersonalInfo.Name,
		r.Summary,
	}
	for _, exp := range r.Experience {
		parts = append(parts, exp.Title, exp.Company, exp.Description)
	}
	for _, edu := range r.Education {
		parts = append(parts, edu.Degree, edu.School)
	}
	parts = append(parts, r.Skills.Technical...)
	parts = append(parts, r.Skills.Soft...)
	for _, cert := range r.Certifications {
		parts = append(parts, cert.Name, cert.Issuer)
	}

	nonEmpty := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}

// HasName reports whether a name was extracted
func (r *StructuredResume) HasName() bool {
	return strings.TrimSpace(r.PersonalInfo.Name) != ""
}

// HasSkills reports whether any skill (technical or soft) was extracted
func (r *StructuredResume) HasSkills() bool {
	return len(r.Skills.Technical) > 0 || len(r.Skills.Soft) > 0
}

// AllSkills returns technical skills followed by soft skills
func (r *StructuredResume) AllSkills() []string {
	all := make([]string, 0, len(r.Skills.Technical)+len(r.Skills.Soft))
	all = append(all, r.Skills.Technical...)
	all = append(all, r.Skills.Soft...)
	return all
}

// ExperienceText concatenates all experience descriptions with spaces
func (r *StructuredResume) ExperienceText() string {
	parts := make([]string, 0, len(r.Experience))
	for _, exp := range r.Experience {
		if strings.TrimSpace(exp.Description) != "" {
			parts = append(parts, exp.Description)
		}
	}
	return strings.Join(parts, " ")
}

var resumeValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field formats (email, URLs) using struct tags.
// Validation is advisory: the structurer never calls it, since extraction
// misses are represented as empty fields rather than invalid ones.
func (r *StructuredResume) Validate() error {
	return resumeValidator.Struct(r)
}
