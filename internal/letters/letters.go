// Package letters generates cover letters by filling fixed templates with
// resume fields. Generation is plain string interpolation: there is no AI
// involvement and identical inputs always produce identical letters.
package letters

import (
	"strings"
	"text/template"

	"github.com/jonathan/resume-builder/internal/types"
)

// Tone selects which cover letter template is filled
type Tone string

// Supported tones
const (
	ToneProfessional   Tone = "professional"
	ToneConversational Tone = "conversational"
	ToneImpact         Tone = "impact"
)

// Job describes the position the letter is written for
type Job struct {
	Company       string
	Title         string
	HiringManager string
}

// letterData is the data structure passed to the letter templates
type letterData struct {
	Name          string
	Greeting      string
	Company       string
	Title         string
	SkillsLine    string
	RecentRole    string
	HasExperience bool
}

const maxSkillsInLetter = 4

var letterTemplates = map[Tone]string{
	ToneProfessional: `{{.Greeting}},

I am writing to express my interest in the {{.Title}} position at {{.Company}}.
{{- if .SkillsLine}} My background in {{.SkillsLine}} aligns closely with the requirements of this role.{{end}}
{{- if .HasExperience}} In my most recent position as {{.RecentRole}}, I took on responsibilities directly relevant to this opening.{{end}}

I would welcome the opportunity to discuss how my experience can contribute to {{.Company}}. Thank you for your consideration.

Sincerely,
{{.Name}}`,

	ToneConversational: `{{.Greeting}},

I came across the {{.Title}} opening at {{.Company}} and it immediately caught my attention.
{{- if .SkillsLine}} I've spent a good part of my career working with {{.SkillsLine}}, and this role looks like a natural fit.{{end}}
{{- if .HasExperience}} Most recently I worked as {{.RecentRole}}, which gave me plenty of hands-on experience I'd bring with me.{{end}}

I'd love to chat about what I could bring to the team. Thanks for taking the time to read this.

Best,
{{.Name}}`,

	ToneImpact: `{{.Greeting}},

{{.Company}} needs a {{.Title}} who delivers results. That is what I do.
{{- if .SkillsLine}} I bring proven strength in {{.SkillsLine}}.{{end}}
{{- if .HasExperience}} As {{.RecentRole}}, I shipped work that moved the numbers that matter.{{end}}

Let's talk about the impact I can make at {{.Company}}.

{{.Name}}`,
}

// Generate fills the template for the given tone with fields drawn from the
// resume and job. Missing resume fields degrade to shorter letters rather
// than failing; only an unknown tone or a template error is reported.
func Generate(resume *types.StructuredResume, job Job, tone Tone) (string, error) {
	text, ok := letterTemplates[tone]
	if !ok {
		return "", &UnknownToneError{Tone: string(tone)}
	}

	tmpl, err := template.New(string(tone)).Parse(text)
	if err != nil {
		return "", &RenderError{Message: "failed to parse letter template", Cause: err}
	}

	data := buildLetterData(resume, job)
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", &RenderError{Message: "failed to render letter", Cause: err}
	}
	return b.String(), nil
}

func buildLetterData(resume *types.StructuredResume, job Job) letterData {
	data := letterData{
		Name:     strings.TrimSpace(resume.PersonalInfo.Name),
		Company:  defaultString(job.Company, "your company"),
		Title:    defaultString(job.Title, "open position"),
		Greeting: "Dear Hiring Manager",
	}
	if data.Name == "" {
		data.Name = "Applicant"
	}
	if manager := strings.TrimSpace(job.HiringManager); manager != "" {
		data.Greeting = "Dear " + manager
	}

	skills := resume.AllSkills()
	if len(skills) > maxSkillsInLetter {
		skills = skills[:maxSkillsInLetter]
	}
	data.SkillsLine = joinNaturally(skills)

	if len(resume.Experience) > 0 {
		recent := resume.Experience[0]
		data.HasExperience = true
		data.RecentRole = recent.Title
		if recent.Company != "" && recent.Company != "Company" {
			data.RecentRole += " at " + recent.Company
		}
	}
	return data
}

func defaultString(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// joinNaturally joins items as "a, b, and c"
func joinNaturally(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
