// Package portfolio turns a structured resume into a single-page portfolio
// site. The HTML is rendered with html/template so resume content is always
// escaped; themes only vary the stylesheet.
package portfolio

import (
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Theme selects the stylesheet bundled with the generated page
type Theme string

// Supported themes
const (
	ThemeMinimal Theme = "minimal"
	ThemeModern  Theme = "modern"
	ThemeClassic Theme = "classic"
)

// Site is a generated portfolio ready for publishing
type Site struct {
	HTML  string
	CSS   string
	Theme Theme
}

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="style.css">
</head>
<body>
<header id="header">
<h1>{{.Name}}</h1>
{{- if .Headline}}
<p class="headline">{{.Headline}}</p>
{{- end}}
<ul class="contact">
{{- if .Email}}
<li><a href="mailto:{{.Email}}">{{.Email}}</a></li>
{{- end}}
{{- if .Phone}}
<li>{{.Phone}}</li>
{{- end}}
{{- if .Location}}
<li>{{.Location}}</li>
{{- end}}
{{- if .Website}}
<li><a href="{{.WebsiteHref}}">{{.Website}}</a></li>
{{- end}}
{{- if .LinkedIn}}
<li><a href="{{.LinkedInHref}}">LinkedIn</a></li>
{{- end}}
</ul>
</header>
{{- if .Summary}}
<section id="summary">
<h2>About</h2>
<p>{{.Summary}}</p>
</section>
{{- end}}
{{- if .Experience}}
<section id="experience">
<h2>Experience</h2>
{{- range .Experience}}
<article class="job">
<h3>{{.Title}}</h3>
<p class="meta">{{.Company}}{{if .Dates}} &middot; {{.Dates}}{{end}}</p>
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
</article>
{{- end}}
</section>
{{- end}}
{{- if .HasSkills}}
<section id="skills">
<h2>Skills</h2>
{{- if .TechnicalSkills}}
<ul class="skills technical">
{{- range .TechnicalSkills}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .SoftSkills}}
<ul class="skills soft">
{{- range .SoftSkills}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</section>
{{- end}}
{{- if .Education}}
<section id="education">
<h2>Education</h2>
{{- range .Education}}
<article class="school">
<h3>{{.Degree}}</h3>
<p class="meta">{{.School}}{{if .GraduationYear}} &middot; {{.GraduationYear}}{{end}}</p>
</article>
{{- end}}
</section>
{{- end}}
{{- if .Certifications}}
<section id="certifications">
<h2>Certifications</h2>
<ul>
{{- range .Certifications}}
<li>{{.Name}}{{if .Issuer}} ({{.Issuer}}){{end}}</li>
{{- end}}
</ul>
</section>
{{- end}}
</body>
</html>
`

var sitePage = template.Must(template.New("portfolio").Parse(pageTemplate))

type pageData struct {
	Title           string
	Name            string
	Headline        string
	Email           string
	Phone           string
	Location        string
	Website         string
	WebsiteHref     string
	LinkedIn        string
	LinkedInHref    string
	Summary         string
	Experience      []pageJob
	HasSkills       bool
	TechnicalSkills []string
	SoftSkills      []string
	Education       []types.EducationEntry
	Certifications  []types.Certification
}

type pageJob struct {
	Title       string
	Company     string
	Dates       string
	Description string
}

// BuildSite renders the portfolio page for a resume with the given theme.
func BuildSite(resume *types.StructuredResume, theme Theme) (*Site, error) {
	css, ok := themeStyles[theme]
	if !ok {
		return nil, &UnknownThemeError{Theme: string(theme)}
	}

	var b strings.Builder
	if err := sitePage.Execute(&b, buildPageData(resume)); err != nil {
		return nil, &BuildError{Message: "failed to render portfolio page", Cause: err}
	}

	return &Site{HTML: b.String(), CSS: css, Theme: theme}, nil
}

func buildPageData(resume *types.StructuredResume) pageData {
	info := resume.PersonalInfo
	name := strings.TrimSpace(info.Name)
	if name == "" {
		name = "Portfolio"
	}

	data := pageData{
		Title:           name,
		Name:            name,
		Headline:        headline(resume),
		Email:           info.Email,
		Phone:           info.Phone,
		Location:        info.Location,
		Website:         info.Website,
		WebsiteHref:     ensureScheme(info.Website),
		LinkedIn:        info.LinkedIn,
		LinkedInHref:    ensureScheme(info.LinkedIn),
		Summary:         resume.Summary,
		HasSkills:       resume.HasSkills(),
		TechnicalSkills: resume.Skills.Technical,
		SoftSkills:      resume.Skills.Soft,
		Education:       resume.Education,
		Certifications:  resume.Certifications,
	}

	for _, exp := range resume.Experience {
		data.Experience = append(data.Experience, pageJob{
			Title:       exp.Title,
			Company:     exp.Company,
			Dates:       formatDates(exp),
			Description: exp.Description,
		})
	}
	return data
}

// headline is the most recent job title, when there is one
func headline(resume *types.StructuredResume) string {
	if len(resume.Experience) == 0 {
		return ""
	}
	title := resume.Experience[0].Title
	if title == "Position" {
		return ""
	}
	return title
}

func formatDates(exp types.ExperienceEntry) string {
	switch {
	case exp.StartDate == "" && exp.EndDate == "":
		return ""
	case exp.Current:
		return exp.StartDate + " - Present"
	case exp.EndDate == "":
		return exp.StartDate
	default:
		return exp.StartDate + " - " + exp.EndDate
	}
}

func ensureScheme(url string) string {
	if url == "" {
		return ""
	}
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return "https://" + url
}
