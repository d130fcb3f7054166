package scoring

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-builder/internal/structuring"
)

// maxJobKeywords caps how many keywords are extracted from a job description
const maxJobKeywords = 25

// Industry keyword dictionaries scanned against job descriptions. Entries are
// stored in display casing; matching is case-insensitive.
var technologyKeywords = []string{
	"JavaScript", "Python", "Java", "Go", "SQL", "AWS", "Azure", "Docker",
	"Kubernetes", "React", "Node.js", "Microservices", "CI/CD", "Agile",
	"Scrum", "Machine Learning", "Cloud Computing", "DevOps", "REST API",
	"Git",
}

var healthcareKeywords = []string{
	"Patient Care", "Electronic Health Records", "EHR", "HIPAA", "Clinical",
	"Nursing", "Medical Terminology", "Medication Administration", "Triage",
	"Care Coordination", "ICD-10", "Medical Billing", "Phlebotomy",
	"Vital Signs", "Charting", "Infection Control",
}

var financeKeywords = []string{
	"Financial Analysis", "Financial Modeling", "Accounting", "GAAP",
	"Budgeting", "Forecasting", "Auditing", "Reconciliation", "Accounts Payable",
	"Accounts Receivable", "Risk Management", "Compliance", "Excel",
	"Financial Reporting", "Tax", "Portfolio Management", "Valuation",
}

var marketingKeywords = []string{
	"SEO", "SEM", "Content Marketing", "Social Media", "Google Analytics",
	"Email Marketing", "Brand Management", "Campaign Management", "Copywriting",
	"Market Research", "Digital Marketing", "Marketing Strategy", "CRM",
	"Lead Generation", "A/B Testing", "Conversion Rate",
}

var salesKeywords = []string{
	"Sales", "Business Development", "Account Management", "Cold Calling",
	"Prospecting", "Negotiation", "Pipeline Management", "Quota", "CRM",
	"Salesforce", "Closing", "Upselling", "Territory Management",
	"Customer Relationship", "Revenue Growth", "Client Retention",
}

// industryDictionaries fixes the scan order for keyword extraction
var industryDictionaries = [][]string{
	technologyKeywords,
	healthcareKeywords,
	financeKeywords,
	marketingKeywords,
	salesKeywords,
}

// relevantPhrases are multi-word phrases recognized in 2- and 3-word windows
// of the job description. Stored lowercase.
var relevantPhrases = map[string]bool{
	"project management":               true,
	"data analysis":                    true,
	"customer service":                 true,
	"team leadership":                  true,
	"strategic planning":               true,
	"process improvement":              true,
	"quality assurance":                true,
	"business development":             true,
	"problem solving":                  true,
	"cross functional":                 true,
	"stakeholder management":           true,
	"supply chain management":          true,
	"performance management":           true,
	"continuous improvement":           true,
	"customer relationship management": true,
}

// ExtractJobKeywords extracts up to maxJobKeywords keywords from a job
// description: industry dictionary terms, skills database terms, then
// title-cased relevant phrases, deduplicated in insertion order. There is no
// frequency ranking; order of appearance in the scan is the order returned.
func ExtractJobKeywords(jobDescription string) []string {
	lower := strings.ToLower(jobDescription)

	keywords := []string{}
	seen := map[string]bool{}
	add := func(display string) {
		key := strings.ToLower(display)
		if seen[key] {
			return
		}
		seen[key] = true
		keywords = append(keywords, display)
	}

	for _, dict := range industryDictionaries {
		for _, term := range dict {
			if structuring.ContainsTerm(lower, strings.ToLower(term)) {
				add(term)
			}
		}
	}

	// Combined skills database: the same dictionaries the structurer uses.
	for _, term := range structuring.TechnicalSkills {
		if structuring.ContainsTerm(lower, strings.ToLower(term)) {
			add(term)
		}
	}
	for _, term := range structuring.SoftSkills {
		if structuring.ContainsTerm(lower, strings.ToLower(term)) {
			add(term)
		}
	}

	for _, phrase := range scanPhraseWindows(lower) {
		add(titleCase(phrase))
	}

	if len(keywords) > maxJobKeywords {
		keywords = keywords[:maxJobKeywords]
	}
	return keywords
}

// scanPhraseWindows returns every relevant phrase found in adjacent 2-word
// and 3-word windows of the lowercased text, in order of appearance.
func scanPhraseWindows(lower string) []string {
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	found := []string{}
	for i := range words {
		if i+2 <= len(words) {
			window := strings.Join(words[i:i+2], " ")
			if relevantPhrases[window] {
				found = append(found, window)
			}
		}
		if i+3 <= len(words) {
			window := strings.Join(words[i:i+3], " ")
			if relevantPhrases[window] {
				found = append(found, window)
			}
		}
	}
	return found
}

// titleCase capitalizes the first letter of each word. strings.Title is
// deprecated and these phrases are plain ASCII.
func titleCase(phrase string) string {
	words := strings.Fields(phrase)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
