package portfolio

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SiteManifest summarizes a generated page for the publisher: which sections
// exist and which links leave the page.
type SiteManifest struct {
	Title      string   `json:"title"`
	SectionIDs []string `json:"section_ids"`
	Links      []string `json:"links"`
}

// BuildManifest parses generated portfolio HTML and reports its title,
// section ids in document order, and deduplicated outbound links. mailto
// links are skipped; relative links are kept as written.
func BuildManifest(html string) (*SiteManifest, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &BuildError{Message: "failed to parse generated page", Cause: err}
	}

	manifest := &SiteManifest{
		Title:      strings.TrimSpace(doc.Find("title").First().Text()),
		SectionIDs: []string{},
		Links:      []string{},
	}

	doc.Find("header[id], section[id]").Each(func(_ int, s *goquery.Selection) {
		if id, ok := s.Attr("id"); ok && id != "" {
			manifest.SectionIDs = append(manifest.SectionIDs, id)
		}
	})

	seen := map[string]bool{}
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" || strings.HasPrefix(href, "mailto:") || seen[href] {
			return
		}
		seen[href] = true
		manifest.Links = append(manifest.Links, href)
	})

	return manifest, nil
}
