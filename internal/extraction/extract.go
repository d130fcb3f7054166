// Package extraction converts uploaded resume files into plain text. It is
// the upstream boundary of the pipeline: downstream packages only ever see a
// types.RawDocument, never file bytes.
package extraction

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/jonathan/resume-builder/internal/types"
)

// ExtractText extracts plain text from an uploaded file and wraps it in a
// RawDocument with content hash and timestamp. The format is chosen by file
// extension. PDF extraction is best effort: scanned or image-based PDFs yield
// little or no text, and the caller should treat an empty Text field as an
// extraction miss rather than an empty resume.
func ExtractText(filename string, data []byte) (*types.RawDocument, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error
	switch ext {
	case ".txt":
		text = string(data)
	case ".docx":
		text, err = extractDocxText(data)
		if err != nil {
			return nil, &ExtractionError{Format: "docx", Cause: err}
		}
	case ".pdf":
		text, err = extractPDFText(data)
		if err != nil {
			return nil, &ExtractionError{Format: "pdf", Cause: err}
		}
	default:
		return nil, &UnsupportedFormatError{Extension: ext}
	}

	cleaned := CleanText(text)
	return &types.RawDocument{
		ID:        uuid.NewString(),
		Filename:  filepath.Base(filename),
		Format:    strings.TrimPrefix(ext, "."),
		Text:      cleaned,
		Hash:      computeHash(cleaned),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer func() { _ = doc.Close() }()

	return flattenDocxXML(doc.Editable().GetContent()), nil
}

// flattenDocxXML turns the raw document.xml content into line-oriented text:
// paragraph ends become newlines, tabs are kept, all other tags are stripped.
func flattenDocxXML(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")

	var b strings.Builder
	inTag := false
	for _, r := range xml {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Per-page extraction failures are skipped, not fatal.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
