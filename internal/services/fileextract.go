package services

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileExtractService pulls plain text out of uploaded document files.
type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

// ExtractTextFromPath extracts text from a document saved at path, dispatching
// on the file extension.
func (s *FileExtractService) ExtractTextFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.extractPDF(path)
	case ".docx", ".doc":
		return s.extractDOCX(path)
	default:
		return "", fmt.Errorf("unsupported document extension: %s", filepath.Ext(path))
	}
}

// extractPDF walks every page and concatenates the plain text. Individual
// pages that fail to decode are skipped rather than aborting the document.
func (s *FileExtractService) extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}

	return normalizeExtractedText(text.String()), nil
}

// extractDOCX reads word/document.xml from the OOXML zip container and strips
// the markup. Legacy .doc files that are really OOXML archives work too; true
// binary .doc files fail at the zip open.
func (s *FileExtractService) extractDOCX(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open document archive: %w", err)
	}
	defer archive.Close()

	var docXML []byte
	for _, file := range archive.File {
		if file.Name == "word/document.xml" {
			rc, err := file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to read document body: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document body: %w", err)
			}
			break
		}
	}

	if docXML == nil {
		return "", fmt.Errorf("document body not found in archive")
	}

	return normalizeExtractedText(stripDOCXML(docXML)), nil
}

var (
	docParagraphPattern = regexp.MustCompile(`</w:p>`)
	docTagPattern       = regexp.MustCompile(`<[^>]+>`)
)

// stripDOCXML turns WordprocessingML into plain text, preserving paragraph
// boundaries as newlines.
func stripDOCXML(raw []byte) string {
	withBreaks := docParagraphPattern.ReplaceAll(raw, []byte("\n"))
	stripped := docTagPattern.ReplaceAll(withBreaks, nil)

	text := string(stripped)
	text = strings.ReplaceAll(text, "&amp;", "&")
	text = strings.ReplaceAll(text, "&lt;", "<")
	text = strings.ReplaceAll(text, "&gt;", ">")
	text = strings.ReplaceAll(text, "&quot;", `"`)
	text = strings.ReplaceAll(text, "&apos;", "'")
	return text
}

// normalizeExtractedText collapses runs of whitespace inside lines and drops
// blank lines so downstream prompts get compact input.
func normalizeExtractedText(text string) string {
	var out bytes.Buffer
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		out.WriteString(strings.Join(fields, " "))
	}
	return out.String()
}
