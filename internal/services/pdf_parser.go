package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"alfredoptarigan/hr-chatbot/internal/models"
)

const maxBioChars = 600

type ResumeParser interface {
	ExtractText(filePath string) (string, error)
	ExtractBio(filePath string) (string, error)
}

type resumeParser struct{}

func NewResumeParser() ResumeParser {
	return &resumeParser{}
}

// ExtractText implements ResumeParser.
func (p *resumeParser) ExtractText(filePath string) (string, error) {
	if _, err := os.Stat(filePath); err != nil {
		return "", fmt.Errorf("resume not readable: %w", err)
	}

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// unreadable pages are skipped
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := textBuilder.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}

	return text, nil
}

// ExtractBio implements ResumeParser: the first paragraph of the resume,
// whitespace-collapsed and capped in length.
func (p *resumeParser) ExtractBio(filePath string) (string, error) {
	text, err := p.ExtractText(filePath)
	if err != nil {
		return "", err
	}
	return FirstParagraph(text, maxBioChars), nil
}

// FirstParagraph returns the first non-blank paragraph of text with its
// whitespace collapsed, cut at maxChars runes on a word boundary.
func FirstParagraph(text string, maxChars int) string {
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n") {
		para = strings.Join(strings.Fields(para), " ")
		if para == "" {
			continue
		}
		if maxChars <= 0 || utf8.RuneCountInString(para) <= maxChars {
			return para
		}
		runes := []rune(para)[:maxChars]
		cut := string(runes)
		if i := strings.LastIndex(cut, " "); i > 0 {
			cut = cut[:i]
		}
		return cut + "..."
	}
	return ""
}

// ResumePath maps an employee name to <dir>/<slug>.pdf, where the slug is the
// lower-cased name with runs of non-alphanumerics replaced by underscores.
func ResumePath(dir, name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	return filepath.Join(dir, strings.TrimSuffix(b.String(), "_")+".pdf")
}

// AttachResumeBios fills the bio of every employee that has none from
// <dir>/<slug>.pdf when that file exists. It returns how many bios were set.
// Resumes that fail to parse are logged and skipped.
func AttachResumeBios(employees []models.Employee, dir string, parser ResumeParser, log *zap.Logger) int {
	if log == nil {
		log = zap.NewNop()
	}
	attached := 0
	for i := range employees {
		if strings.TrimSpace(employees[i].Bio) != "" {
			continue
		}
		path := ResumePath(dir, employees[i].Name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		bio, err := parser.ExtractBio(path)
		if err != nil {
			log.Warn("resume skipped", zap.String("path", path), zap.Error(err))
			continue
		}
		employees[i].Bio = bio
		attached++
	}
	return attached
}
