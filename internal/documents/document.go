// Package documents implements the law document catalog. It provides types,
// search, and the metadata validation behind the upload form.
package documents

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusProcessing Status = "processing"
	StatusActive     Status = "active"
	StatusArchived   Status = "archived"
)

// Document represents a law registered in the catalog.
type Document struct {
	ID            string    `json:"id"`
	LawNumber     string    `json:"law_number"`
	Year          int       `json:"year"`
	Jurisdiction  string    `json:"jurisdiction"`
	TitleAr       string    `json:"title_ar"`
	TitleEn       string    `json:"title_en"`
	Version       int       `json:"version"`
	UploadedBy    string    `json:"uploaded_by"`
	UploadDate    time.Time `json:"upload_date"`
	SubjectID     string    `json:"subject_id"`
	FilePath      string    `json:"file_path"`
	ProcessedText *string   `json:"processed_text,omitempty"`
	Status        Status    `json:"status"`
	ArticleCount  *int      `json:"article_count,omitempty"`
}

// UploadCommand carries the metadata submitted with a new law document.
// Year is kept as submitted so validation can report a malformed value.
// The file itself is described by Filename and Size only; its bytes are
// never retained.
type UploadCommand struct {
	LawNumber    string
	Year         string
	TitleAr      string
	TitleEn      string
	Jurisdiction string
	SubjectID    string
	Filename     string
	Size         int64
}

// Validate checks required fields in form order, then the year, the file
// extension, and the size limit.
func (c UploadCommand) Validate(maxSize int64) error {
	required := []struct {
		field string
		value string
	}{
		{"law_number", c.LawNumber},
		{"year", c.Year},
		{"title_ar", c.TitleAr},
		{"title_en", c.TitleEn},
		{"jurisdiction", c.Jurisdiction},
		{"subject_id", c.SubjectID},
		{"file", c.Filename},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, r.field)
		}
	}

	if _, err := c.year(); err != nil {
		return err
	}

	if !strings.EqualFold(filepath.Ext(c.Filename), ".pdf") {
		return ErrNotPDF
	}

	if maxSize > 0 && c.Size > maxSize {
		return ErrFileTooLarge
	}

	return nil
}

func (c UploadCommand) year() (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(c.Year))
	if err != nil || y < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, c.Year)
	}
	return y, nil
}
