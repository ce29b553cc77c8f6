package resume

import (
	"errors"
	"path/filepath"
	"strings"
)

// Format — поддерживаемый формат загружаемого резюме.
type Format int

const (
	FormatUnknown Format = iota
	FormatDOCX
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatDOCX:
		return "docx"
	case FormatPDF:
		return "pdf"
	default:
		return "unknown"
	}
}

// FormatFromFilename resolves the format tag from an upload's file name.
// Only ".docx" and ".pdf" are supported.
func FormatFromFilename(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return FormatDOCX, true
	case ".pdf":
		return FormatPDF, true
	default:
		return FormatUnknown, false
	}
}

var (
	// ErrUnsupportedFormat is returned for any format other than docx and pdf.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	// ErrExtraction wraps every open/parse failure of a document.
	ErrExtraction = errors.New("text extraction failed")
)
