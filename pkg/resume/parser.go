package resume

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const wordNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Extract reads the file at path and returns its raw text.
func Extract(path string, format Format) (string, error) {
	switch format {
	case FormatDOCX:
		d, err := docx.ReadDocxFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: open docx: %v", ErrExtraction, err)
		}
		defer d.Close()
		return docxText(d)
	case FormatPDF:
		f, r, err := pdf.Open(path)
		if err != nil {
			return "", fmt.Errorf("%w: open pdf: %v", ErrExtraction, err)
		}
		defer f.Close()
		return pdfText(r), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// ExtractBytes is Extract for an in-memory upload.
func ExtractBytes(data []byte, format Format) (string, error) {
	switch format {
	case FormatDOCX:
		d, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("%w: read docx: %v", ErrExtraction, err)
		}
		defer d.Close()
		return docxText(d)
	case FormatPDF:
		r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return "", fmt.Errorf("%w: read pdf: %v", ErrExtraction, err)
		}
		return pdfText(r), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func docxText(d *docx.ReplaceDocx) (string, error) {
	text, err := paragraphText(d.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("%w: parse document.xml: %v", ErrExtraction, err)
	}
	return text, nil
}

// paragraphText joins the text of every w:p with single spaces, in document order.
func paragraphText(documentXML string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(documentXML))
	var (
		paras  []string
		cur    strings.Builder
		pDepth int
		inRun  int
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if !isWord(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				if pDepth == 0 {
					cur.Reset()
				}
				pDepth++
			case "r":
				inRun++
			case "t":
				inText = pDepth > 0
			case "tab":
				// w:tab outside a run is a tab stop definition
				if pDepth > 0 && inRun > 0 {
					cur.WriteByte('\t')
				}
			case "br", "cr":
				if pDepth > 0 && inRun > 0 {
					cur.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if !isWord(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				if pDepth == 0 {
					continue
				}
				pDepth--
				if pDepth == 0 {
					paras = append(paras, cur.String())
				}
			case "r":
				if inRun > 0 {
					inRun--
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
	return strings.Join(paras, " "), nil
}

func isWord(n xml.Name) bool {
	return n.Space == wordNS || n.Space == "w"
}

// pdfText concatenates plain text of all pages. A page that yields nothing
// (or cannot be decoded) contributes an empty string.
func pdfText(r *pdf.Reader) string {
	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		b.WriteString(pageText(r.Page(i)))
	}
	return b.String()
}

func pageText(p pdf.Page) (text string) {
	// ledongthuc/pdf panics on some malformed content streams
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if p.V.IsNull() {
		return ""
	}
	txt, err := p.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return txt
}
