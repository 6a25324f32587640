// ABOUTME: Text extraction from uploaded documents in txt, pdf, doc, and docx formats
// ABOUTME: Word-processor formats round-trip through a temp file that is always removed

package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"

	coreerrors "lexassist-api/core/errors"
)

// allowedExtensions is the set of upload formats the analyzer accepts
var allowedExtensions = map[string]bool{
	"txt":  true,
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// Extension returns the lowercased extension of a filename without the dot
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// Allowed reports whether the filename carries an accepted extension
func Allowed(filename string) bool {
	return allowedExtensions[Extension(filename)]
}

// Text extracts the plain text of an uploaded document. The format is
// chosen by file extension; content that cannot be read as that format
// fails with ExtractionError.
func Text(filename string, r io.Reader) (string, error) {
	ext := Extension(filename)

	switch ext {
	case "txt":
		return fromPlainText(r)
	case "pdf":
		return fromPDF(r)
	case "doc", "docx":
		return fromWordProcessor(ext, r)
	default:
		return "", &coreerrors.ExtractionError{Format: ext, Message: "unsupported file format"}
	}
}

func fromPlainText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", &coreerrors.ExtractionError{Format: "txt", Message: err.Error()}
	}
	if !utf8.Valid(data) {
		return "", &coreerrors.ExtractionError{Format: "txt", Message: "file is not valid UTF-8 text"}
	}
	return string(data), nil
}

// fromPDF concatenates the text of every page in order
func fromPDF(r io.Reader) (text string, err error) {
	// The pdf package panics on some malformed inputs
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = &coreerrors.ExtractionError{Format: "pdf", Message: fmt.Sprint(rec)}
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", &coreerrors.ExtractionError{Format: "pdf", Message: err.Error()}
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &coreerrors.ExtractionError{Format: "pdf", Message: err.Error()}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", &coreerrors.ExtractionError{
				Format:  "pdf",
				Message: fmt.Sprintf("page %d: %s", i, err.Error()),
			}
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// fromWordProcessor writes the upload to a temporary file, parses it, and
// joins the paragraph text with newlines. The temp file is removed on every
// exit path.
func fromWordProcessor(ext string, r io.Reader) (text string, err error) {
	tmp, err := os.CreateTemp("", "upload-*."+ext)
	if err != nil {
		return "", coreerrors.WrapError(err, "creating temporary file")
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	size, err := io.Copy(tmp, r)
	if err != nil {
		return "", coreerrors.WrapError(err, "writing temporary file")
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", coreerrors.WrapError(err, "rewinding temporary file")
	}

	doc, err := docx.Parse(tmp, size)
	if err != nil {
		return "", &coreerrors.ExtractionError{Format: ext, Message: err.Error()}
	}

	paragraphs := make([]string, 0, len(doc.Document.Body.Items))
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
