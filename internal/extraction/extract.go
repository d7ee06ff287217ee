// Package extraction pulls plain text out of uploaded resume files.
package extraction

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// documentSuffixes are handed to the document converter; anything else is
// read as raw text.
var documentSuffixes = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".rtf":  true,
	".odt":  true,
}

// ExtractFile extracts resume text from a file on disk, dispatching on the
// filename suffix. Failures are reported as *ExtractionError so callers can
// fall back to manual text entry.
func ExtractFile(path string) (string, error) {
	suffix := strings.ToLower(filepath.Ext(path))

	if documentSuffixes[suffix] {
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", &ExtractionError{Filename: filepath.Base(path), Cause: err}
		}
		return res.Body, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Filename: filepath.Base(path), Cause: err}
	}
	return string(content), nil
}

// Extract extracts resume text from an uploaded stream by spooling it to a
// temporary file first; the document converter needs a path.
func Extract(filename string, r io.Reader) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*"+strings.ToLower(filepath.Ext(filename)))
	if err != nil {
		return "", &ExtractionError{Filename: filename, Cause: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", &ExtractionError{Filename: filename, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &ExtractionError{Filename: filename, Cause: err}
	}

	text, err := ExtractFile(tmp.Name())
	if err != nil {
		// Report the original upload name, not the spool file.
		if exErr, ok := err.(*ExtractionError); ok {
			return "", &ExtractionError{Filename: filename, Cause: exErr.Cause}
		}
		return "", err
	}
	return text, nil
}
