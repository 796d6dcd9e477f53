package constants

import (
	"path/filepath"
	"strings"
)

// FileFormat is the canonical document format handled by the text extractor.
type FileFormat string

const (
	PDF  FileFormat = "PDF"
	DOCX FileFormat = "DOCX"
	TXT  FileFormat = "TXT"
)

// MaxUploadBytes is the largest accepted request body (10 MiB).
const MaxUploadBytes = 10 << 20

// MinTextLength is the minimum trimmed length of extracted text; anything
// shorter is treated as a corrupt, empty, or image-only document.
const MinTextLength = 50

// wordExtensions are filename suffixes treated as word-processing documents.
var wordExtensions = map[string]struct{}{
	"doc":  {},
	"docx": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// DetectFormat maps a declared media type plus the original filename to a
// FileFormat. The filename is a secondary signal: browsers often upload
// .docx as application/octet-stream. Returns "" when unsupported.
func DetectFormat(mediaType, fileName string) FileFormat {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case mt == "application/pdf":
		return PDF
	case strings.Contains(mt, "word"):
		return DOCX
	case mt == "text/plain" || strings.HasPrefix(mt, "text/"):
		return TXT
	}
	if _, ok := wordExtensions[NormalizeExt(filepath.Ext(fileName))]; ok {
		return DOCX
	}
	return ""
}
