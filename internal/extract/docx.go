package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DOCXDecoder extracts raw text from Office Open XML word-processing
// documents, discarding all styling. A .docx is a zip archive whose body
// lives in word/document.xml.
type DOCXDecoder struct{}

var (
	reParaBreak = regexp.MustCompile(`</w:p>|<w:br[^>]*/?>`)
	reTabMark   = regexp.MustCompile(`<w:tab[^>]*/?>`)
	reXMLTag    = regexp.MustCompile(`<[^>]+>`)
)

func (DOCXDecoder) Decode(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	for _, file := range zr.File {
		if file.Name != "word/document.xml" {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		return docxXMLToText(string(content)), nil
	}
	return "", fmt.Errorf("docx: word/document.xml not found")
}

// docxXMLToText keeps paragraph and tab boundaries so the line-oriented
// fallback parser sees the same structure a human would.
func docxXMLToText(xml string) string {
	s := reParaBreak.ReplaceAllString(xml, "\n")
	s = reTabMark.ReplaceAllString(s, "\t")
	s = reXMLTag.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	return strings.TrimSpace(s)
}
