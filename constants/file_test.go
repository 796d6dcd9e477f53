package constants

import "testing"

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name      string
		mediaType string
		fileName  string
		want      FileFormat
	}{
		{"pdf by media type", "application/pdf", "quote.bin", PDF},
		{"docx by media type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "quote.bin", DOCX},
		{"plain text", "text/plain", "quote.txt", TXT},
		{"text with charset", "text/plain; charset=utf-8", "quote.txt", TXT},
		{"csv still routes to text", "text/csv", "quote.csv", TXT},
		{"docx by filename fallback", "application/octet-stream", "quote.docx", DOCX},
		{"doc by filename fallback", "application/octet-stream", "quote.DOC", DOCX},
		{"unsupported image", "image/png", "scan.png", ""},
		{"no hints at all", "", "quote", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFormat(tt.mediaType, tt.fileName); got != tt.want {
				t.Errorf("DetectFormat(%q, %q) = %q, want %q", tt.mediaType, tt.fileName, got, tt.want)
			}
		})
	}
}

func TestNormalizeExt(t *testing.T) {
	tests := []struct{ in, want string }{
		{".PDF", "pdf"},
		{".docx", "docx"},
		{"txt", "txt"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeExt(tt.in); got != tt.want {
			t.Errorf("NormalizeExt(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
