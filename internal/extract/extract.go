package extract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tripdesk/quotation-parser/constants"
	"github.com/tripdesk/quotation-parser/internal/common"
)

// Service is Stage 1 of the pipeline: buffer + declared media type -> plain
// text. Decoders are registered per format, so adding a new document kind
// is a map entry, not a rewrite.
type Service struct {
	decoders map[constants.FileFormat]Decoder
	logger   *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		decoders: map[constants.FileFormat]Decoder{
			constants.PDF:  PDFDecoder{},
			constants.DOCX: DOCXDecoder{},
			constants.TXT:  TextDecoder{},
		},
		logger: logger,
	}
}

// Register installs or replaces the decoder for a format.
func (s *Service) Register(format constants.FileFormat, d Decoder) {
	s.decoders[format] = d
}

// ExtractText converts a raw document buffer into plain text. It fails with
// common.ErrUnsupportedMediaType when no decoder matches the declared type,
// and with common.ErrInsufficientContent when the trimmed result is shorter
// than constants.MinTextLength.
func (s *Service) ExtractText(data []byte, mediaType, fileName string) (string, error) {
	start := time.Now()

	format := constants.DetectFormat(mediaType, fileName)
	if format == "" {
		s.logger.Warn("extract.unsupported_type", "media_type", mediaType, "file_name", fileName)
		return "", common.NewAppError("UNSUPPORTED_MEDIA_TYPE",
			fmt.Sprintf("cannot extract text from %q", mediaType), common.ErrUnsupportedMediaType)
	}

	text, err := s.decode(format, data)
	if err != nil {
		s.logger.Error("extract.decode_error",
			"format", string(format), "file_name", fileName, "error", err)
		return "", common.NewAppError("PROCESSING_FAILURE",
			fmt.Sprintf("decode %s document", format), fmt.Errorf("%w: %w", common.ErrProcessing, err))
	}

	if len(strings.TrimSpace(text)) < constants.MinTextLength {
		s.logger.Warn("extract.insufficient_content",
			"format", string(format), "file_name", fileName, "text_len", len(strings.TrimSpace(text)))
		return "", common.NewAppError("INSUFFICIENT_CONTENT",
			"document contains too little readable text", common.ErrInsufficientContent)
	}

	s.logger.Info("extract.ok",
		"format", string(format),
		"file_name", fileName,
		"input_bytes", len(data),
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// decode shields callers from decoder panics on corrupt input; third-party
// PDF parsing is not panic-free.
func (s *Service) decode(format constants.FileFormat, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return s.decoders[format].Decode(data)
}
