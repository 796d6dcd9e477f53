// Package pipeline coordinates the extraction stages: text extraction,
// model-based semantic extraction, and the deterministic fallback.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/tripdesk/quotation-parser/constants"
	"github.com/tripdesk/quotation-parser/internal/common"
	"github.com/tripdesk/quotation-parser/internal/entity"
	"github.com/tripdesk/quotation-parser/internal/extract"
	"github.com/tripdesk/quotation-parser/internal/llm"
	"github.com/tripdesk/quotation-parser/internal/parser"
)

// Processor runs a single document through extract -> model -> fallback.
// Once text extraction succeeds it always produces a record: model-service
// failures are absorbed, never propagated.
type Processor struct {
	Extractor *extract.Service
	Model     llm.QuotationExtractor
	Logger    *slog.Logger
}

func NewProcessor(ex *extract.Service, model llm.QuotationExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Extractor: ex, Model: model, Logger: logger}
}

// Process converts a raw document buffer into a QuotationRecord. Errors are
// only returned for extraction-stage failures (unsupported type, too little
// content, corrupt document); those map to client-facing statuses.
func (p *Processor) Process(ctx context.Context, data []byte, mediaType, fileName string) (*entity.QuotationRecord, error) {
	if len(data) == 0 {
		return nil, common.NewAppError("NO_FILE", "empty document buffer", common.ErrNoFile)
	}

	text, err := p.Extractor.ExtractText(data, mediaType, fileName)
	if err != nil {
		return nil, err
	}

	rec := p.extractRecord(ctx, text, fileName)

	rec.FileName = fileName
	rec.ProcessedAt = time.Now().UTC().Format(time.RFC3339)
	rec.ExtractedTextPreview = preview(text)
	return rec, nil
}

// extractRecord tries the model first and falls back to the rule-based
// parser on any failure. The fallback itself cannot fail.
func (p *Processor) extractRecord(ctx context.Context, text, fileName string) *entity.QuotationRecord {
	start := time.Now()

	if p.Model != nil {
		rec, _, err := p.Model.ExtractQuotation(ctx, text)
		if err == nil {
			p.Logger.Info("pipeline.model_extract.ok",
				"file_name", fileName,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return rec
		}
		p.Logger.Warn("pipeline.model_extract.failed",
			"file_name", fileName,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}

	rec := parser.Parse(text)
	p.Logger.Info("pipeline.fallback_parse.ok",
		"file_name", fileName,
		"hotels", len(rec.Hotels),
		"itinerary_days", len(rec.Itinerary),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec
}

func preview(text string) string {
	if len(text) > constants.PreviewLength {
		return text[:constants.PreviewLength]
	}
	return text
}
