package llm

import (
	"context"

	"github.com/tripdesk/quotation-parser/internal/entity"
)

// QuotationExtractor is the model-backed text -> QuotationRecord contract
// the pipeline depends on. Implementations may fail for any reason
// (network, auth, quota, malformed output); the caller is expected to
// recover with the deterministic fallback parser.
type QuotationExtractor interface {
	ExtractQuotation(ctx context.Context, text string) (*entity.QuotationRecord, []byte /*rawJSON*/, error)
}
