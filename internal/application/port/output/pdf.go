package output

import "context"

type PDFTextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}
