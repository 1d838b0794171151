package interfaces

import (
	"context"

	"github.com/andreas-buehlmeier/pptx-parser/pkg/domain/model"
)

// ExtractUseCase defines slide description extraction from an uploaded
// package.
type ExtractUseCase interface {
	// Extract parses raw pptx bytes and returns the per-slide descriptions.
	// A package without slide parts yields an empty result, not an error.
	Extract(ctx context.Context, filename string, data []byte) (*model.ExtractionResult, error)
}

// ReportStore keeps extraction results in memory for later report download.
type ReportStore interface {
	// Put stores result and returns its download token. The stored result
	// also becomes the default for token-less lookups.
	Put(result *model.ExtractionResult) string

	// Get returns the result stored under token.
	Get(token string) (*model.ExtractionResult, error)

	// Latest returns the most recently stored result.
	Latest() (*model.ExtractionResult, error)
}
