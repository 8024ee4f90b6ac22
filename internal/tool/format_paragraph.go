package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// FormatParagraphRequest applies a sparse paragraph style to a range.
type FormatParagraphRequest struct {
	DocumentID string             `json:"document_id" jsonschema:"the document ID"`
	StartIndex int64              `json:"start_index" jsonschema:"1-based start index, inclusive"`
	EndIndex   int64              `json:"end_index" jsonschema:"end index, exclusive"`
	Style      ParagraphStyleArgs `json:"style" jsonschema:"paragraph style attributes to apply"`
}

// FormatParagraphResponse reports the applied formatting.
type FormatParagraphResponse struct {
	DocumentID    string `json:"document_id" jsonschema:"the document ID"`
	StartIndex    int64  `json:"start_index" jsonschema:"start of the formatted range"`
	EndIndex      int64  `json:"end_index" jsonschema:"end of the formatted range"`
	UpdatedFields string `json:"updated_fields" jsonschema:"comma-joined field mask of the attributes that were set"`
}

type formatParagraphSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewFormatParagraph creates a new FormatParagraph tool.
func NewFormatParagraph(svc formatParagraphSvc) *FormatParagraph {
	return &FormatParagraph{svc: svc}
}

// FormatParagraph applies paragraph styling to a caller-provided range.
type FormatParagraph struct {
	svc formatParagraphSvc
}

// FormatParagraph handles format_paragraph tool calls.
func (t *FormatParagraph) FormatParagraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FormatParagraphRequest,
) (*mcp.CallToolResult, FormatParagraphResponse, error) {
	if input.DocumentID == "" {
		return nil, FormatParagraphResponse{}, errors.New("document_id is required")
	}

	rng := docedit.Range{StartIndex: input.StartIndex, EndIndex: input.EndIndex}

	reqs, err := docedit.ParagraphStyleRequest(input.Style.intent(), rng)
	if err != nil {
		return nil, FormatParagraphResponse{}, err
	}
	if len(reqs) == 0 {
		return nil, FormatParagraphResponse{}, docedit.ErrEmptyIntent
	}

	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, FormatParagraphResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, FormatParagraphResponse{
		DocumentID:    input.DocumentID,
		StartIndex:    input.StartIndex,
		EndIndex:      input.EndIndex,
		UpdatedFields: reqs[0].UpdateParagraphStyle.Fields,
	}, nil
}
