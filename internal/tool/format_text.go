package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// FormatTextRequest applies a sparse text style to an explicit index range.
type FormatTextRequest struct {
	DocumentID string        `json:"document_id" jsonschema:"the document ID"`
	StartIndex int64         `json:"start_index" jsonschema:"1-based start index, inclusive"`
	EndIndex   int64         `json:"end_index" jsonschema:"end index, exclusive"`
	Style      TextStyleArgs `json:"style" jsonschema:"text style attributes to apply"`
}

// FormatTextResponse reports the applied formatting.
type FormatTextResponse struct {
	DocumentID    string `json:"document_id" jsonschema:"the document ID"`
	StartIndex    int64  `json:"start_index" jsonschema:"start of the formatted range"`
	EndIndex      int64  `json:"end_index" jsonschema:"end of the formatted range"`
	UpdatedFields string `json:"updated_fields" jsonschema:"comma-joined field mask of the attributes that were set"`
}

type formatTextSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewFormatText creates a new FormatText tool.
func NewFormatText(svc formatTextSvc) *FormatText {
	return &FormatText{svc: svc}
}

// FormatText applies text styling to a caller-provided range.
type FormatText struct {
	svc formatTextSvc
}

// FormatText handles format_text tool calls.
func (t *FormatText) FormatText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FormatTextRequest,
) (*mcp.CallToolResult, FormatTextResponse, error) {
	if input.DocumentID == "" {
		return nil, FormatTextResponse{}, errors.New("document_id is required")
	}

	rng := docedit.Range{StartIndex: input.StartIndex, EndIndex: input.EndIndex}

	reqs, err := docedit.TextStyleRequest(input.Style.intent(), rng)
	if err != nil {
		return nil, FormatTextResponse{}, err
	}
	if len(reqs) == 0 {
		return nil, FormatTextResponse{}, docedit.ErrEmptyIntent
	}

	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, FormatTextResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, FormatTextResponse{
		DocumentID:    input.DocumentID,
		StartIndex:    input.StartIndex,
		EndIndex:      input.EndIndex,
		UpdatedFields: reqs[0].UpdateTextStyle.Fields,
	}, nil
}
