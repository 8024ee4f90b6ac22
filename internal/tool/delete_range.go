package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// DeleteRangeRequest describes the content range to delete.
type DeleteRangeRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	StartIndex int64  `json:"start_index" jsonschema:"1-based start index, inclusive"`
	EndIndex   int64  `json:"end_index" jsonschema:"end index, exclusive"`
}

// DeleteRangeResponse reports the deleted range.
type DeleteRangeResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	StartIndex int64  `json:"start_index" jsonschema:"start of the deleted range"`
	EndIndex   int64  `json:"end_index" jsonschema:"end of the deleted range"`
}

type deleteRangeSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewDeleteRange creates a new DeleteRange tool.
func NewDeleteRange(svc deleteRangeSvc) *DeleteRange {
	return &DeleteRange{svc: svc}
}

// DeleteRange deletes a content range.
type DeleteRange struct {
	svc deleteRangeSvc
}

// DeleteRange handles delete_range tool calls.
func (t *DeleteRange) DeleteRange(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteRangeRequest,
) (*mcp.CallToolResult, DeleteRangeResponse, error) {
	if input.DocumentID == "" {
		return nil, DeleteRangeResponse{}, errors.New("document_id is required")
	}

	req, err := docedit.DeleteRangeRequest(docedit.Range{
		StartIndex: input.StartIndex,
		EndIndex:   input.EndIndex,
	})
	if err != nil {
		return nil, DeleteRangeResponse{}, err
	}

	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, []*docs.Request{req}); err != nil {
		return nil, DeleteRangeResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, DeleteRangeResponse{
		DocumentID: input.DocumentID,
		StartIndex: input.StartIndex,
		EndIndex:   input.EndIndex,
	}, nil
}
