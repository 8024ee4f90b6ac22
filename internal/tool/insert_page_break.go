package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// InsertPageBreakRequest describes where to insert the page break.
type InsertPageBreakRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Index      int64  `json:"index" jsonschema:"1-based index to insert at"`
}

// InsertPageBreakResponse reports the completed insertion.
type InsertPageBreakResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Index      int64  `json:"index" jsonschema:"index the page break was inserted at"`
}

type insertPageBreakSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewInsertPageBreak creates a new InsertPageBreak tool.
func NewInsertPageBreak(svc insertPageBreakSvc) *InsertPageBreak {
	return &InsertPageBreak{svc: svc}
}

// InsertPageBreak inserts a page break at a caller-provided index.
type InsertPageBreak struct {
	svc insertPageBreakSvc
}

// InsertPageBreak handles insert_page_break tool calls.
func (t *InsertPageBreak) InsertPageBreak(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertPageBreakRequest,
) (*mcp.CallToolResult, InsertPageBreakResponse, error) {
	if input.DocumentID == "" {
		return nil, InsertPageBreakResponse{}, errors.New("document_id is required")
	}
	if input.Index < 1 {
		return nil, InsertPageBreakResponse{}, fmt.Errorf("index must be >= 1, got %d", input.Index)
	}

	reqs := []*docs.Request{docedit.InsertPageBreakRequest(input.Index)}
	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, InsertPageBreakResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, InsertPageBreakResponse{
		DocumentID: input.DocumentID,
		Index:      input.Index,
	}, nil
}
