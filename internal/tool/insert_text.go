package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// InsertTextRequest describes an insertion at an explicit index.
type InsertTextRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Text       string `json:"text" jsonschema:"text to insert"`
	Index      int64  `json:"index" jsonschema:"1-based index to insert at"`
}

// InsertTextResponse reports the completed insertion.
type InsertTextResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Index      int64  `json:"index" jsonschema:"index the text was inserted at"`
	Length     int64  `json:"length" jsonschema:"number of characters inserted"`
}

type insertTextSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewInsertText creates a new InsertText tool.
func NewInsertText(svc insertTextSvc) *InsertText {
	return &InsertText{svc: svc}
}

// InsertText inserts text at a caller-provided index.
type InsertText struct {
	svc insertTextSvc
}

// InsertText handles insert_text tool calls.
func (t *InsertText) InsertText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertTextRequest,
) (*mcp.CallToolResult, InsertTextResponse, error) {
	if input.DocumentID == "" {
		return nil, InsertTextResponse{}, errors.New("document_id is required")
	}
	if input.Text == "" {
		return nil, InsertTextResponse{}, errors.New("text is required")
	}
	if input.Index < 1 {
		return nil, InsertTextResponse{}, fmt.Errorf("index must be >= 1, got %d", input.Index)
	}

	reqs := []*docs.Request{docedit.InsertTextRequest(input.Text, input.Index)}
	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, InsertTextResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, InsertTextResponse{
		DocumentID: input.DocumentID,
		Index:      input.Index,
		// Byte count; for non-ASCII text this drifts from the remote
		// service's UTF-16 index units.
		Length: int64(len(input.Text)),
	}, nil
}
