package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// AppendTextRequest describes text to add at the end of a document.
type AppendTextRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Text       string `json:"text" jsonschema:"text to append"`
}

// AppendTextResponse reports where the text was inserted.
type AppendTextResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Index      int64  `json:"index" jsonschema:"index the text was inserted at"`
}

type appendTextSvc interface {
	GetDocument(ctx context.Context, docID string) (*docs.Document, error)
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewAppendText creates a new AppendText tool.
func NewAppendText(svc appendTextSvc) *AppendText {
	return &AppendText{svc: svc}
}

// AppendText reads the document to find the trailing insertion point, then
// inserts in a second call.
type AppendText struct {
	svc appendTextSvc
}

// AppendText handles append_text tool calls.
func (t *AppendText) AppendText(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AppendTextRequest,
) (*mcp.CallToolResult, AppendTextResponse, error) {
	if input.DocumentID == "" {
		return nil, AppendTextResponse{}, errors.New("document_id is required")
	}
	if input.Text == "" {
		return nil, AppendTextResponse{}, errors.New("text is required")
	}

	doc, err := t.svc.GetDocument(ctx, input.DocumentID)
	if err != nil {
		return nil, AppendTextResponse{}, fmt.Errorf("svc.GetDocument failed: %w", err)
	}

	index := docedit.AppendIndex(doc)

	reqs := []*docs.Request{docedit.InsertTextRequest(input.Text, index)}
	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, AppendTextResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, AppendTextResponse{
		DocumentID: input.DocumentID,
		Index:      index,
	}, nil
}
