package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// ReadDocumentRequest identifies the document to read.
type ReadDocumentRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
}

// ReadDocumentResponse contains the document's text content.
type ReadDocumentResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Title      string `json:"title" jsonschema:"document title"`
	Text       string `json:"text" jsonschema:"flattened plain text content, indexes are 1-based"`
	EndIndex   int64  `json:"end_index" jsonschema:"end index of the document body, useful for positioning later edits"`
}

type readDocumentSvc interface {
	GetDocument(ctx context.Context, docID string) (*docs.Document, error)
}

// NewReadDocument creates a new ReadDocument tool.
func NewReadDocument(svc readDocumentSvc) *ReadDocument {
	return &ReadDocument{svc: svc}
}

// ReadDocument fetches a document and flattens its body into plain text.
type ReadDocument struct {
	svc readDocumentSvc
}

// ReadDocument handles read_document tool calls.
func (t *ReadDocument) ReadDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReadDocumentRequest,
) (*mcp.CallToolResult, ReadDocumentResponse, error) {
	if input.DocumentID == "" {
		return nil, ReadDocumentResponse{}, errors.New("document_id is required")
	}

	doc, err := t.svc.GetDocument(ctx, input.DocumentID)
	if err != nil {
		return nil, ReadDocumentResponse{}, fmt.Errorf("svc.GetDocument failed: %w", err)
	}

	endIndex := int64(1)
	if doc.Body != nil && len(doc.Body.Content) > 0 {
		endIndex = doc.Body.Content[len(doc.Body.Content)-1].EndIndex
	}

	return nil, ReadDocumentResponse{
		DocumentID: input.DocumentID,
		Title:      doc.Title,
		Text:       docedit.FlattenText(doc),
		EndIndex:   endIndex,
	}, nil
}
