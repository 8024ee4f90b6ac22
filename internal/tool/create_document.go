package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// CreateDocumentRequest describes the document to create.
type CreateDocumentRequest struct {
	Title string `json:"title" jsonschema:"title of the new document"`
	Text  string `json:"text,omitempty" jsonschema:"optional initial text content"`
}

// CreateDocumentResponse identifies the created document.
type CreateDocumentResponse struct {
	DocumentID string `json:"document_id" jsonschema:"ID of the created document"`
	Title      string `json:"title" jsonschema:"document title"`
}

type createDocumentSvc interface {
	CreateDocument(ctx context.Context, title string) (*docs.Document, error)
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewCreateDocument creates a new CreateDocument tool.
func NewCreateDocument(svc createDocumentSvc) *CreateDocument {
	return &CreateDocument{svc: svc}
}

// CreateDocument creates a document and optionally seeds its content.
type CreateDocument struct {
	svc createDocumentSvc
}

// CreateDocument handles create_document tool calls.
func (t *CreateDocument) CreateDocument(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateDocumentRequest,
) (*mcp.CallToolResult, CreateDocumentResponse, error) {
	if input.Title == "" {
		return nil, CreateDocumentResponse{}, errors.New("title is required")
	}

	doc, err := t.svc.CreateDocument(ctx, input.Title)
	if err != nil {
		return nil, CreateDocumentResponse{}, fmt.Errorf("svc.CreateDocument failed: %w", err)
	}

	if input.Text != "" {
		reqs := []*docs.Request{docedit.InsertTextRequest(input.Text, 1)}
		if _, err := t.svc.BatchUpdate(ctx, doc.DocumentId, reqs); err != nil {
			return nil, CreateDocumentResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
		}
	}

	return nil, CreateDocumentResponse{
		DocumentID: doc.DocumentId,
		Title:      doc.Title,
	}, nil
}
