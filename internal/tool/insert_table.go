package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// InsertTableRequest describes the table to insert.
type InsertTableRequest struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Rows       int64  `json:"rows" jsonschema:"number of rows, must be >= 1"`
	Columns    int64  `json:"columns" jsonschema:"number of columns, must be >= 1"`
	Index      int64  `json:"index,omitempty" jsonschema:"1-based index to insert at; omit to insert at the end of the body"`
}

// InsertTableResponse reports the completed insertion.
type InsertTableResponse struct {
	DocumentID string `json:"document_id" jsonschema:"the document ID"`
	Rows       int64  `json:"rows" jsonschema:"number of rows inserted"`
	Columns    int64  `json:"columns" jsonschema:"number of columns inserted"`
}

type insertTableSvc interface {
	BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

// NewInsertTable creates a new InsertTable tool.
func NewInsertTable(svc insertTableSvc) *InsertTable {
	return &InsertTable{svc: svc}
}

// InsertTable inserts a table at an index or at the end of the body.
type InsertTable struct {
	svc insertTableSvc
}

// InsertTable handles insert_table tool calls.
func (t *InsertTable) InsertTable(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input InsertTableRequest,
) (*mcp.CallToolResult, InsertTableResponse, error) {
	if input.DocumentID == "" {
		return nil, InsertTableResponse{}, errors.New("document_id is required")
	}
	if input.Rows < 1 || input.Columns < 1 {
		return nil, InsertTableResponse{}, fmt.Errorf("rows and columns must be >= 1, got %dx%d", input.Rows, input.Columns)
	}
	if input.Index < 0 {
		return nil, InsertTableResponse{}, fmt.Errorf("index must be >= 1 when provided, got %d", input.Index)
	}

	reqs := []*docs.Request{docedit.InsertTableRequest(input.Rows, input.Columns, input.Index)}
	if _, err := t.svc.BatchUpdate(ctx, input.DocumentID, reqs); err != nil {
		return nil, InsertTableResponse{}, fmt.Errorf("svc.BatchUpdate failed: %w", err)
	}

	return nil, InsertTableResponse{
		DocumentID: input.DocumentID,
		Rows:       input.Rows,
		Columns:    input.Columns,
	}, nil
}
