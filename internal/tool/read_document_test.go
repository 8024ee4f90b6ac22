package tool_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/tool"
)

func TestReadDocument(t *testing.T) {
	docsSvc := &docsSvcMock{
		GetDocumentFunc: func(_ context.Context, docID string) (*docs.Document, error) {
			if docID == "missing" {
				return nil, fmt.Errorf("document %s: documents.Get failed: not found", docID)
			}
			doc := docWithText("hello world\n")
			doc.Title = "Greeting"
			return doc, nil
		},
	}

	session := newClientSession(t, docsSvc, &driveSvcMock{})
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "read_document",
		Arguments: tool.ReadDocumentRequest{DocumentID: "doc-1"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response tool.ReadDocumentResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))
	assert.Equal(t, tool.ReadDocumentResponse{
		DocumentID: "doc-1",
		Title:      "Greeting",
		Text:       "hello world\n",
		EndIndex:   13,
	}, response)

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "read_document",
		Arguments: tool.ReadDocumentRequest{DocumentID: "missing"},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "document missing")

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "read_document",
		Arguments: tool.ReadDocumentRequest{},
	})
	require.NoError(t, err)
	require.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "document_id is required")
}
