package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/tool"
)

func TestAppendText(t *testing.T) {
	var recorded [][]*docs.Request

	docsSvc := newBatchRecorder(&recorded)
	docsSvc.GetDocumentFunc = func(_ context.Context, docID string) (*docs.Document, error) {
		// Body ends at index 20; the implicit trailing newline means the
		// last valid insertion point is 19.
		return docWithText("existing content..\n"), nil
	}

	session := newClientSession(t, docsSvc, &driveSvcMock{})

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "append_text",
		Arguments: tool.AppendTextRequest{
			DocumentID: "doc-1",
			Text:       "more text",
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response tool.AppendTextResponse
	require.NoError(t, json.Unmarshal(
		[]byte(result.Content[0].(*mcp.TextContent).Text),
		&response,
	))
	assert.Equal(t, int64(19), response.Index)

	require.Len(t, recorded, 1)
	insert := recorded[0][0].InsertText
	require.NotNil(t, insert)
	assert.Equal(t, "more text", insert.Text)
	assert.Equal(t, int64(19), insert.Location.Index)
}

func TestInsertTextValidation(t *testing.T) {
	var recorded [][]*docs.Request
	session := newClientSession(t, newBatchRecorder(&recorded), &driveSvcMock{})
	ctx := context.Background()

	cases := []struct {
		name        string
		req         tool.InsertTextRequest
		expectedErr string
	}{
		{
			name:        "missing document ID",
			req:         tool.InsertTextRequest{Text: "x", Index: 1},
			expectedErr: "document_id is required",
		},
		{
			name:        "missing text",
			req:         tool.InsertTextRequest{DocumentID: "doc-1", Index: 1},
			expectedErr: "text is required",
		},
		{
			name:        "index below document start",
			req:         tool.InsertTextRequest{DocumentID: "doc-1", Text: "x", Index: 0},
			expectedErr: "index must be >= 1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := session.CallTool(ctx, &mcp.CallToolParams{
				Name:      "insert_text",
				Arguments: tc.req,
			})
			require.NoError(t, err)
			require.True(t, result.IsError)
			assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, tc.expectedErr)
			assert.Empty(t, recorded)
		})
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "insert_text",
		Arguments: tool.InsertTextRequest{
			DocumentID: "doc-1",
			Text:       "hello",
			Index:      7,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Len(t, recorded, 1)
	assert.Equal(t, int64(7), recorded[0][0].InsertText.Location.Index)
}
