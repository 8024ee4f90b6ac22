package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/drive/v3"
)

// ListFilesRequest describes which Drive files to list.
type ListFilesRequest struct {
	FolderID  string `json:"folder_id,omitempty" jsonschema:"only list files inside this folder"`
	NameQuery string `json:"name_query,omitempty" jsonschema:"only list files whose name contains this string"`
	PageSize  int64  `json:"page_size,omitempty" jsonschema:"max results per page (default 20, max 100)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token for pagination"`
}

// FileSummary contains essential Drive file metadata.
type FileSummary struct {
	ID           string `json:"id" jsonschema:"file ID"`
	Name         string `json:"name" jsonschema:"file name"`
	MimeType     string `json:"mime_type" jsonschema:"MIME type"`
	ModifiedTime string `json:"modified_time,omitempty" jsonschema:"last modification time"`
}

// ListFilesResponse contains the listed files.
type ListFilesResponse struct {
	Files         []FileSummary `json:"files" jsonschema:"array of file summaries"`
	NextPageToken string        `json:"next_page_token,omitempty" jsonschema:"token for next page"`
}

type listFilesSvc interface {
	ListFiles(ctx context.Context, q, pageToken string, pageSize int64) (*drive.FileList, error)
}

// NewListFiles creates a new ListFiles tool.
func NewListFiles(svc listFilesSvc) *ListFiles {
	return &ListFiles{svc: svc}
}

// ListFiles lists Drive files.
type ListFiles struct {
	svc listFilesSvc
}

// ListFiles handles list_files tool calls.
func (t *ListFiles) ListFiles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListFilesRequest,
) (*mcp.CallToolResult, ListFilesResponse, error) {
	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	terms := []string{"trashed=false"}
	if input.FolderID != "" {
		terms = append(terms, fmt.Sprintf("'%s' in parents", escapeQueryValue(input.FolderID)))
	}
	if input.NameQuery != "" {
		terms = append(terms, fmt.Sprintf("name contains '%s'", escapeQueryValue(input.NameQuery)))
	}

	result, err := t.svc.ListFiles(ctx, strings.Join(terms, " and "), input.PageToken, pageSize)
	if err != nil {
		return nil, ListFilesResponse{}, fmt.Errorf("svc.ListFiles failed: %w", err)
	}

	files := make([]FileSummary, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, FileSummary{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			ModifiedTime: f.ModifiedTime,
		})
	}

	return nil, ListFilesResponse{
		Files:         files,
		NextPageToken: result.NextPageToken,
	}, nil
}

// escapeQueryValue escapes backslashes and single quotes for the Drive
// query grammar. Backslashes go first so an escaping backslash is never
// itself re-escaped.
func escapeQueryValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, "'", `\'`)
}
