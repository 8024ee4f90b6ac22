package tool

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/drive/v3"
)

// CreateFolderRequest describes the folder to create.
type CreateFolderRequest struct {
	Name     string `json:"name" jsonschema:"folder name"`
	ParentID string `json:"parent_id,omitempty" jsonschema:"optional parent folder ID"`
}

// MoveFileRequest describes the move operation.
type MoveFileRequest struct {
	FileID   string `json:"file_id" jsonschema:"file to move"`
	FolderID string `json:"folder_id" jsonschema:"destination folder ID"`
}

// CopyFileRequest describes the copy operation.
type CopyFileRequest struct {
	FileID   string `json:"file_id" jsonschema:"file to copy"`
	Name     string `json:"name,omitempty" jsonschema:"optional name for the copy"`
	ParentID string `json:"parent_id,omitempty" jsonschema:"optional destination folder ID"`
}

// RenameFileRequest describes the rename operation.
type RenameFileRequest struct {
	FileID string `json:"file_id" jsonschema:"file to rename"`
	Name   string `json:"name" jsonschema:"new name"`
}

// DeleteFileRequest describes the delete operation.
type DeleteFileRequest struct {
	FileID string `json:"file_id" jsonschema:"file or folder to delete"`
}

// FileOpResponse reports the file state after a file operation.
type FileOpResponse struct {
	ID   string `json:"id" jsonschema:"file ID"`
	Name string `json:"name,omitempty" jsonschema:"file name"`
}

type fileOpsSvc interface {
	CreateFolder(ctx context.Context, name, parentID string) (*drive.File, error)
	CopyFile(ctx context.Context, fileID, name, parentID string) (*drive.File, error)
	MoveFile(ctx context.Context, fileID, folderID string) (*drive.File, error)
	RenameFile(ctx context.Context, fileID, name string) (*drive.File, error)
	DeleteFile(ctx context.Context, fileID string) error
}

// NewFileOps creates the Drive file operation tools.
func NewFileOps(svc fileOpsSvc) *FileOps {
	return &FileOps{svc: svc}
}

// FileOps holds the single-call Drive file manipulation tools. Each handler
// is a plain passthrough: validate arguments, issue one remote call, report
// the result.
type FileOps struct {
	svc fileOpsSvc
}

// CreateFolder handles create_folder tool calls.
func (t *FileOps) CreateFolder(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CreateFolderRequest,
) (*mcp.CallToolResult, FileOpResponse, error) {
	if input.Name == "" {
		return nil, FileOpResponse{}, errors.New("name is required")
	}

	folder, err := t.svc.CreateFolder(ctx, input.Name, input.ParentID)
	if err != nil {
		return nil, FileOpResponse{}, fmt.Errorf("svc.CreateFolder failed: %w", err)
	}

	return nil, FileOpResponse{ID: folder.Id, Name: folder.Name}, nil
}

// MoveFile handles move_file tool calls.
func (t *FileOps) MoveFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MoveFileRequest,
) (*mcp.CallToolResult, FileOpResponse, error) {
	if input.FileID == "" {
		return nil, FileOpResponse{}, errors.New("file_id is required")
	}
	if input.FolderID == "" {
		return nil, FileOpResponse{}, errors.New("folder_id is required")
	}

	moved, err := t.svc.MoveFile(ctx, input.FileID, input.FolderID)
	if err != nil {
		return nil, FileOpResponse{}, fmt.Errorf("svc.MoveFile failed: %w", err)
	}

	return nil, FileOpResponse{ID: moved.Id, Name: moved.Name}, nil
}

// CopyFile handles copy_file tool calls.
func (t *FileOps) CopyFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CopyFileRequest,
) (*mcp.CallToolResult, FileOpResponse, error) {
	if input.FileID == "" {
		return nil, FileOpResponse{}, errors.New("file_id is required")
	}

	copied, err := t.svc.CopyFile(ctx, input.FileID, input.Name, input.ParentID)
	if err != nil {
		return nil, FileOpResponse{}, fmt.Errorf("svc.CopyFile failed: %w", err)
	}

	return nil, FileOpResponse{ID: copied.Id, Name: copied.Name}, nil
}

// RenameFile handles rename_file tool calls.
func (t *FileOps) RenameFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RenameFileRequest,
) (*mcp.CallToolResult, FileOpResponse, error) {
	if input.FileID == "" {
		return nil, FileOpResponse{}, errors.New("file_id is required")
	}
	if input.Name == "" {
		return nil, FileOpResponse{}, errors.New("name is required")
	}

	renamed, err := t.svc.RenameFile(ctx, input.FileID, input.Name)
	if err != nil {
		return nil, FileOpResponse{}, fmt.Errorf("svc.RenameFile failed: %w", err)
	}

	return nil, FileOpResponse{ID: renamed.Id, Name: renamed.Name}, nil
}

// DeleteFile handles delete_file tool calls.
func (t *FileOps) DeleteFile(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DeleteFileRequest,
) (*mcp.CallToolResult, FileOpResponse, error) {
	if input.FileID == "" {
		return nil, FileOpResponse{}, errors.New("file_id is required")
	}

	if err := t.svc.DeleteFile(ctx, input.FileID); err != nil {
		return nil, FileOpResponse{}, fmt.Errorf("svc.DeleteFile failed: %w", err)
	}

	return nil, FileOpResponse{ID: input.FileID}, nil
}
