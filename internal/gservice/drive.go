package gservice

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/hal9000y/gdocs-mcp/internal/auth"
)

const folderMimeType = "application/vnd.google-apps.folder"

// NewDrive creates a Drive API wrapper bound to the shared OAuth token.
func NewDrive(cfg *oauth2.Config, tok *auth.Token) *Drive {
	return &Drive{
		cfg: cfg,
		tok: tok,
	}
}

type Drive struct {
	cfg *oauth2.Config
	tok *auth.Token
}

func (d *Drive) ListFiles(ctx context.Context, q, pageToken string, pageSize int64) (*drive.FileList, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	call := svc.Files.List().
		Context(ctx).
		PageSize(pageSize).
		Fields("nextPageToken, files(id, name, mimeType, modifiedTime, parents)")
	if q != "" {
		call = call.Q(q)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	result, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("files.List failed: %w", err)
	}

	return result, nil
}

func (d *Drive) CreateFolder(ctx context.Context, name, parentID string) (*drive.File, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	folder := &drive.File{
		Name:     name,
		MimeType: folderMimeType,
	}
	if parentID != "" {
		folder.Parents = []string{parentID}
	}

	created, err := svc.Files.Create(folder).Context(ctx).Fields("id, name, parents").Do()
	if err != nil {
		return nil, fmt.Errorf("files.Create failed: %w", err)
	}

	return created, nil
}

func (d *Drive) CopyFile(ctx context.Context, fileID, name, parentID string) (*drive.File, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	copied := &drive.File{}
	if name != "" {
		copied.Name = name
	}
	if parentID != "" {
		copied.Parents = []string{parentID}
	}

	result, err := svc.Files.Copy(fileID, copied).Context(ctx).Fields("id, name, parents").Do()
	if err != nil {
		return nil, fmt.Errorf("file %s: files.Copy failed: %w", fileID, err)
	}

	return result, nil
}

// MoveFile reparents a file: the target folder is added and all current
// parents are removed in the same update call.
func (d *Drive) MoveFile(ctx context.Context, fileID, folderID string) (*drive.File, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	current, err := svc.Files.Get(fileID).Context(ctx).Fields("parents").Do()
	if err != nil {
		return nil, fmt.Errorf("file %s: files.Get failed: %w", fileID, err)
	}

	moved, err := svc.Files.Update(fileID, nil).
		Context(ctx).
		AddParents(folderID).
		RemoveParents(strings.Join(current.Parents, ",")).
		Fields("id, name, parents").
		Do()
	if err != nil {
		return nil, fmt.Errorf("file %s: files.Update failed: %w", fileID, err)
	}

	return moved, nil
}

func (d *Drive) RenameFile(ctx context.Context, fileID, name string) (*drive.File, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	renamed, err := svc.Files.Update(fileID, &drive.File{Name: name}).
		Context(ctx).
		Fields("id, name, parents").
		Do()
	if err != nil {
		return nil, fmt.Errorf("file %s: files.Update failed: %w", fileID, err)
	}

	return renamed, nil
}

func (d *Drive) DeleteFile(ctx context.Context, fileID string) error {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return fmt.Errorf("newSvc failed: %w", err)
	}

	if err := svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("file %s: files.Delete failed: %w", fileID, err)
	}

	return nil
}

func (d *Drive) newSvc(ctx context.Context) (*drive.Service, error) {
	t, err := d.tok.OAuthToken()
	if err != nil {
		return nil, fmt.Errorf("tok.OAuthToken failed: %w", err)
	}

	clt := d.cfg.Client(ctx, t)

	svc, err := drive.NewService(ctx, option.WithHTTPClient(clt))
	if err != nil {
		return nil, fmt.Errorf("drive.NewService failed: %w", err)
	}

	return svc, nil
}
