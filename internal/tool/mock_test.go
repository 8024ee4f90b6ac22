package tool_test

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"

	"github.com/hal9000y/gdocs-mcp/internal/tool"
)

type docsSvcMock struct {
	GetDocumentFunc    func(ctx context.Context, docID string) (*docs.Document, error)
	CreateDocumentFunc func(ctx context.Context, title string) (*docs.Document, error)
	BatchUpdateFunc    func(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error)
}

func (m *docsSvcMock) GetDocument(ctx context.Context, docID string) (*docs.Document, error) {
	return m.GetDocumentFunc(ctx, docID)
}

func (m *docsSvcMock) CreateDocument(ctx context.Context, title string) (*docs.Document, error) {
	return m.CreateDocumentFunc(ctx, title)
}

func (m *docsSvcMock) BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error) {
	return m.BatchUpdateFunc(ctx, docID, reqs)
}

type driveSvcMock struct {
	ListFilesFunc    func(ctx context.Context, q, pageToken string, pageSize int64) (*drive.FileList, error)
	CreateFolderFunc func(ctx context.Context, name, parentID string) (*drive.File, error)
	CopyFileFunc     func(ctx context.Context, fileID, name, parentID string) (*drive.File, error)
	MoveFileFunc     func(ctx context.Context, fileID, folderID string) (*drive.File, error)
	RenameFileFunc   func(ctx context.Context, fileID, name string) (*drive.File, error)
	DeleteFileFunc   func(ctx context.Context, fileID string) error
}

func (m *driveSvcMock) ListFiles(ctx context.Context, q, pageToken string, pageSize int64) (*drive.FileList, error) {
	return m.ListFilesFunc(ctx, q, pageToken, pageSize)
}

func (m *driveSvcMock) CreateFolder(ctx context.Context, name, parentID string) (*drive.File, error) {
	return m.CreateFolderFunc(ctx, name, parentID)
}

func (m *driveSvcMock) CopyFile(ctx context.Context, fileID, name, parentID string) (*drive.File, error) {
	return m.CopyFileFunc(ctx, fileID, name, parentID)
}

func (m *driveSvcMock) MoveFile(ctx context.Context, fileID, folderID string) (*drive.File, error) {
	return m.MoveFileFunc(ctx, fileID, folderID)
}

func (m *driveSvcMock) RenameFile(ctx context.Context, fileID, name string) (*drive.File, error) {
	return m.RenameFileFunc(ctx, fileID, name)
}

func (m *driveSvcMock) DeleteFile(ctx context.Context, fileID string) error {
	return m.DeleteFileFunc(ctx, fileID)
}

// newClientSession wires the server with mocks and returns a connected
// in-memory MCP client session.
func newClientSession(t *testing.T, docsSvc *docsSvcMock, driveSvc *driveSvcMock) *mcp.ClientSession {
	t.Helper()

	server := tool.NewServer(docsSvc, driveSvc)
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client"}, nil)
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	ctx := context.Background()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}
