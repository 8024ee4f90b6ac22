// Package tool implements the MCP tools exposed by the server.
package tool

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type docsSvc interface {
	readDocumentSvc
	createDocumentSvc
	insertTextSvc
	appendTextSvc
	deleteRangeSvc
	formatTextSvc
	formatMatchingTextSvc
	formatParagraphSvc
	insertTableSvc
	insertPageBreakSvc
}

type driveSvc interface {
	listFilesSvc
	fileOpsSvc
}

// NewServer creates an MCP server with Google Docs and Drive tools.
func NewServer(docs docsSvc, drive driveSvc) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "gdocs-helper", Version: "v1.0.0"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_document",
		Description: "Read a Google Doc: title, plain text content and body end index",
	}, NewReadDocument(docs).ReadDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_document",
		Description: "Create a new Google Doc with a title and optional initial text",
	}, NewCreateDocument(docs).CreateDocument)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_text",
		Description: "Insert text into a Google Doc at a specific index (1-based)",
	}, NewInsertText(docs).InsertText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "append_text",
		Description: "Append text to the end of a Google Doc",
	}, NewAppendText(docs).AppendText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_range",
		Description: "Delete content in the half-open index range [start_index, end_index)",
	}, NewDeleteRange(docs).DeleteRange)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_text",
		Description: "Apply text formatting (bold, italic, colors, font, link) to an index range",
	}, NewFormatText(docs).FormatText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_matching_text",
		Description: "Find the Nth occurrence of a string in a Google Doc and apply text formatting to it",
	}, NewFormatMatchingText(docs).FormatMatchingText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "format_paragraph",
		Description: "Apply paragraph formatting (named style, alignment) to an index range",
	}, NewFormatParagraph(docs).FormatParagraph)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_table",
		Description: "Insert a table into a Google Doc at an index or at the end of the body",
	}, NewInsertTable(docs).InsertTable)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "insert_page_break",
		Description: "Insert a page break into a Google Doc at a specific index",
	}, NewInsertPageBreak(docs).InsertPageBreak)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_files",
		Description: "List Google Drive files, optionally scoped to a folder or filtered by name",
	}, NewListFiles(drive).ListFiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_folder",
		Description: "Create a Google Drive folder, optionally inside a parent folder",
	}, NewFileOps(drive).CreateFolder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "move_file",
		Description: "Move a Google Drive file into a different folder",
	}, NewFileOps(drive).MoveFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy_file",
		Description: "Copy a Google Drive file, optionally with a new name or parent folder",
	}, NewFileOps(drive).CopyFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_file",
		Description: "Rename a Google Drive file",
	}, NewFileOps(drive).RenameFile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_file",
		Description: "Delete a Google Drive file or folder",
	}, NewFileOps(drive).DeleteFile)

	return server
}
