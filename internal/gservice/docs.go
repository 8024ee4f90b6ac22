// Package gservice wraps the Google Docs and Drive APIs behind the shared
// OAuth token.
package gservice

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"

	"github.com/hal9000y/gdocs-mcp/internal/auth"
)

// NewDocs creates a Docs API wrapper bound to the shared OAuth token.
func NewDocs(cfg *oauth2.Config, tok *auth.Token) *Docs {
	return &Docs{
		cfg: cfg,
		tok: tok,
	}
}

type Docs struct {
	cfg *oauth2.Config
	tok *auth.Token
}

func (d *Docs) GetDocument(ctx context.Context, docID string) (*docs.Document, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	doc, err := svc.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("document %s: documents.Get failed: %w", docID, err)
	}

	return doc, nil
}

func (d *Docs) CreateDocument(ctx context.Context, title string) (*docs.Document, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	doc, err := svc.Documents.Create(&docs.Document{Title: title}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("documents.Create failed: %w", err)
	}

	return doc, nil
}

// BatchUpdate sends all requests in a single atomic batchUpdate call. The
// API applies them all or none, so no retry or partial-failure handling
// happens here; remote errors come back unchanged apart from the document ID
// attached for context.
func (d *Docs) BatchUpdate(ctx context.Context, docID string, reqs []*docs.Request) (*docs.BatchUpdateDocumentResponse, error) {
	svc, err := d.newSvc(ctx)
	if err != nil {
		return nil, fmt.Errorf("newSvc failed: %w", err)
	}

	resp, err := svc.Documents.BatchUpdate(docID, &docs.BatchUpdateDocumentRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("document %s: documents.BatchUpdate failed: %w", docID, err)
	}

	return resp, nil
}

func (d *Docs) newSvc(ctx context.Context) (*docs.Service, error) {
	t, err := d.tok.OAuthToken()
	if err != nil {
		return nil, fmt.Errorf("tok.OAuthToken failed: %w", err)
	}

	clt := d.cfg.Client(ctx, t)

	svc, err := docs.NewService(ctx, option.WithHTTPClient(clt))
	if err != nil {
		return nil, fmt.Errorf("docs.NewService failed: %w", err)
	}

	return svc, nil
}
