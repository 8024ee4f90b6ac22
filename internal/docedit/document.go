package docedit

import (
	"strings"

	"google.golang.org/api/docs/v1"
)

// FlattenText concatenates all paragraph text runs in the document body in
// document order. Offsets into the result line up with the body's index
// space once shifted to the API's 1-based convention.
func FlattenText(doc *docs.Document) string {
	if doc == nil || doc.Body == nil {
		return ""
	}

	var sb strings.Builder
	for _, elem := range doc.Body.Content {
		if elem.Paragraph == nil {
			continue
		}
		for _, pe := range elem.Paragraph.Elements {
			if pe.TextRun != nil {
				sb.WriteString(pe.TextRun.Content)
			}
		}
	}

	return sb.String()
}

// AppendIndex returns the insertion point for appending to the body: one
// before the last structural element's end index. The Docs API keeps an
// implicit newline at the end of every segment and rejects inserts after it;
// the offset is part of the API contract.
func AppendIndex(doc *docs.Document) int64 {
	if doc == nil || doc.Body == nil || len(doc.Body.Content) == 0 {
		return 1
	}

	last := doc.Body.Content[len(doc.Body.Content)-1]
	if last.EndIndex <= 1 {
		return 1
	}

	return last.EndIndex - 1
}

// InsertTextRequest builds an insertText request at a 1-based index.
func InsertTextRequest(text string, index int64) *docs.Request {
	return &docs.Request{
		InsertText: &docs.InsertTextRequest{
			Location: &docs.Location{Index: index},
			Text:     text,
		},
	}
}

// DeleteRangeRequest builds a deleteContentRange request for rng.
func DeleteRangeRequest(rng Range) (*docs.Request, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	return &docs.Request{
		DeleteContentRange: &docs.DeleteContentRangeRequest{
			Range: rng.api(),
		},
	}, nil
}

// InsertTableRequest builds an insertTable request. A zero index places the
// table at the end of the body.
func InsertTableRequest(rows, columns, index int64) *docs.Request {
	req := &docs.InsertTableRequest{
		Rows:    rows,
		Columns: columns,
	}
	if index > 0 {
		req.Location = &docs.Location{Index: index}
	} else {
		req.EndOfSegmentLocation = &docs.EndOfSegmentLocation{}
	}

	return &docs.Request{InsertTable: req}
}

// InsertPageBreakRequest builds an insertPageBreak request at a 1-based index.
func InsertPageBreakRequest(index int64) *docs.Request {
	return &docs.Request{
		InsertPageBreak: &docs.InsertPageBreakRequest{
			Location: &docs.Location{Index: index},
		},
	}
}
