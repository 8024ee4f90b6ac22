package docedit

import (
	"fmt"
	"strings"

	"google.golang.org/api/docs/v1"
)

// Range is a half-open [StartIndex, EndIndex) interval over the document's
// character index space. Indexes are 1-based; index 0 is reserved by the
// Docs API.
type Range struct {
	StartIndex int64
	EndIndex   int64
}

// Validate checks the 1 <= start < end invariant.
func (r Range) Validate() error {
	if r.StartIndex < 1 || r.StartIndex >= r.EndIndex {
		return &InvalidRangeError{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
	}
	return nil
}

func (r Range) api() *docs.Range {
	return &docs.Range{StartIndex: r.StartIndex, EndIndex: r.EndIndex}
}

// TextStyle is a sparse text styling intent. A nil field leaves the
// attribute unchanged; a non-nil field is applied even when it holds the
// zero value, so Bold pointing at false explicitly clears bold.
type TextStyle struct {
	Bold            *bool
	Italic          *bool
	Underline       *bool
	Strikethrough   *bool
	FontSize        *float64 // points, must be > 0
	FontFamily      *string
	ForegroundColor *string // hex literal
	BackgroundColor *string // hex literal
	LinkURL         *string
}

// TextStyleRequest builds the single updateTextStyle request applying style
// to rng. The field mask names exactly the attributes present in the intent,
// in declaration order, so the payload and mask stay in lockstep. An empty
// intent yields an empty request list.
func TextStyleRequest(style TextStyle, rng Range) ([]*docs.Request, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	ts := &docs.TextStyle{}
	var fields []string

	// Zero-valued booleans must still be serialized: clearing bold is not
	// the same as leaving it untouched, hence ForceSendFields.
	if style.Bold != nil {
		ts.Bold = *style.Bold
		ts.ForceSendFields = append(ts.ForceSendFields, "Bold")
		fields = append(fields, "bold")
	}
	if style.Italic != nil {
		ts.Italic = *style.Italic
		ts.ForceSendFields = append(ts.ForceSendFields, "Italic")
		fields = append(fields, "italic")
	}
	if style.Underline != nil {
		ts.Underline = *style.Underline
		ts.ForceSendFields = append(ts.ForceSendFields, "Underline")
		fields = append(fields, "underline")
	}
	if style.Strikethrough != nil {
		ts.Strikethrough = *style.Strikethrough
		ts.ForceSendFields = append(ts.ForceSendFields, "Strikethrough")
		fields = append(fields, "strikethrough")
	}

	if style.FontSize != nil {
		if *style.FontSize <= 0 {
			return nil, fmt.Errorf("fontSize must be positive, got %v", *style.FontSize)
		}
		ts.FontSize = &docs.Dimension{Magnitude: *style.FontSize, Unit: "PT"}
		fields = append(fields, "fontSize")
	}
	if style.FontFamily != nil {
		ts.WeightedFontFamily = &docs.WeightedFontFamily{FontFamily: *style.FontFamily}
		fields = append(fields, "weightedFontFamily")
	}
	if style.ForegroundColor != nil {
		rgb, ok := HexToRGB(*style.ForegroundColor)
		if !ok {
			return nil, &InvalidColorError{Attribute: "foregroundColor", Value: *style.ForegroundColor}
		}
		ts.ForegroundColor = &docs.OptionalColor{Color: &docs.Color{RgbColor: rgb}}
		fields = append(fields, "foregroundColor")
	}
	if style.BackgroundColor != nil {
		rgb, ok := HexToRGB(*style.BackgroundColor)
		if !ok {
			return nil, &InvalidColorError{Attribute: "backgroundColor", Value: *style.BackgroundColor}
		}
		ts.BackgroundColor = &docs.OptionalColor{Color: &docs.Color{RgbColor: rgb}}
		fields = append(fields, "backgroundColor")
	}
	if style.LinkURL != nil {
		ts.Link = &docs.Link{Url: *style.LinkURL}
		fields = append(fields, "link")
	}

	if len(fields) == 0 {
		return nil, nil
	}

	return []*docs.Request{{
		UpdateTextStyle: &docs.UpdateTextStyleRequest{
			Range:     rng.api(),
			TextStyle: ts,
			Fields:    strings.Join(fields, ","),
		},
	}}, nil
}

// Alignment and named style values accepted by the Docs API.
var (
	validAlignments  = []string{"START", "CENTER", "END", "JUSTIFIED"}
	validNamedStyles = []string{
		"NORMAL_TEXT", "TITLE", "SUBTITLE",
		"HEADING_1", "HEADING_2", "HEADING_3", "HEADING_4", "HEADING_5", "HEADING_6",
	}
)

// ParagraphStyle is a sparse paragraph styling intent with the same nil
// semantics as TextStyle.
type ParagraphStyle struct {
	NamedStyleType *string
	Alignment      *string
}

// ParagraphStyleRequest builds the single updateParagraphStyle request
// applying style to rng. Enum values are validated before any request is
// produced; an empty intent yields an empty request list.
func ParagraphStyleRequest(style ParagraphStyle, rng Range) ([]*docs.Request, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	ps := &docs.ParagraphStyle{}
	var fields []string

	if style.NamedStyleType != nil {
		if !containsString(validNamedStyles, *style.NamedStyleType) {
			return nil, fmt.Errorf("invalid namedStyleType %q: must be one of %s",
				*style.NamedStyleType, strings.Join(validNamedStyles, ", "))
		}
		ps.NamedStyleType = *style.NamedStyleType
		fields = append(fields, "namedStyleType")
	}
	if style.Alignment != nil {
		if !containsString(validAlignments, *style.Alignment) {
			return nil, fmt.Errorf("invalid alignment %q: must be one of %s",
				*style.Alignment, strings.Join(validAlignments, ", "))
		}
		ps.Alignment = *style.Alignment
		fields = append(fields, "alignment")
	}

	if len(fields) == 0 {
		return nil, nil
	}

	return []*docs.Request{{
		UpdateParagraphStyle: &docs.UpdateParagraphStyleRequest{
			Range:          rng.api(),
			ParagraphStyle: ps,
			Fields:         strings.Join(fields, ","),
		},
	}}, nil
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
