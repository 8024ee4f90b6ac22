package tool

import (
	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

// TextStyleArgs is the sparse styling intent shared by the text formatting
// tools. Omitted attributes are left untouched; explicitly provided values
// are applied even when false or zero, so "bold": false clears bold.
type TextStyleArgs struct {
	Bold            *bool    `json:"bold,omitempty" jsonschema:"set or clear bold"`
	Italic          *bool    `json:"italic,omitempty" jsonschema:"set or clear italic"`
	Underline       *bool    `json:"underline,omitempty" jsonschema:"set or clear underline"`
	Strikethrough   *bool    `json:"strikethrough,omitempty" jsonschema:"set or clear strikethrough"`
	FontSize        *float64 `json:"font_size,omitempty" jsonschema:"font size in points, must be positive"`
	FontFamily      *string  `json:"font_family,omitempty" jsonschema:"font family name, e.g. Arial"`
	ForegroundColor *string  `json:"foreground_color,omitempty" jsonschema:"text color as hex, e.g. #FF0000 or F00"`
	BackgroundColor *string  `json:"background_color,omitempty" jsonschema:"highlight color as hex"`
	LinkURL         *string  `json:"link_url,omitempty" jsonschema:"hyperlink target URL"`
}

// isEmpty reports whether no attribute was provided at all. Tools that read
// the document before styling check this first, so a useless intent never
// costs a remote call.
func (a TextStyleArgs) isEmpty() bool {
	return a.Bold == nil && a.Italic == nil && a.Underline == nil && a.Strikethrough == nil &&
		a.FontSize == nil && a.FontFamily == nil &&
		a.ForegroundColor == nil && a.BackgroundColor == nil && a.LinkURL == nil
}

func (a TextStyleArgs) intent() docedit.TextStyle {
	return docedit.TextStyle{
		Bold:            a.Bold,
		Italic:          a.Italic,
		Underline:       a.Underline,
		Strikethrough:   a.Strikethrough,
		FontSize:        a.FontSize,
		FontFamily:      a.FontFamily,
		ForegroundColor: a.ForegroundColor,
		BackgroundColor: a.BackgroundColor,
		LinkURL:         a.LinkURL,
	}
}

// ParagraphStyleArgs is the sparse paragraph styling intent with the same
// omitted-attribute semantics as TextStyleArgs.
type ParagraphStyleArgs struct {
	NamedStyleType *string `json:"named_style_type,omitempty" jsonschema:"one of NORMAL_TEXT, TITLE, SUBTITLE, HEADING_1 .. HEADING_6"`
	Alignment      *string `json:"alignment,omitempty" jsonschema:"one of START, CENTER, END, JUSTIFIED"`
}

func (a ParagraphStyleArgs) intent() docedit.ParagraphStyle {
	return docedit.ParagraphStyle{
		NamedStyleType: a.NamedStyleType,
		Alignment:      a.Alignment,
	}
}
