package docedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/docs/v1"

	"github.com/hal9000y/gdocs-mcp/internal/docedit"
)

func boolPtr(v bool) *bool          { return &v }
func float64Ptr(v float64) *float64 { return &v }
func strPtr(v string) *string       { return &v }

func TestTextStyleRequestSingleAttribute(t *testing.T) {
	reqs, err := docedit.TextStyleRequest(
		docedit.TextStyle{Bold: boolPtr(true)},
		docedit.Range{StartIndex: 5, EndIndex: 10},
	)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	update := reqs[0].UpdateTextStyle
	require.NotNil(t, update)
	assert.Equal(t, "bold", update.Fields)
	assert.Equal(t, int64(5), update.Range.StartIndex)
	assert.Equal(t, int64(10), update.Range.EndIndex)
	assert.True(t, update.TextStyle.Bold)
	assert.Contains(t, update.TextStyle.ForceSendFields, "Bold")
	assert.Nil(t, update.TextStyle.FontSize)
	assert.Nil(t, update.TextStyle.ForegroundColor)
}

func TestTextStyleRequestExplicitFalseSurvives(t *testing.T) {
	reqs, err := docedit.TextStyleRequest(
		docedit.TextStyle{Bold: boolPtr(false)},
		docedit.Range{StartIndex: 1, EndIndex: 2},
	)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	update := reqs[0].UpdateTextStyle
	assert.Equal(t, "bold", update.Fields)
	assert.False(t, update.TextStyle.Bold)
	// ForceSendFields is what keeps bold=false in the serialized payload.
	assert.Contains(t, update.TextStyle.ForceSendFields, "Bold")
}

func TestTextStyleRequestFieldMaskOrder(t *testing.T) {
	reqs, err := docedit.TextStyleRequest(
		docedit.TextStyle{
			LinkURL:         strPtr("https://example.com"),
			ForegroundColor: strPtr("#FF0000"),
			Bold:            boolPtr(true),
			FontSize:        float64Ptr(12),
			Italic:          boolPtr(false),
		},
		docedit.Range{StartIndex: 1, EndIndex: 20},
	)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	// Declaration order, not insertion order.
	update := reqs[0].UpdateTextStyle
	assert.Equal(t, "bold,italic,fontSize,foregroundColor,link", update.Fields)
	assert.Equal(t, &docs.Dimension{Magnitude: 12, Unit: "PT"}, update.TextStyle.FontSize)
	assert.Equal(t, &docs.RgbColor{Red: 1, Green: 0, Blue: 0}, update.TextStyle.ForegroundColor.Color.RgbColor)
	assert.Equal(t, "https://example.com", update.TextStyle.Link.Url)
}

func TestTextStyleRequestEmptyIntent(t *testing.T) {
	reqs, err := docedit.TextStyleRequest(
		docedit.TextStyle{},
		docedit.Range{StartIndex: 1, EndIndex: 5},
	)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestTextStyleRequestInvalidColor(t *testing.T) {
	cases := []struct {
		name      string
		style     docedit.TextStyle
		attribute string
		value     string
	}{
		{
			name:      "foreground",
			style:     docedit.TextStyle{ForegroundColor: strPtr("#ZZZZZZ")},
			attribute: "foregroundColor",
			value:     "#ZZZZZZ",
		},
		{
			name:      "background",
			style:     docedit.TextStyle{BackgroundColor: strPtr("#12")},
			attribute: "backgroundColor",
			value:     "#12",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := docedit.TextStyleRequest(tc.style, docedit.Range{StartIndex: 1, EndIndex: 5})

			var colorErr *docedit.InvalidColorError
			require.ErrorAs(t, err, &colorErr)
			assert.Equal(t, tc.attribute, colorErr.Attribute)
			assert.Equal(t, tc.value, colorErr.Value)
		})
	}
}

func TestTextStyleRequestInvalidFontSize(t *testing.T) {
	for _, size := range []float64{0, -4} {
		_, err := docedit.TextStyleRequest(
			docedit.TextStyle{FontSize: float64Ptr(size)},
			docedit.Range{StartIndex: 1, EndIndex: 5},
		)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fontSize")
	}
}

func TestTextStyleRequestInvalidRange(t *testing.T) {
	cases := []docedit.Range{
		{StartIndex: 0, EndIndex: 5},
		{StartIndex: 5, EndIndex: 5},
		{StartIndex: 7, EndIndex: 3},
	}

	for _, rng := range cases {
		_, err := docedit.TextStyleRequest(docedit.TextStyle{Bold: boolPtr(true)}, rng)

		var rangeErr *docedit.InvalidRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, rng.StartIndex, rangeErr.StartIndex)
		assert.Equal(t, rng.EndIndex, rangeErr.EndIndex)
	}
}

func TestParagraphStyleRequest(t *testing.T) {
	reqs, err := docedit.ParagraphStyleRequest(
		docedit.ParagraphStyle{
			NamedStyleType: strPtr("HEADING_1"),
			Alignment:      strPtr("CENTER"),
		},
		docedit.Range{StartIndex: 1, EndIndex: 30},
	)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	update := reqs[0].UpdateParagraphStyle
	require.NotNil(t, update)
	assert.Equal(t, "namedStyleType,alignment", update.Fields)
	assert.Equal(t, "HEADING_1", update.ParagraphStyle.NamedStyleType)
	assert.Equal(t, "CENTER", update.ParagraphStyle.Alignment)
}

func TestParagraphStyleRequestEmptyIntent(t *testing.T) {
	reqs, err := docedit.ParagraphStyleRequest(
		docedit.ParagraphStyle{},
		docedit.Range{StartIndex: 1, EndIndex: 5},
	)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestParagraphStyleRequestInvalidEnums(t *testing.T) {
	_, err := docedit.ParagraphStyleRequest(
		docedit.ParagraphStyle{Alignment: strPtr("MIDDLE")},
		docedit.Range{StartIndex: 1, EndIndex: 5},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alignment")

	_, err = docedit.ParagraphStyleRequest(
		docedit.ParagraphStyle{NamedStyleType: strPtr("HEADING_9")},
		docedit.Range{StartIndex: 1, EndIndex: 5},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "namedStyleType")
}
