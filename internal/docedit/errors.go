// Package docedit builds Google Docs batchUpdate requests from sparse
// styling and positioning intents.
package docedit

import (
	"errors"
	"fmt"
)

// ErrEmptyIntent indicates a style intent with no attributes set.
var ErrEmptyIntent = errors.New("no style attributes set")

// InvalidColorError reports a malformed hex color literal on a named attribute.
type InvalidColorError struct {
	Attribute string
	Value     string
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("invalid hex color %q for %s", e.Value, e.Attribute)
}

// InvalidRangeError reports an index range violating 1 <= start < end.
type InvalidRangeError struct {
	StartIndex int64
	EndIndex   int64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d,%d): start index must be >= 1 and less than end index", e.StartIndex, e.EndIndex)
}

// NotFoundError reports that fewer occurrences of a search string exist
// than the one requested.
type NotFoundError struct {
	Needle     string
	Occurrence int
	Found      int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("occurrence %d of %q not found: document contains %d occurrence(s)", e.Occurrence, e.Needle, e.Found)
}
