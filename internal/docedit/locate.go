package docedit

import (
	"errors"
	"fmt"
	"strings"
)

// LocateOccurrence finds the occurrence-th (1-based) non-overlapping match
// of needle in text and returns its range in the Docs API's 1-based index
// convention. The scan resumes at each match's end, so overlapping matches
// are never counted. Offsets are byte-based; for content outside the ASCII
// range they can drift from the remote service's UTF-16 index space.
func LocateOccurrence(text, needle string, occurrence int) (Range, error) {
	if needle == "" {
		return Range{}, errors.New("search text must not be empty")
	}
	if occurrence < 1 {
		return Range{}, fmt.Errorf("occurrence must be >= 1, got %d", occurrence)
	}

	found := 0
	pos := 0
	for {
		idx := strings.Index(text[pos:], needle)
		if idx < 0 {
			return Range{}, &NotFoundError{Needle: needle, Occurrence: occurrence, Found: found}
		}

		start := pos + idx
		found++
		if found == occurrence {
			return Range{
				StartIndex: int64(start) + 1,
				EndIndex:   int64(start) + 1 + int64(len(needle)),
			}, nil
		}

		pos = start + len(needle)
	}
}
