package docedit

import (
	"strconv"
	"strings"

	"google.golang.org/api/docs/v1"
)

// HexToRGB parses a hex color literal into fractional RGB components in
// [0,1]. The leading '#' is optional; 3-digit shorthand ("F00") expands each
// digit, 6-digit form is taken as-is. Any other shape or non-hex digit
// returns ok=false.
func HexToRGB(input string) (*docs.RgbColor, bool) {
	s := strings.TrimPrefix(input, "#")

	switch len(s) {
	case 3:
		var expanded [6]byte
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded[:])
	case 6:
	default:
		return nil, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, false
	}

	return &docs.RgbColor{
		Red:   float64(v>>16&0xFF) / 255,
		Green: float64(v>>8&0xFF) / 255,
		Blue:  float64(v&0xFF) / 255,
	}, true
}
