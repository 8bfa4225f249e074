package validate

import (
	"fmt"
	"unicode/utf8"
)

// Detection is one suspicious rune found in model-produced text.
type Detection struct {
	Rune     rune
	Hex      string
	Index    int
	Category string
}

const (
	CategoryTag       = "tag"
	CategoryBidi      = "bidi"
	CategoryZeroWidth = "zero-width"
)

// DetectHiddenUnicode finds runes that render invisibly or reorder text:
// Unicode tag characters, bidi controls and zero-width characters. Index is
// the byte offset in s.
func DetectHiddenUnicode(s string) []Detection {
	var found []Detection
	for i, r := range s {
		if r == utf8.RuneError {
			continue
		}
		if cat := classify(r); cat != "" {
			found = append(found, Detection{
				Rune:     r,
				Hex:      fmt.Sprintf("U+%04X", r),
				Index:    i,
				Category: cat,
			})
		}
	}
	return found
}

func classify(r rune) string {
	switch {
	case r >= 0xE0000 && r <= 0xE007F:
		return CategoryTag
	case r >= 0x202A && r <= 0x202E, r >= 0x2066 && r <= 0x2069, r == 0x200E, r == 0x200F:
		return CategoryBidi
	case r >= 0x200B && r <= 0x200D, r == 0x2060, r == 0xFEFF:
		return CategoryZeroWidth
	}
	return ""
}
