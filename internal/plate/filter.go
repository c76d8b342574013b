package plate

import "unicode/utf8"

// DefaultMinLength separates full plate strings (region, series and number)
// from stray OCR fragments. Admitted text must be strictly longer.
const DefaultMinLength = 8

// Filter admits corrected text by length, counted in runes.
type Filter struct {
	MinLength int
}

// Admit reports whether text is longer than f.MinLength.
func (f Filter) Admit(text string) bool {
	return utf8.RuneCountInString(text) > f.MinLength
}

// Admit applies the default threshold.
func Admit(text string) bool {
	return Filter{MinLength: DefaultMinLength}.Admit(text)
}
