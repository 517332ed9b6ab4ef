package casing

import "strings"

// joinWords removes separator runs, upper casing the ASCII letter or digit that follows each run.
// A run not followed by an ASCII letter or digit is kept verbatim, except a leading one which is dropped.
// The first character is adjusted with first.
func joinWords(input string, first func(r rune) rune) string {
	runes := []rune(input)
	result := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); {
		if !isSeparator(runes[i]) {
			result = append(result, runes[i])
			i++
			continue
		}
		end := i
		for end < len(runes) && isSeparator(runes[end]) {
			end++
		}
		if end < len(runes) && isASCIIAlnum(runes[end]) {
			result = append(result, toASCIIUpper(runes[end]))
			i = end + 1
			continue
		}
		result = append(result, runes[i:end]...)
		i = end
	}
	if len(result) > 0 {
		result[0] = first(result[0])
	}
	offset := 0
	for offset < len(result) && isSeparator(result[offset]) {
		offset++
	}
	return string(result[offset:])
}

// splitWords starts a new word at every separator run and every ASCII upper case letter,
// joins words with sep and lower cases the result. A leading separator is not emitted.
func splitWords(input string, sep rune) string {
	var result = strings.Builder{}
	result.Grow(len(input) + 4)
	pending := false
	written := false
	for _, r := range input {
		if isSeparator(r) {
			pending = true
			continue
		}
		if isASCIIUpper(r) {
			pending = true
		}
		if pending && written {
			result.WriteRune(sep)
		}
		pending = false
		result.WriteRune(r)
		written = true
	}
	if pending && written {
		result.WriteRune(sep)
	}
	return strings.ToLower(result.String())
}
