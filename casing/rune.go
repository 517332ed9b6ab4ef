package casing

import "unicode"

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func isASCIIUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isASCIILower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlnum(r rune) bool {
	return isASCIILower(r) || isASCIIUpper(r) || isASCIIDigit(r)
}

func toASCIIUpper(r rune) rune {
	if isASCIILower(r) {
		return r - ('a' - 'A')
	}
	return r
}

func toASCIILower(r rune) rune {
	if isASCIIUpper(r) {
		return r + ('a' - 'A')
	}
	return r
}
