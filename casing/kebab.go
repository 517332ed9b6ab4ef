package casing

import "regexp"

var kebabPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9]*(-[a-z0-9]+)*$`)

type kebab struct {
	style
	special
}

// Kebab returns kebab-case transformer, i.e. first-name
func Kebab() Transformer {
	return &kebab{
		style:   style{name: StyleKebab, description: "Converts strings to kebab-case format (e.g., first-name)"},
		special: special{underscore: "-", dash: "-", space: "-"},
	}
}

func (k *kebab) Transform(input string) string {
	if input == "" {
		return input
	}
	if literal, ok := k.lookup(input); ok {
		return literal
	}
	return splitWords(input, '-')
}

func (k *kebab) Detect(input string) bool {
	return kebabPattern.MatchString(input)
}
