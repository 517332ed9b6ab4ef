package casing

import "regexp"

var camelPattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
var upperPattern = regexp.MustCompile(`[A-Z]`)

type camel struct {
	style
	special
}

// Camel returns camelCase transformer, i.e. firstName
func Camel() Transformer {
	return &camel{
		style:   style{name: StyleCamel, description: "Converts strings to camelCase format (e.g., firstName)"},
		special: special{underscore: "_", dash: "", space: ""},
	}
}

func (c *camel) Transform(input string) string {
	if input == "" {
		return input
	}
	if literal, ok := c.lookup(input); ok {
		return literal
	}
	return joinWords(input, toASCIILower)
}

// Detect requires at least one upper case letter, so a single lower case word is not camelCase
func (c *camel) Detect(input string) bool {
	return camelPattern.MatchString(input) && upperPattern.MatchString(input)
}
