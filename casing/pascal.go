package casing

import "regexp"

// pascalPattern matches all upper case words too, i.e. USER
var pascalPattern = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)

type pascal struct {
	style
	special
}

// Pascal returns PascalCase transformer, i.e. FirstName
func Pascal() Transformer {
	return &pascal{
		style:   style{name: StylePascal, description: "Converts strings to PascalCase format (e.g., FirstName)"},
		special: special{underscore: "_", dash: "", space: ""},
	}
}

func (p *pascal) Transform(input string) string {
	if input == "" {
		return input
	}
	if literal, ok := p.lookup(input); ok {
		return literal
	}
	return joinWords(input, toASCIIUpper)
}

func (p *pascal) Detect(input string) bool {
	return pascalPattern.MatchString(input)
}
