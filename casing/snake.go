package casing

import "regexp"

var snakePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9]*(_[a-z0-9]+)*$`)

type snake struct {
	style
	special
}

// Snake returns snake_case transformer, i.e. first_name
func Snake() Transformer {
	return &snake{
		style:   style{name: StyleSnake, description: "Converts strings to snake_case format (e.g., first_name)"},
		special: special{underscore: "_", dash: "_", space: "_"},
	}
}

func (s *snake) Transform(input string) string {
	if input == "" {
		return input
	}
	if literal, ok := s.lookup(input); ok {
		return literal
	}
	return splitWords(input, '_')
}

func (s *snake) Detect(input string) bool {
	return snakePattern.MatchString(input)
}
