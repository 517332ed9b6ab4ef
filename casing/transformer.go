package casing

// Transformer defines a case style strategy
type Transformer interface {
	//Style returns case style name, i.e. snake_case
	Style() string
	//Description returns human readable style description
	Description() string
	//Transform converts input into this case style
	Transform(input string) string
	//Detect returns true if input is already in this case style
	Detect(input string) bool
}

const (
	StyleCamel  = "camelCase"
	StyleSnake  = "snake_case"
	StylePascal = "PascalCase"
	StyleKebab  = "kebab-case"
)

// style holds transformer identity
type style struct {
	name        string
	description string
}

func (s style) Style() string {
	return s.name
}

func (s style) Description() string {
	return s.description
}

// special returns literal output for single separator inputs
type special struct {
	underscore string
	dash       string
	space      string
}

func (s special) lookup(input string) (string, bool) {
	switch input {
	case "_":
		return s.underscore, true
	case "-":
		return s.dash, true
	case " ":
		return s.space, true
	}
	return "", false
}
