package json

// NumberPolicy controls decoded number representation.
type NumberPolicy int

const (
	// Float64Numbers decodes every number as float64
	Float64Numbers NumberPolicy = iota
	// ExactNumbers keeps number literal text as json.Number
	ExactNumbers
)

// DuplicateKeyPolicy controls duplicate object key behavior.
type DuplicateKeyPolicy int

const (
	LastWins DuplicateKeyPolicy = iota
	ErrorOnDuplicate
)

// Option represents codec option
type Option interface{ apply(*Options) }

// Options represents codec options
type Options struct {
	NumberPolicy       NumberPolicy
	DuplicateKeyPolicy DuplicateKeyPolicy
	Prefix             string
	Indent             string
}
