package casefy

import "strconv"

// frame represents immutable traversal position
type frame struct {
	path      string
	depth     int
	arrayItem bool
}

// field returns frame of a mapping key, it shares mapping depth
func (f frame) field(key string) frame {
	path := key
	if f.path != "" {
		path = f.path + "." + key
	}
	return frame{path: path, depth: f.depth, arrayItem: f.arrayItem}
}

// value returns frame used to walk a mapping value
func (f frame) value() frame {
	return frame{path: f.path, depth: f.depth + 1}
}

// item returns frame of a sequence element
func (f frame) item(index int) frame {
	return frame{path: f.path + "[" + strconv.Itoa(index) + "]", depth: f.depth + 1, arrayItem: true}
}
