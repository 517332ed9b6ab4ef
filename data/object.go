package data

// Field represents an object entry
type Field struct {
	Key   string
	Value interface{}
}

// Object represents insertion ordered mapping
type Object struct {
	fields []Field
	index  map[string]int
}

// New creates an object with supplied fields, later duplicates replace earlier values
func New(fields ...Field) *Object {
	ret := &Object{fields: make([]Field, 0, len(fields)), index: make(map[string]int, len(fields))}
	for _, field := range fields {
		ret.Set(field.Key, field.Value)
	}
	return ret
}

// WithCapacity creates an empty object with preallocated capacity
func WithCapacity(capacity int) *Object {
	return &Object{fields: make([]Field, 0, capacity), index: make(map[string]int, capacity)}
}

// Len returns number of fields
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.fields)
}

// Set sets value, an existing key keeps its position
func (o *Object) Set(key string, value interface{}) {
	if o.index == nil {
		o.index = make(map[string]int)
	}
	if pos, ok := o.index[key]; ok {
		o.fields[pos].Value = value
		return
	}
	o.index[key] = len(o.fields)
	o.fields = append(o.fields, Field{Key: key, Value: value})
}

// Get returns value for key
func (o *Object) Get(key string) (interface{}, bool) {
	if o == nil {
		return nil, false
	}
	pos, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.fields[pos].Value, true
}

// Has returns true if key exists
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Delete removes key, returns true if key existed
func (o *Object) Delete(key string) bool {
	if o == nil {
		return false
	}
	pos, ok := o.index[key]
	if !ok {
		return false
	}
	o.fields = append(o.fields[:pos], o.fields[pos+1:]...)
	delete(o.index, key)
	for i := pos; i < len(o.fields); i++ {
		o.index[o.fields[i].Key] = i
	}
	return true
}

// Keys returns keys in insertion order
func (o *Object) Keys() []string {
	var result = make([]string, 0, o.Len())
	for i := 0; i < o.Len(); i++ {
		result = append(result, o.fields[i].Key)
	}
	return result
}

// Fields returns copy of fields in insertion order
func (o *Object) Fields() []Field {
	var result = make([]Field, o.Len())
	if o != nil {
		copy(result, o.fields)
	}
	return result
}

// Range calls fn for each field in insertion order, returning false stops iteration
func (o *Object) Range(fn func(key string, value interface{}) bool) {
	for i := 0; i < o.Len(); i++ {
		if !fn(o.fields[i].Key, o.fields[i].Value) {
			return
		}
	}
}

// Clone returns shallow copy
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	return New(o.fields...)
}

// Map returns unordered map representation of the top level fields
func (o *Object) Map() map[string]interface{} {
	var result = make(map[string]interface{}, o.Len())
	o.Range(func(key string, value interface{}) bool {
		result[key] = value
		return true
	})
	return result
}
