package visitor

import "github.com/viant/casefy/data"

// ObjectVisitorOf creates a visitor iterating object fields in insertion order
func ObjectVisitorOf(object *data.Object) Visitor[string, interface{}] {
	return func(f func(key string, element interface{}) (bool, error)) error {
		for _, field := range object.Fields() {
			continueVisit, err := f(field.Key, field.Value)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
