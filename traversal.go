package casefy

import (
	"context"
	"fmt"
	"reflect"

	"github.com/viant/casefy/casing"
	"github.com/viant/casefy/conv"
	"github.com/viant/casefy/data"
	"github.com/viant/casefy/visitor"
)

type (
	// traversal walks one value, it is not shared between calls
	traversal struct {
		from    casing.Transformer
		to      casing.Transformer
		options *Options
		done    <-chan struct{}
		ctx     context.Context
		active  map[containerID]bool
	}

	containerID struct {
		ptr    uintptr
		kind   reflect.Kind
		length int
	}
)

func newTraversal(ctx context.Context, from, to casing.Transformer, options *Options) *traversal {
	if ctx == nil {
		ctx = context.Background()
	}
	return &traversal{
		from:    from,
		to:      to,
		options: options,
		ctx:     ctx,
		done:    ctx.Done(),
		active:  map[containerID]bool{},
	}
}

// run walks value, any failure echoes the input back with zero transformed keys
func (t *traversal) run(value interface{}) (result interface{}, count int, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, count, err = value, 0, &DataError{Message: fmt.Sprintf("panic: %v", r)}
		}
	}()
	result, count, err = t.walk(value, frame{})
	if err != nil {
		return value, 0, err
	}
	return result, count, nil
}

func (t *traversal) walk(value interface{}, f frame) (interface{}, int, error) {
	if t.options.MaxDepth > 0 && f.depth > t.options.MaxDepth {
		return nil, 0, &DataError{Path: f.path, Depth: f.depth, Cause: ErrMaxDepth}
	}
	switch visitor.KindOf(value) {
	case visitor.KindNull, visitor.KindPrimitive:
		if !t.options.PreserveTypes {
			if text, ok := conv.Text(value); ok {
				return text, 0, nil
			}
		}
		return value, 0, nil
	case visitor.KindSequence:
		return t.walkSequence(value, f)
	case visitor.KindMapping:
		return t.walkMapping(value, f)
	}
	return value, 0, nil
}

func (t *traversal) walkSequence(value interface{}, f frame) (interface{}, int, error) {
	if !t.options.Arrays {
		return value, 0, nil
	}
	visit, err := visitor.AnySliceVisitorOf(value)
	if err != nil {
		return nil, 0, &DataError{Path: f.path, Depth: f.depth, Cause: err}
	}
	id, err := t.enter(value, f)
	if err != nil {
		return nil, 0, err
	}
	defer t.leave(id)

	var result = make([]interface{}, 0, visitor.Len(value))
	count := 0
	err = visit(func(index int, element interface{}) (bool, error) {
		item, itemCount, err := t.walk(element, f.item(index))
		if err != nil {
			return false, err
		}
		result = append(result, item)
		count += itemCount
		return true, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return result, count, nil
}

func (t *traversal) walkMapping(value interface{}, f frame) (interface{}, int, error) {
	id, err := t.enter(value, f)
	if err != nil {
		return nil, 0, err
	}
	defer t.leave(id)

	var visit visitor.Visitor[string, interface{}]
	var emit func(key string, value interface{})
	var result interface{}
	switch actual := value.(type) {
	case *data.Object:
		object := data.WithCapacity(actual.Len())
		visit, emit, result = visitor.ObjectVisitorOf(actual), object.Set, object
	default:
		if visit, err = visitor.AnyMapVisitorOf(value); err != nil {
			return nil, 0, &DataError{Path: f.path, Depth: f.depth, Cause: err}
		}
		aMap := make(map[string]interface{}, visitor.Len(value))
		emit = func(key string, value interface{}) { aMap[key] = value }
		result = aMap
	}

	count := 0
	err = visit(func(key string, element interface{}) (bool, error) {
		if err := t.canceled(f); err != nil {
			return false, err
		}
		keyFrame := f.field(key)
		if t.options.excluded(key) || !t.options.included(key) {
			emit(key, element)
			return true, nil
		}
		name := key
		if mapped, ok := t.options.mapped(key); ok {
			name = mapped
		} else if t.from.Detect(key) {
			name = t.to.Transform(key)
		}
		if t.options.Deep || visitor.KindOf(element) != visitor.KindMapping {
			item, itemCount, err := t.walk(element, keyFrame.value())
			if err != nil {
				return false, err
			}
			element = item
			count += itemCount
		}
		if name != key {
			count++
			t.options.logger.Debug("renamed key", "style", t.to.Style(), "from", key, "to", name,
				"path", keyFrame.path, "depth", keyFrame.depth, "arrayItem", keyFrame.arrayItem)
		}
		emit(name, element)
		return true, nil
	})
	if err != nil {
		return nil, 0, err
	}
	return result, count, nil
}

func (t *traversal) canceled(f frame) error {
	if t.done == nil {
		return nil
	}
	select {
	case <-t.done:
		return &DataError{Path: f.path, Depth: f.depth, Message: "traversal canceled", Cause: t.ctx.Err()}
	default:
		return nil
	}
}

// enter marks container as being walked, a container already on the descent path is a cycle
func (t *traversal) enter(value interface{}, f frame) (*containerID, error) {
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice:
	default:
		return nil, nil
	}
	length := visitor.Len(value)
	if rValue.Kind() == reflect.Slice && length == 0 {
		return nil, nil
	}
	id := containerID{ptr: rValue.Pointer(), kind: rValue.Kind(), length: length}
	if t.active[id] {
		return nil, &DataError{Path: f.path, Depth: f.depth, Cause: ErrCycle}
	}
	t.active[id] = true
	return &id, nil
}

func (t *traversal) leave(id *containerID) {
	if id != nil {
		delete(t.active, *id)
	}
}
