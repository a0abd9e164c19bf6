package easyui

import (
	"github.com/ygrebnov/easyui/errors"
)

// ComponentBuilder is a ready-made builder for any component that does not
// come with a dedicated one.
type ComponentBuilder[C Component] struct {
	*Builder[C, *ComponentBuilder[C]]
}

// New wraps component in a ComponentBuilder.
func New[C Component](component C) (*ComponentBuilder[C], error) {
	cb := &ComponentBuilder[C]{}
	b, err := NewBuilder(component, cb)
	if err != nil {
		return nil, err
	}
	cb.Builder = b
	return cb, nil
}

// ComponentOf returns the component wrapped by b, failing with ErrNilBuilder
// when b is nil. Use it at render sites that receive a builder but need the
// component.
func ComponentOf[C Component, B any](b *Builder[C, B]) (C, error) {
	if b == nil {
		var zero C
		return zero, errors.ErrNilBuilder
	}
	return b.ToComponent(), nil
}
