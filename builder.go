// Package easyui renders jQuery EasyUI widgets on the server through fluent builders.
//
// A builder wraps one Component and exposes chainable configuration methods.
// Concrete builders embed *Builder[C, B], passing themselves as B, so that
// every chained call returns the concrete builder:
//
//	type GridBuilder struct {
//		*easyui.Builder[*Grid, *GridBuilder]
//	}
//
// Go has no exceptions, so a failed precondition (a nil map, a nil object)
// is recorded on the builder: the remaining calls of the chain do nothing,
// Err reports the failure and the terminal operations return it.
//
// Builders are not safe for concurrent configuration of the same instance.
package easyui

import (
	"html/template"
	"io"
	"maps"

	"github.com/ygrebnov/easyui/dictionary"
	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/guard"
)

// Builder is the fluent base shared by all component builders. C is the
// wrapped component and B the value returned from chained calls.
type Builder[C Component, B any] struct {
	component C
	self      B
	err       error
}

// NewBuilder wraps component. self is returned from every chained call.
// It fails with ErrNilComponent when component is nil and with ErrNilBuilder
// when self is nil.
func NewBuilder[C Component, B any](component C, self B) (*Builder[C, B], error) {
	if err := guard.NotNil(component, errors.ErrNilComponent, "component"); err != nil {
		return nil, err
	}
	if err := guard.NotNil(self, errors.ErrNilBuilder, "builder"); err != nil {
		return nil, err
	}
	return &Builder[C, B]{component: component, self: self}, nil
}

// Name sets the component name.
func (b *Builder[C, B]) Name(name string) B {
	if b.err == nil {
		b.component.SetName(name)
	}
	return b.self
}

// HTMLAttributes replaces the component HTML attributes with attributes.
// A nil map fails the chain with ErrNilAttributes.
func (b *Builder[C, B]) HTMLAttributes(attributes map[string]any) B {
	if b.err != nil {
		return b.self
	}
	if err := guard.NotNil(attributes, errors.ErrNilAttributes, "attributes"); err != nil {
		return b.Fail(err)
	}
	replace(b.component.HTMLAttributes(), attributes)
	return b.self
}

// HTMLAttributesFrom replaces the component HTML attributes with the fields
// of a struct or the entries of a string-keyed map (see dictionary.FromObject).
func (b *Builder[C, B]) HTMLAttributesFrom(attributes any) B {
	if b.err != nil {
		return b.self
	}
	if err := guard.NotNil(attributes, errors.ErrNilAttributes, "attributes"); err != nil {
		return b.Fail(err)
	}
	d, err := dictionary.FromObject(attributes)
	if err != nil {
		return b.Fail(err)
	}
	return b.HTMLAttributes(d)
}

// Options replaces the component options with options.
// A nil map fails the chain with ErrNilOptions.
func (b *Builder[C, B]) Options(options map[string]any) B {
	if b.err != nil {
		return b.self
	}
	if err := guard.NotNil(options, errors.ErrNilOptions, "options"); err != nil {
		return b.Fail(err)
	}
	replace(b.component.Options(), options)
	return b.self
}

// OptionsFrom replaces the component options with the fields of a struct
// or the entries of a string-keyed map (see dictionary.FromObject).
func (b *Builder[C, B]) OptionsFrom(options any) B {
	if b.err != nil {
		return b.self
	}
	if err := guard.NotNil(options, errors.ErrNilOptions, "options"); err != nil {
		return b.Fail(err)
	}
	d, err := dictionary.FromObject(options)
	if err != nil {
		return b.Fail(err)
	}
	return b.Options(d)
}

// SetHTMLAttribute sets a single HTML attribute, keeping the others.
func (b *Builder[C, B]) SetHTMLAttribute(key string, value any) B {
	if b.err == nil {
		b.component.HTMLAttributes()[key] = value
	}
	return b.self
}

// SetOption sets a single option, keeping the others. Options and
// OptionsFrom replace every option, including ones set here earlier.
func (b *Builder[C, B]) SetOption(key string, value any) B {
	if b.err == nil {
		b.component.Options()[key] = value
	}
	return b.self
}

// replace clears dst and merges src into it. src is copied first so that
// passing a component's own mapping back in keeps its entries.
func replace(dst dictionary.Dictionary, src map[string]any) {
	incoming := maps.Clone(src)
	dst.Clear()
	dst.Merge(incoming)
}

// Fail records err unless an earlier failure is already recorded.
// Concrete builders use it to report their own precondition failures.
func (b *Builder[C, B]) Fail(err error) B {
	if b.err == nil && err != nil {
		b.err = err
	}
	return b.self
}

// Err returns the first failure recorded by the chain, if any.
func (b *Builder[C, B]) Err() error {
	return b.err
}

// ToComponent returns the wrapped component. It is the explicit form of
// passing a builder where a component is expected.
func (b *Builder[C, B]) ToComponent() C {
	return b.component
}

// Render writes the component markup to w, the response body or any other
// output sink of the host.
func (b *Builder[C, B]) Render(w io.Writer) error {
	if b.err != nil {
		return b.err
	}
	if err := guard.NotNil(w, errors.ErrNilWriter, "writer"); err != nil {
		return err
	}
	return b.component.Render(w)
}

// ToHTMLString renders the component into a string.
func (b *Builder[C, B]) ToHTMLString() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	return ToHTMLString(b.component)
}

// ToHTML renders the component for html/template.
func (b *Builder[C, B]) ToHTML() (template.HTML, error) {
	if b.err != nil {
		return "", b.err
	}
	return ToHTML(b.component)
}

// String returns the same markup as ToHTMLString, or an empty string when
// the chain failed or rendering returned an error.
func (b *Builder[C, B]) String() string {
	s, _ := b.ToHTMLString()
	return s
}
