package easyui

import (
	"errors"
	"testing"

	"golang.org/x/net/html/atom"

	easyuierrors "github.com/ygrebnov/easyui/errors"
)

func TestNew(t *testing.T) {
	t.Run("nil component", func(t *testing.T) {
		b, err := New[*ViewComponent](nil)
		if !errors.Is(err, easyuierrors.ErrNilComponent) {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		if b != nil {
			t.Fatalf("expected nil builder on error")
		}
	})

	t.Run("chains return the same builder", func(t *testing.T) {
		c := NewViewComponent("linkbutton", atom.A)
		b, err := New(&c)
		if err != nil {
			t.Fatalf("New unexpected error: %v", err)
		}
		if got := b.Name("save").HTMLAttributes(map[string]any{"href": "#"}); got != b {
			t.Fatalf("chained calls returned a different builder")
		}
		want := `<a id="save" class="easyui-linkbutton" href="#"></a>`
		if s := b.String(); s != want {
			t.Fatalf("String =\n%s\nwant\n%s", s, want)
		}
	})
}

func TestComponentOf(t *testing.T) {
	t.Run("nil builder", func(t *testing.T) {
		c, err := ComponentOf[*fakeComponent, *fakeBuilder](nil)
		if !errors.Is(err, ErrNilBuilder) {
			t.Fatalf("expected ErrNilBuilder, got %v", err)
		}
		if c != nil {
			t.Fatalf("expected nil component, got %v", c)
		}
	})

	t.Run("wrapped component", func(t *testing.T) {
		c := NewViewComponent("panel", atom.Div)
		b, err := New(&c)
		if err != nil {
			t.Fatalf("New unexpected error: %v", err)
		}
		got, err := ComponentOf(b.Builder)
		if err != nil || got != &c {
			t.Fatalf("ComponentOf = %p, %v; want %p", got, err, &c)
		}
	})
}
