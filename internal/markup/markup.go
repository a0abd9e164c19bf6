// Package markup builds and renders HTML node trees on top of golang.org/x/net/html.
package markup

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/constants"
	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/core"
)

// Element creates an element node for tag a and appends children to it.
// Nil children are skipped.
func Element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// Text creates a text node. The renderer escapes its content.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr is a shorthand for a single html.Attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Render writes n and its subtree to w.
func Render(w io.Writer, n *html.Node) error {
	if err := html.Render(w, n); err != nil {
		return errorc.With(errors.ErrRender, errorc.Error(errors.ErrorFieldCause, err))
	}
	return nil
}

// FormatAttribute converts an attribute value to its markup form.
// The boolean result is false when the attribute must be omitted:
// nil values and false booleans.
func FormatAttribute(key string, v any) (string, bool, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Ptr && rv.IsNil() {
		return "", false, nil
	}

	switch val := v.(type) {
	case nil:
		return "", false, nil
	case string:
		return val, true, nil
	case bool:
		if !val {
			return "", false, nil
		}
		return key, true, nil
	case core.JS:
		return string(val), true, nil
	case fmt.Stringer:
		return val.String(), true, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "", false, nil
		}
		return FormatAttribute(key, rv.Elem().Interface())
	case reflect.String:
		return rv.String(), true, nil
	case reflect.Bool:
		return FormatAttribute(key, rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true, nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true, nil
	}

	// Composite values fall back to their JavaScript literal form.
	s, err := core.EncodeValue(v)
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// Attributes formats attrs sorted by key, skipping the keys listed in exclude.
// Keys that are not valid attribute names fail with ErrUnsupportedValue:
// the renderer writes keys verbatim.
func Attributes(attrs map[string]any, exclude ...string) ([]html.Attribute, error) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if slices.Contains(exclude, k) {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		if !IsAttributeName(k) {
			return nil, errorc.With(errors.ErrUnsupportedValue, errorc.String(errors.ErrorFieldKey, k))
		}
		val, ok, err := FormatAttribute(k, attrs[k])
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, Attr(k, val))
		}
	}
	return out, nil
}

// IsAttributeName reports whether key is a valid HTML attribute name: not
// empty, without white space, control characters or any of "'<>/=.
func IsAttributeName(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'<>/=`, r) {
			return false
		}
	}
	return true
}

// DataOptions returns the data-options attribute for options, or false
// when options are empty.
func DataOptions(options map[string]any) (html.Attribute, bool, error) {
	if len(options) == 0 {
		return html.Attribute{}, false, nil
	}
	s, err := core.EncodeOptions(options)
	if err != nil {
		return html.Attribute{}, false, err
	}
	return Attr(constants.AttributeDataOptions, s), true, nil
}
