package easyui

import (
	"html/template"
	"io"
	"strings"

	"github.com/ygrebnov/easyui/dictionary"
	"github.com/ygrebnov/easyui/internal/core"
)

// Component is a server-rendered EasyUI widget.
//
// HTMLAttributes and Options return the component's own mappings, never nil:
// builders clear and merge into them in place.
type Component interface {
	Name() string
	SetName(name string)
	HTMLAttributes() dictionary.Dictionary
	Options() dictionary.Dictionary
	// Render writes the component markup to w.
	Render(w io.Writer) error
}

// JS is a JavaScript expression written verbatim into data-options, such as
// the name of an event handler: Options(map[string]any{"onSelect": JS("pick")}).
type JS = core.JS

// ToHTMLString renders c into a string.
func ToHTMLString(c Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToHTML renders c for use inside html/template without further escaping.
func ToHTML(c Component) (template.HTML, error) {
	s, err := ToHTMLString(c)
	if err != nil {
		return "", err
	}
	return template.HTML(s), nil // #nosec G203 -- values are escaped by the renderer and keys are validated.
}
