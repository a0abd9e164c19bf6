package easyui

import (
	"io"

	"github.com/rs/xid"
	"github.com/ygrebnov/errorc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui/constants"
	"github.com/ygrebnov/easyui/dictionary"
	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/markup"
)

// ViewComponent is the state shared by every widget: the EasyUI plugin it
// activates, the root element tag, its name, HTML attributes and options.
// Widgets embed it and render their children through RenderElement.
//
// The zero value is usable: mappings are allocated on first access, ids
// come from XIDGenerator and the root element is a <div>. Widgets call
// SetDefaults before rendering so that a zero-value widget gets its plugin
// and tag.
//
// A ViewComponent is not safe for concurrent configuration.
type ViewComponent struct {
	plugin         string
	tag            atom.Atom
	name           string
	generatedID    string
	classPrefix    string
	hasClassPrefix bool
	newID          IDGenerator
	htmlAttributes dictionary.Dictionary
	options        dictionary.Dictionary
}

// IDGenerator returns an element id for a component of the given plugin.
type IDGenerator func(plugin string) string

// ComponentOption configures a ViewComponent at construction time.
type ComponentOption func(*ViewComponent)

// WithName sets the initial component name.
func WithName(name string) ComponentOption {
	return func(c *ViewComponent) { c.name = name }
}

// WithIDGenerator replaces the generator used for components without a name.
func WithIDGenerator(fn IDGenerator) ComponentOption {
	return func(c *ViewComponent) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithClassPrefix replaces the "easyui-" prefix of the plugin class.
func WithClassPrefix(prefix string) ComponentOption {
	return func(c *ViewComponent) {
		c.classPrefix = prefix
		c.hasClassPrefix = true
	}
}

// XIDGenerator is the default IDGenerator: "<plugin>_<xid>".
func XIDGenerator(plugin string) string {
	if plugin == "" {
		return xid.New().String()
	}
	return plugin + "_" + xid.New().String()
}

// NewViewComponent returns a component for the EasyUI plugin (e.g. "datagrid")
// rendered as a tag element.
func NewViewComponent(plugin string, tag atom.Atom, opts ...ComponentOption) ViewComponent {
	c := ViewComponent{
		plugin:         plugin,
		tag:            tag,
		newID:          XIDGenerator,
		htmlAttributes: dictionary.New(),
		options:        dictionary.New(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c *ViewComponent) Plugin() string { return c.plugin }

func (c *ViewComponent) Name() string { return c.name }

func (c *ViewComponent) SetName(name string) { c.name = name }

func (c *ViewComponent) HTMLAttributes() dictionary.Dictionary {
	if c.htmlAttributes == nil {
		c.htmlAttributes = dictionary.New()
	}
	return c.htmlAttributes
}

func (c *ViewComponent) Options() dictionary.Dictionary {
	if c.options == nil {
		c.options = dictionary.New()
	}
	return c.options
}

// SetDefaults fills the plugin and the root tag when they are unset,
// keeping everything already configured.
func (c *ViewComponent) SetDefaults(plugin string, tag atom.Atom) {
	if c.plugin == "" {
		c.plugin = plugin
	}
	if c.tag == 0 {
		c.tag = tag
	}
}

// ID returns the element id: the name when set, otherwise a non-empty
// string "id" HTML attribute, otherwise an id generated on first use and
// kept for the lifetime of the component.
func (c *ViewComponent) ID() string {
	if c.name != "" {
		return c.name
	}
	if id, ok := c.htmlAttributes[constants.AttributeID].(string); ok && id != "" {
		return id
	}
	if c.generatedID == "" {
		newID := c.newID
		if newID == nil {
			newID = XIDGenerator
		}
		c.generatedID = newID(c.plugin)
	}
	return c.generatedID
}

// ClassName returns the class attribute: the plugin class followed by any
// class supplied through HTML attributes.
func (c *ViewComponent) ClassName() (string, error) {
	class := ""
	if c.plugin != "" {
		prefix := constants.ClassPrefix
		if c.hasClassPrefix {
			prefix = c.classPrefix
		}
		class = prefix + c.plugin
	}
	user, ok, err := markup.FormatAttribute(constants.AttributeClass, c.htmlAttributes[constants.AttributeClass])
	if err != nil {
		return "", err
	}
	if ok && user != "" {
		if class != "" {
			class += " "
		}
		class += user
	}
	return class, nil
}

// Element builds the root element with children appended. Attributes are
// written as id, class, the remaining HTML attributes sorted by key, then
// data-options. Options take precedence over a data-options HTML attribute
// unless they are empty.
func (c *ViewComponent) Element(children ...*html.Node) (*html.Node, error) {
	n, err := c.element(children)
	if err != nil {
		return nil, errorc.With(
			err,
			errorc.String(errors.ErrorFieldPlugin, c.plugin),
			errorc.String(errors.ErrorFieldID, c.ID()),
		)
	}
	return n, nil
}

func (c *ViewComponent) element(children []*html.Node) (*html.Node, error) {
	attrs := []html.Attribute{markup.Attr(constants.AttributeID, c.ID())}

	class, err := c.ClassName()
	if err != nil {
		return nil, err
	}
	if class != "" {
		attrs = append(attrs, markup.Attr(constants.AttributeClass, class))
	}

	rest, err := markup.Attributes(
		c.htmlAttributes,
		constants.AttributeID,
		constants.AttributeClass,
		constants.AttributeDataOptions,
	)
	if err != nil {
		return nil, err
	}
	attrs = append(attrs, rest...)

	dataOptions, ok, err := markup.DataOptions(c.options)
	if err != nil {
		return nil, err
	}
	if !ok {
		var v string
		v, ok, err = markup.FormatAttribute(constants.AttributeDataOptions, c.htmlAttributes[constants.AttributeDataOptions])
		if err != nil {
			return nil, err
		}
		dataOptions = markup.Attr(constants.AttributeDataOptions, v)
	}
	if ok {
		attrs = append(attrs, dataOptions)
	}

	tag := c.tag
	if tag == 0 {
		tag = atom.Div
	}
	return markup.Element(tag, attrs, children...), nil
}

// RenderElement writes the root element with children to w.
func (c *ViewComponent) RenderElement(w io.Writer, children ...*html.Node) error {
	if w == nil {
		return errorc.With(errors.ErrNilWriter, errorc.String(errors.ErrorFieldPlugin, c.plugin))
	}
	n, err := c.Element(children...)
	if err != nil {
		return err
	}
	return markup.Render(w, n)
}

// Render writes the bare root element to w. Widgets with content shadow it.
func (c *ViewComponent) Render(w io.Writer) error {
	return c.RenderElement(w)
}
