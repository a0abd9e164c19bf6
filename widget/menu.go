package widget

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui"
	"github.com/ygrebnov/easyui/constants"
	"github.com/ygrebnov/easyui/internal/markup"
)

const classMenuSeparator = "menu-sep"

// MenuItem is an entry of a Menu. Items with children render as sub menus.
type MenuItem struct {
	Text      string
	IconCls   string
	Href      string
	Disabled  bool
	Separator bool
	Items     []MenuItem
}

type menuItemOptions struct {
	IconCls  string `easyui:"iconCls,omitempty"`
	Href     string `easyui:"href,omitempty"`
	Disabled bool   `easyui:"disabled,omitempty"`
}

// Menu renders a <div class="easyui-menu"> holding one <div> per item.
type Menu struct {
	easyui.ViewComponent
	items []MenuItem
}

func NewMenu(opts ...easyui.ComponentOption) *Menu {
	return &Menu{ViewComponent: easyui.NewViewComponent(PluginMenu, atom.Div, opts...)}
}

func (m *Menu) Items() []MenuItem { return m.items }

func (m *Menu) SetItems(items []MenuItem) { m.items = items }

func (m *Menu) AddItem(item MenuItem) { m.items = append(m.items, item) }

func (m *Menu) Render(w io.Writer) error {
	m.SetDefaults(PluginMenu, atom.Div)
	children, err := menuItems(m.items)
	if err != nil {
		return err
	}
	return m.RenderElement(w, children...)
}

func menuItems(items []MenuItem) ([]*html.Node, error) {
	nodes := make([]*html.Node, 0, len(items))
	for _, item := range items {
		n, err := menuItem(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func menuItem(item MenuItem) (*html.Node, error) {
	if item.Separator {
		return markup.Element(atom.Div, []html.Attribute{markup.Attr(constants.AttributeClass, classMenuSeparator)}), nil
	}
	attrs, err := itemAttributes(menuItemOptions{
		IconCls:  item.IconCls,
		Href:     item.Href,
		Disabled: item.Disabled,
	})
	if err != nil {
		return nil, err
	}
	if len(item.Items) == 0 {
		return markup.Element(atom.Div, attrs, markup.Text(item.Text)), nil
	}

	children, err := menuItems(item.Items)
	if err != nil {
		return nil, err
	}
	return markup.Element(atom.Div, attrs,
		markup.Element(atom.Span, nil, markup.Text(item.Text)),
		markup.Element(atom.Div, nil, children...),
	), nil
}

// MenuBuilder configures a Menu.
type MenuBuilder struct {
	*easyui.Builder[*Menu, *MenuBuilder]
}

func NewMenuBuilder(menu *Menu) (*MenuBuilder, error) {
	mb := &MenuBuilder{}
	b, err := easyui.NewBuilder(menu, mb)
	if err != nil {
		return nil, err
	}
	mb.Builder = b
	return mb, nil
}

// Items replaces the menu items.
func (b *MenuBuilder) Items(items ...MenuItem) *MenuBuilder {
	if b.Err() == nil {
		b.ToComponent().SetItems(items)
	}
	return b
}

// Item appends a plain item.
func (b *MenuBuilder) Item(text string) *MenuBuilder {
	if b.Err() == nil {
		b.ToComponent().AddItem(MenuItem{Text: text})
	}
	return b
}

// Separator appends a separator line.
func (b *MenuBuilder) Separator() *MenuBuilder {
	if b.Err() == nil {
		b.ToComponent().AddItem(MenuItem{Separator: true})
	}
	return b
}

func (b *MenuBuilder) MinWidth(px int) *MenuBuilder { return b.SetOption("minWidth", px) }

// Inline keeps the menu inside its parent instead of moving it to the body.
func (b *MenuBuilder) Inline(inline bool) *MenuBuilder { return b.SetOption("inline", inline) }
