package widget

import (
	"io"
	"strconv"

	"github.com/ygrebnov/errorc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui"
	"github.com/ygrebnov/easyui/constants"
	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/markup"
)

// Tab is a panel of Tabs. Content is rendered as escaped text.
type Tab struct {
	Title    string `easyui:"-"`
	Content  string `easyui:"-"`
	IconCls  string `easyui:"iconCls,omitempty"`
	Closable bool   `easyui:"closable,omitempty"`
	Selected bool   `easyui:"selected,omitempty"`
}

// Tabs renders a <div class="easyui-tabs"> holding one titled <div> per tab.
type Tabs struct {
	easyui.ViewComponent
	tabs []Tab
}

func NewTabs(opts ...easyui.ComponentOption) *Tabs {
	return &Tabs{ViewComponent: easyui.NewViewComponent(PluginTabs, atom.Div, opts...)}
}

func (t *Tabs) Tabs() []Tab { return t.tabs }

func (t *Tabs) SetTabs(tabs []Tab) { t.tabs = tabs }

func (t *Tabs) AddTab(tab Tab) { t.tabs = append(t.tabs, tab) }

func (t *Tabs) Render(w io.Writer) error {
	t.SetDefaults(PluginTabs, atom.Div)
	children := make([]*html.Node, 0, len(t.tabs))
	for _, tab := range t.tabs {
		attrs, err := itemAttributes(tab, markup.Attr(constants.AttributeTitle, tab.Title))
		if err != nil {
			return err
		}
		children = append(children, markup.Element(atom.Div, attrs, markup.Text(tab.Content)))
	}
	return t.RenderElement(w, children...)
}

// TabsBuilder configures Tabs.
type TabsBuilder struct {
	*easyui.Builder[*Tabs, *TabsBuilder]
}

func NewTabsBuilder(tabs *Tabs) (*TabsBuilder, error) {
	tb := &TabsBuilder{}
	b, err := easyui.NewBuilder(tabs, tb)
	if err != nil {
		return nil, err
	}
	tb.Builder = b
	return tb, nil
}

// Tabs replaces the tabs. Every tab needs a title.
func (b *TabsBuilder) Tabs(tabs ...Tab) *TabsBuilder {
	if b.Err() != nil {
		return b
	}
	for i, tab := range tabs {
		if tab.Title == "" {
			return b.Fail(invalidTab(i))
		}
	}
	b.ToComponent().SetTabs(tabs)
	return b
}

// Tab appends a tab with the given title and text content.
func (b *TabsBuilder) Tab(title, content string) *TabsBuilder {
	if b.Err() != nil {
		return b
	}
	if title == "" {
		return b.Fail(invalidTab(len(b.ToComponent().Tabs())))
	}
	b.ToComponent().AddTab(Tab{Title: title, Content: content})
	return b
}

func invalidTab(index int) error {
	return errorc.With(errors.ErrInvalidTab, errorc.String(errors.ErrorFieldIndex, strconv.Itoa(index)))
}

func (b *TabsBuilder) Fit(fit bool) *TabsBuilder { return b.SetOption("fit", fit) }

func (b *TabsBuilder) Border(border bool) *TabsBuilder { return b.SetOption("border", border) }

func (b *TabsBuilder) Plain(plain bool) *TabsBuilder { return b.SetOption("plain", plain) }

// TabPosition is one of "top", "bottom", "left" or "right".
func (b *TabsBuilder) TabPosition(position string) *TabsBuilder {
	return b.SetOption("tabPosition", position)
}
