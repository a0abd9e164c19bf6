package widget

import (
	"io"

	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui"
	"github.com/ygrebnov/easyui/internal/markup"
)

// Panel renders a <div class="easyui-panel"> with a text body.
type Panel struct {
	easyui.ViewComponent
	content string
}

func NewPanel(opts ...easyui.ComponentOption) *Panel {
	return &Panel{ViewComponent: easyui.NewViewComponent(PluginPanel, atom.Div, opts...)}
}

func (p *Panel) Content() string { return p.content }

func (p *Panel) SetContent(content string) { p.content = content }

func (p *Panel) Render(w io.Writer) error {
	p.SetDefaults(PluginPanel, atom.Div)
	if p.content == "" {
		return p.RenderElement(w)
	}
	return p.RenderElement(w, markup.Text(p.content))
}

// PanelBuilder configures a Panel.
type PanelBuilder struct {
	*easyui.Builder[*Panel, *PanelBuilder]
}

func NewPanelBuilder(panel *Panel) (*PanelBuilder, error) {
	pb := &PanelBuilder{}
	b, err := easyui.NewBuilder(panel, pb)
	if err != nil {
		return nil, err
	}
	pb.Builder = b
	return pb, nil
}

func (b *PanelBuilder) Title(title string) *PanelBuilder { return b.SetOption("title", title) }

// Content sets the panel body, rendered as escaped text.
func (b *PanelBuilder) Content(content string) *PanelBuilder {
	if b.Err() == nil {
		b.ToComponent().SetContent(content)
	}
	return b
}

func (b *PanelBuilder) Collapsible(collapsible bool) *PanelBuilder {
	return b.SetOption("collapsible", collapsible)
}

func (b *PanelBuilder) Closable(closable bool) *PanelBuilder {
	return b.SetOption("closable", closable)
}

func (b *PanelBuilder) Width(px int) *PanelBuilder { return b.SetOption("width", px) }

func (b *PanelBuilder) Height(px int) *PanelBuilder { return b.SetOption("height", px) }
