package widget

import (
	"io"
	"strconv"

	"github.com/ygrebnov/errorc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ygrebnov/easyui"
	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/markup"
)

// Column is a data grid column. All fields but Title end up in the
// column header data-options.
type Column struct {
	Field    string `easyui:"field"`
	Title    string `easyui:"-"`
	Width    int    `easyui:"width,omitempty"`
	Align    string `easyui:"align,omitempty"`
	Sortable bool   `easyui:"sortable,omitempty"`
	Hidden   bool   `easyui:"hidden,omitempty"`
}

// DataGrid renders a <table class="easyui-datagrid"> with a column header row.
type DataGrid struct {
	easyui.ViewComponent
	columns []Column
}

func NewDataGrid(opts ...easyui.ComponentOption) *DataGrid {
	return &DataGrid{ViewComponent: easyui.NewViewComponent(PluginDataGrid, atom.Table, opts...)}
}

func (g *DataGrid) Columns() []Column { return g.columns }

func (g *DataGrid) SetColumns(columns []Column) { g.columns = columns }

func (g *DataGrid) AddColumn(c Column) { g.columns = append(g.columns, c) }

func (g *DataGrid) Render(w io.Writer) error {
	g.SetDefaults(PluginDataGrid, atom.Table)
	head, err := g.head()
	if err != nil {
		return err
	}
	return g.RenderElement(w, head)
}

func (g *DataGrid) head() (*html.Node, error) {
	if len(g.columns) == 0 {
		return nil, nil
	}
	tr := markup.Element(atom.Tr, nil)
	for _, c := range g.columns {
		attrs, err := itemAttributes(c)
		if err != nil {
			return nil, err
		}
		tr.AppendChild(markup.Element(atom.Th, attrs, markup.Text(c.Title)))
	}
	return markup.Element(atom.Thead, nil, tr), nil
}

// DataGridBuilder configures a DataGrid.
type DataGridBuilder struct {
	*easyui.Builder[*DataGrid, *DataGridBuilder]
}

func NewDataGridBuilder(grid *DataGrid) (*DataGridBuilder, error) {
	gb := &DataGridBuilder{}
	b, err := easyui.NewBuilder(grid, gb)
	if err != nil {
		return nil, err
	}
	gb.Builder = b
	return gb, nil
}

// Columns replaces the grid columns. Every column needs a field.
func (b *DataGridBuilder) Columns(columns ...Column) *DataGridBuilder {
	if b.Err() != nil {
		return b
	}
	for i, c := range columns {
		if c.Field == "" {
			return b.Fail(errorc.With(
				errors.ErrInvalidColumn,
				errorc.String(errors.ErrorFieldIndex, strconv.Itoa(i)),
			))
		}
	}
	b.ToComponent().SetColumns(columns)
	return b
}

// Column appends a column with the given field and title.
func (b *DataGridBuilder) Column(field, title string) *DataGridBuilder {
	if b.Err() != nil {
		return b
	}
	if field == "" {
		return b.Fail(errorc.With(
			errors.ErrInvalidColumn,
			errorc.String(errors.ErrorFieldIndex, strconv.Itoa(len(b.ToComponent().Columns()))),
		))
	}
	b.ToComponent().AddColumn(Column{Field: field, Title: title})
	return b
}

func (b *DataGridBuilder) URL(url string) *DataGridBuilder { return b.SetOption("url", url) }

func (b *DataGridBuilder) Method(method string) *DataGridBuilder {
	return b.SetOption("method", method)
}

func (b *DataGridBuilder) FitColumns(fit bool) *DataGridBuilder {
	return b.SetOption("fitColumns", fit)
}

func (b *DataGridBuilder) SingleSelect(single bool) *DataGridBuilder {
	return b.SetOption("singleSelect", single)
}

func (b *DataGridBuilder) Pagination(enabled bool) *DataGridBuilder {
	return b.SetOption("pagination", enabled)
}

func (b *DataGridBuilder) PageSize(size int) *DataGridBuilder {
	return b.SetOption("pageSize", size)
}

// Toolbar sets the selector of the element used as grid toolbar, e.g. "#tb".
func (b *DataGridBuilder) Toolbar(selector string) *DataGridBuilder {
	return b.SetOption("toolbar", selector)
}
