package widget

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html/atom"

	easyuierrors "github.com/ygrebnov/easyui/errors"
)

func TestDataGridBuilder(t *testing.T) {
	grid := NewDataGrid(fixedID("dg_1"))
	b, err := NewDataGridBuilder(grid)
	if err != nil {
		t.Fatalf("NewDataGridBuilder unexpected error: %v", err)
	}

	b.Name("orders").
		HTMLAttributes(map[string]any{"style": "width:700px;height:250px"}).
		URL("orders.json").
		Method("get").
		FitColumns(true).
		SingleSelect(true).
		Pagination(true).
		PageSize(20).
		Toolbar("#tb").
		Columns(
			Column{Field: "code", Title: "Code", Width: 100, Sortable: true},
			Column{Field: "price", Title: "Price & VAT", Align: "right"},
		).
		Column("note", "Note")
	if err := b.Err(); err != nil {
		t.Fatalf("unexpected chain error: %v", err)
	}

	out, err := b.ToHTMLString()
	if err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	body := parse(t, out)

	tables := findAll(body, atom.Table)
	if len(tables) != 1 {
		t.Fatalf("expected one table in %s", out)
	}
	table := tables[0]
	if got := attr(table, "id"); got != "orders" {
		t.Fatalf("id = %q, want %q", got, "orders")
	}
	if got := attr(table, "class"); got != "easyui-datagrid" {
		t.Fatalf("class = %q", got)
	}
	if got := attr(table, "style"); got != "width:700px;height:250px" {
		t.Fatalf("style = %q", got)
	}
	wantOptions := "fitColumns:true,method:'get',pageSize:20,pagination:true,singleSelect:true,toolbar:'#tb',url:'orders.json'"
	if got := attr(table, "data-options"); got != wantOptions {
		t.Fatalf("data-options =\n%s\nwant\n%s", got, wantOptions)
	}

	headers := findAll(table, atom.Th)
	want := []struct{ options, title string }{
		{"field:'code',sortable:true,width:100", "Code"},
		{"align:'right',field:'price'", "Price & VAT"},
		{"field:'note'", "Note"},
	}
	if len(headers) != len(want) {
		t.Fatalf("expected %d headers, got %d in %s", len(want), len(headers), out)
	}
	for i, w := range want {
		if got := attr(headers[i], "data-options"); got != w.options {
			t.Fatalf("header %d data-options = %s, want %s", i, got, w.options)
		}
		if got := text(headers[i]); got != w.title {
			t.Fatalf("header %d title = %q, want %q", i, got, w.title)
		}
	}
	if !strings.Contains(out, "Price &amp; VAT") {
		t.Fatalf("expected escaped title in %s", out)
	}
}

func TestDataGrid_NoColumns(t *testing.T) {
	grid := NewDataGrid(fixedID("dg_1"))
	var sb strings.Builder
	if err := grid.Render(&sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<table id="dg_1" class="easyui-datagrid"></table>`
	if sb.String() != want {
		t.Fatalf("render =\n%s\nwant\n%s", sb.String(), want)
	}
}

func TestDataGrid_ZeroValue(t *testing.T) {
	b, err := NewDataGridBuilder(&DataGrid{})
	if err != nil {
		t.Fatalf("NewDataGridBuilder unexpected error: %v", err)
	}
	out, err := b.HTMLAttributes(map[string]any{"id": "x"}).
		SetHTMLAttribute("style", "width:100px").
		FitColumns(true).
		Column("code", "Code").
		ToHTMLString()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tables := findAll(parse(t, out), atom.Table)
	if len(tables) != 1 {
		t.Fatalf("expected one table in %s", out)
	}
	table := tables[0]
	if got := attr(table, "id"); got != "x" {
		t.Fatalf("id = %q, want %q", got, "x")
	}
	if got := attr(table, "class"); got != "easyui-datagrid" {
		t.Fatalf("class = %q, want %q", got, "easyui-datagrid")
	}
	if got := attr(table, "data-options"); got != "fitColumns:true" {
		t.Fatalf("data-options = %q", got)
	}
	ths := findAll(table, atom.Th)
	if len(ths) != 1 || attr(ths[0], "data-options") != "field:'code'" {
		t.Fatalf("unexpected header cells in %s", out)
	}
}

func TestDataGridBuilder_InvalidColumn(t *testing.T) {
	tests := []struct {
		name  string
		apply func(b *DataGridBuilder)
		index string
	}{
		{
			name: "Columns",
			apply: func(b *DataGridBuilder) {
				b.Columns(Column{Field: "a"}, Column{Title: "no field"})
			},
			index: "1",
		},
		{
			name: "Column",
			apply: func(b *DataGridBuilder) {
				b.Column("a", "A").Column("", "B")
			},
			index: "1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewDataGrid()
			b, err := NewDataGridBuilder(grid)
			if err != nil {
				t.Fatalf("NewDataGridBuilder unexpected error: %v", err)
			}
			tt.apply(b)
			b.URL("after.json")

			if !errors.Is(b.Err(), easyuierrors.ErrInvalidColumn) {
				t.Fatalf("expected ErrInvalidColumn, got %v", b.Err())
			}
			needle := string(easyuierrors.ErrorFieldIndex) + ": " + tt.index
			if !strings.Contains(b.Err().Error(), needle) {
				t.Fatalf("expected %q in error, got %q", needle, b.Err().Error())
			}
			if _, ok := grid.Options()["url"]; ok {
				t.Fatalf("expected options untouched after failure")
			}
			if _, err := b.ToHTMLString(); !errors.Is(err, easyuierrors.ErrInvalidColumn) {
				t.Fatalf("expected render to report the failure, got %v", err)
			}
		})
	}
}

func TestNewDataGridBuilder_Nil(t *testing.T) {
	if _, err := NewDataGridBuilder(nil); !errors.Is(err, easyuierrors.ErrNilComponent) {
		t.Fatalf("expected ErrNilComponent, got %v", err)
	}
}
