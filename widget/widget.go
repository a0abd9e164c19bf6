// Package widget provides EasyUI widgets with their fluent builders.
package widget

import (
	"golang.org/x/net/html"

	"github.com/ygrebnov/easyui/dictionary"
	"github.com/ygrebnov/easyui/internal/markup"
)

// EasyUI plugin names.
const (
	PluginDataGrid = "datagrid"
	PluginMenu     = "menu"
	PluginTabs     = "tabs"
	PluginPanel    = "panel"
)

// itemAttributes converts a tagged options struct of a child element
// (column, menu item, tab) into its data-options attribute list.
func itemAttributes(options any, attrs ...html.Attribute) ([]html.Attribute, error) {
	d, err := dictionary.FromObject(options)
	if err != nil {
		return nil, err
	}
	a, ok, err := markup.DataOptions(d)
	if err != nil {
		return nil, err
	}
	if ok {
		attrs = append(attrs, a)
	}
	return attrs, nil
}
