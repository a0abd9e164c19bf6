// Package dictionary provides the string-keyed mapping used for component
// HTML attributes and options, together with the adapter that turns plain
// data carriers (structs and maps) into such mappings.
package dictionary

import (
	"maps"
	"slices"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/errors"
	"github.com/ygrebnov/easyui/internal/core"
)

// Dictionary is a string-keyed mapping of values. Methods mutate the
// receiver in place, so a Dictionary obtained from a component is the
// component's own state.
type Dictionary map[string]any

// MergePolicy decides what MergeWith does when a key is present on both sides.
type MergePolicy int

const (
	// Overwrite replaces existing values with incoming ones (last write wins).
	Overwrite MergePolicy = iota
	// KeepExisting leaves existing values untouched.
	KeepExisting
	// ErrorOnDuplicate rejects the merge with ErrDuplicateKey.
	ErrorOnDuplicate
)

// New returns an empty Dictionary.
func New() Dictionary {
	return make(Dictionary)
}

// Clear removes all entries.
func (d Dictionary) Clear() {
	clear(d)
}

// Merge copies src into d, overwriting values for keys already present.
func (d Dictionary) Merge(src map[string]any) {
	maps.Copy(d, src)
}

// MergeWith copies src into d following policy. With ErrorOnDuplicate,
// d is left unchanged when any key collides.
func (d Dictionary) MergeWith(src map[string]any, policy MergePolicy) error {
	switch policy {
	case KeepExisting:
		for k, v := range src {
			if _, exists := d[k]; !exists {
				d[k] = v
			}
		}
	case ErrorOnDuplicate:
		for _, k := range slices.Sorted(maps.Keys(src)) {
			if _, exists := d[k]; exists {
				return errorc.With(errors.ErrDuplicateKey, errorc.String(errors.ErrorFieldKey, k))
			}
		}
		maps.Copy(d, src)
	default:
		maps.Copy(d, src)
	}
	return nil
}

// Keys returns the keys of d in sorted order.
func (d Dictionary) Keys() []string {
	return slices.Sorted(maps.Keys(d))
}

// Clone returns a shallow copy of d.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	maps.Copy(out, d)
	return out
}

// FromObject converts a plain data carrier into a Dictionary.
//
// Accepted inputs are maps with string keys, structs and non-nil pointers to
// structs. Struct fields are read when exported; the `easyui` tag overrides
// the key (`easyui:"data-role"`), `easyui:"-"` skips the field and the
// `omitempty` option drops zero values. Without a tag the key is the field
// name with its leading capitals lowered and underscores turned into dashes.
// Embedded structs are flattened; fields declared on the outer struct win.
func FromObject(obj any) (Dictionary, error) {
	m, err := core.ObjectToMap(obj)
	if err != nil {
		return nil, err
	}
	return Dictionary(m), nil
}
