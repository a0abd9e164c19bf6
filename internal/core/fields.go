package core

import (
	"reflect"
	"strings"
	"sync"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/constants"
	"github.com/ygrebnov/easyui/errors"
)

// FieldMeta describes how a single struct field maps to a dictionary entry.
type FieldMeta struct {
	Index     int
	Key       string
	OmitEmpty bool
	// Embedded is set for anonymous struct fields without an explicit key;
	// their fields are flattened into the parent.
	Embedded bool
}

// FieldCache holds parsed field metadata per struct type. It is safe for concurrent use.
type FieldCache struct {
	c cache // map[reflect.Type][]FieldMeta
}

type cache interface {
	Load(key any) (value any, ok bool)
	Store(key any, value any)
}

func NewFieldCache() *FieldCache {
	return &FieldCache{
		c: &sync.Map{},
	}
}

var defaultFieldCache = NewFieldCache()

// Fields returns the metadata of the exported fields of struct type t,
// parsing tags on the first call for each type.
func (c *FieldCache) Fields(t reflect.Type) []FieldMeta {
	if v, ok := c.c.Load(t); ok {
		return v.([]FieldMeta)
	}
	parsed := parseFields(t)
	// Store even empty result to avoid repeated parsing of types without exported fields.
	c.c.Store(t, parsed)
	return parsed
}

func parseFields(t reflect.Type) []FieldMeta {
	fields := make([]FieldMeta, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get(constants.TagName)
		if tag == constants.TagSkip {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		name = strings.TrimSpace(name)

		// Skip unexported fields, including embedded unexported types:
		// values reached through them cannot be read back with Interface.
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous && name == "" && isStructOrStructPtr(field.Type) {
			fields = append(fields, FieldMeta{Index: i, Embedded: true})
			continue
		}
		if name == "" {
			name = KeyName(field.Name)
		}
		fields = append(fields, FieldMeta{
			Index:     i,
			Key:       name,
			OmitEmpty: hasOption(opts, constants.TagOptionOmitEmpty),
		})
	}
	return fields
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if strings.TrimSpace(opt) == want {
			return true
		}
	}
	return false
}

func isStructOrStructPtr(t reflect.Type) bool {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// StructToMap converts a struct value into a string-keyed map following the
// field metadata of its type. Fields declared directly on a struct take
// precedence over fields promoted from embedded structs.
func StructToMap(rv reflect.Value) map[string]any {
	out := make(map[string]any)
	structToMap(defaultFieldCache, rv, out)
	return out
}

func structToMap(c *FieldCache, rv reflect.Value, out map[string]any) {
	metas := c.Fields(rv.Type())
	var embedded []reflect.Value
	for _, m := range metas {
		fv := rv.Field(m.Index)
		if m.Embedded {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			embedded = append(embedded, fv)
			continue
		}
		if m.OmitEmpty && fv.IsZero() {
			continue
		}
		out[m.Key] = fv.Interface()
	}
	for _, ev := range embedded {
		promoted := make(map[string]any)
		structToMap(c, ev, promoted)
		for k, v := range promoted {
			if _, exists := out[k]; !exists {
				out[k] = v
			}
		}
	}
}

// ObjectToMap converts a plain data carrier into a string-keyed map.
// Supported inputs: struct, non-nil pointer to struct, map with string keys.
func ObjectToMap(obj any) (map[string]any, error) {
	if obj == nil {
		return nil, errors.ErrNilObject
	}
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, errorc.With(
				errors.ErrNilObject,
				errorc.String(errors.ErrorFieldObjectType, reflect.TypeOf(obj).String()),
			)
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Struct:
		return StructToMap(rv), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return nil, errorc.With(
				errors.ErrNilObject,
				errorc.String(errors.ErrorFieldObjectType, rv.Type().String()),
			)
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	}
	return nil, errorc.With(
		errors.ErrUnsupportedObject,
		errorc.String(errors.ErrorFieldObjectType, rv.Type().String()),
	)
}
