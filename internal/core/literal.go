package core

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/errors"
)

// JS is a JavaScript expression written verbatim into data-options,
// typically the name of a handler function.
type JS string

// maxDepth bounds nesting so that cyclic values fail instead of recursing forever.
const maxDepth = 100

var (
	typeJS       = reflect.TypeOf(JS(""))
	typeStringer = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// EncodeOptions renders options as the body of a JavaScript object literal,
// the form EasyUI reads from the data-options attribute: keys are sorted,
// pairs are separated by commas and the enclosing braces are omitted.
func EncodeOptions(options map[string]any) (string, error) {
	var sb strings.Builder
	if err := writeObjectBody(&sb, options, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// EncodeValue renders a single value as a JavaScript literal.
func EncodeValue(v any) (string, error) {
	var sb strings.Builder
	if err := writeValue(&sb, "", reflect.ValueOf(v), 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeObjectBody(sb *strings.Builder, m map[string]any, depth int) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		writeKey(sb, k)
		sb.WriteByte(':')
		if err := writeValue(sb, k, reflect.ValueOf(m[k]), depth); err != nil {
			return err
		}
	}
	return nil
}

func writeKey(sb *strings.Builder, k string) {
	if IsIdentifier(k) {
		sb.WriteString(k)
		return
	}
	writeString(sb, k)
}

func writeString(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
}

// writeValue encodes v; key names the enclosing option for error context.
func writeValue(sb *strings.Builder, key string, v reflect.Value, depth int) error {
	if !v.IsValid() {
		sb.WriteString("null")
		return nil
	}
	if depth > maxDepth {
		return unsupportedValue(key, v)
	}
	depth++
	if v.Type() == typeJS {
		sb.WriteString(v.String())
		return nil
	}

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			sb.WriteString("null")
			return nil
		}
		return writeValue(sb, key, v.Elem(), depth)
	case reflect.String:
		writeString(sb, v.String())
	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		sb.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		sb.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return unsupportedValue(key, v)
		}
		sb.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			sb.WriteString("null")
			return nil
		}
		sb.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := writeValue(sb, key, v.Index(i), depth); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return unsupportedValue(key, v)
		}
		if v.IsNil() {
			sb.WriteString("null")
			return nil
		}
		m := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		sb.WriteByte('{')
		if err := writeObjectBody(sb, m, depth); err != nil {
			return err
		}
		sb.WriteByte('}')
	case reflect.Struct:
		if v.Type().Implements(typeStringer) {
			writeString(sb, v.Interface().(fmt.Stringer).String())
			return nil
		}
		sb.WriteByte('{')
		if err := writeObjectBody(sb, StructToMap(v), depth); err != nil {
			return err
		}
		sb.WriteByte('}')
	default:
		return unsupportedValue(key, v)
	}
	return nil
}

func unsupportedValue(key string, v reflect.Value) error {
	return errorc.With(
		errors.ErrUnsupportedValue,
		errorc.String(errors.ErrorFieldKey, key),
		errorc.String(errors.ErrorFieldValueType, v.Type().String()),
	)
}
