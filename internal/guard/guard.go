package guard

import (
	"reflect"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/errors"
)

// IsNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, channel or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// NotNil returns sentinel annotated with the argument name when v is nil.
func NotNil(v any, sentinel error, argument string) error {
	if !IsNil(v) {
		return nil
	}
	if v == nil {
		return errorc.With(sentinel, errorc.String(errors.ErrorFieldArgumentName, argument))
	}
	return errorc.With(
		sentinel,
		errorc.String(errors.ErrorFieldArgumentName, argument),
		errorc.String(errors.ErrorFieldArgumentType, reflect.TypeOf(v).String()),
	)
}
