package errors

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/easyui/constants"
)

var namespace = errorc.Namespace(constants.Namespace)

// Sentinel errors. Use errors.Is to match.
var (
	ErrNilComponent      = namespace.NewError("nil component")
	ErrNilBuilder        = namespace.NewError("nil builder")
	ErrNilAttributes     = namespace.NewError("nil html attributes")
	ErrNilOptions        = namespace.NewError("nil options")
	ErrNilObject         = namespace.NewError("nil object")
	ErrNilWriter         = namespace.NewError("nil writer")
	ErrUnsupportedObject = namespace.NewError("object must be a struct, a pointer to struct or a string-keyed map")
	ErrUnsupportedValue  = namespace.NewError("value cannot be encoded")
	ErrDuplicateKey      = namespace.NewError("duplicate key")
	ErrInvalidColumn     = namespace.NewError("column must have a non-empty field")
	ErrInvalidTab        = namespace.NewError("tab must have a non-empty title")
	ErrRender            = namespace.NewError("cannot render component")
)

var newKey = errorc.KeyFactory(constants.ErrorFieldNamespace)

// Internal hierarchical segments used to build dotted keys.
const (
	keySegmentArgument   = "argument"
	keySegmentObject     = "object"
	keySegmentDictionary = "dictionary"
	keySegmentComponent  = "component"
)

// Exported structured error field keys
var (
	ErrorFieldArgumentName = newKey("name", keySegmentArgument) // easyui.argument.name
	ErrorFieldArgumentType = newKey("type", keySegmentArgument) // easyui.argument.type
)

var (
	ErrorFieldObjectType = newKey("type", keySegmentObject) // easyui.object.type
	ErrorFieldValueType  = newKey("value_type", keySegmentObject)
)

var (
	ErrorFieldKey = newKey("key", keySegmentDictionary) // easyui.dictionary.key
)

var (
	ErrorFieldPlugin = newKey("plugin", keySegmentComponent) // easyui.component.plugin
	ErrorFieldID     = newKey("id", keySegmentComponent)     // easyui.component.id
	ErrorFieldIndex  = newKey("index", keySegmentComponent)  // easyui.component.index
)

var (
	ErrorFieldCause = newKey("cause")
)
