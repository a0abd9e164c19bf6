package constants

const Namespace = "easyui"

// ErrorFieldNamespace for all exported error field keys.
const ErrorFieldNamespace = Namespace

// ClassPrefix is prepended to a plugin name to form the class that activates it.
const ClassPrefix = "easyui-"

// Struct tag read by the object to dictionary adapter.
const TagName = "easyui"

const (
	TagOptionOmitEmpty = "omitempty"
	TagSkip            = "-"
)

// Reserved HTML attribute names managed by components.
const (
	AttributeID          = "id"
	AttributeClass       = "class"
	AttributeDataOptions = "data-options"
	AttributeTitle       = "title"
)
