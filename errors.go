package easyui

import "github.com/ygrebnov/easyui/errors"

// Sentinel errors re-exported for callers that only import the root package.
// Use errors.Is to match.
var (
	ErrNilComponent      = errors.ErrNilComponent
	ErrNilBuilder        = errors.ErrNilBuilder
	ErrNilAttributes     = errors.ErrNilAttributes
	ErrNilOptions        = errors.ErrNilOptions
	ErrNilObject         = errors.ErrNilObject
	ErrNilWriter         = errors.ErrNilWriter
	ErrUnsupportedObject = errors.ErrUnsupportedObject
	ErrUnsupportedValue  = errors.ErrUnsupportedValue
	ErrRender            = errors.ErrRender
)
