package transform

import "errors"

var (
	errNotFitted     = errors.New("transform called before fit")
	errShapeMismatch = errors.New("column count differs from fitted data")
)
