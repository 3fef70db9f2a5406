package index

import "errors"

var (
	// ErrTooLarge signals a cardinality which cannot be represented.
	ErrTooLarge = errors.New("index: type too large to index")
	// ErrIndexOutOfRange signals an index not smaller than the codec's count.
	ErrIndexOutOfRange = errors.New("index: index out of range")
	// ErrValueNotFound signals a value outside of the codec's domain.
	ErrValueNotFound = errors.New("index: value not in domain")
	// ErrInvalidCodec signals invalid codec parameters, e.g. duplicate values.
	ErrInvalidCodec = errors.New("index: invalid codec")
)
