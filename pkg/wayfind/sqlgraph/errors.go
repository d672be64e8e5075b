package sqlgraph

import "errors"

// ErrStoreClosed indicates an operation on a closed store.
var ErrStoreClosed = errors.New("sqlgraph: store is closed")
