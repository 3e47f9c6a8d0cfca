package cast

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrNilPredicate = errors.New("cast: nil predicate")
	ErrUndeclared   = errors.New("cast: relation not declared")
	ErrNoConversion = errors.New("cast: no conversion")
)

// LayoutError reports why a subtype is not layout-compatible with its base.
type LayoutError struct {
	Base   reflect.Type
	Sub    reflect.Type
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("cast: %s is not layout-compatible with %s: %s", e.Sub, e.Base, e.Reason)
}
