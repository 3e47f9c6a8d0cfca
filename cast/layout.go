package cast

import (
	"fmt"
	"reflect"
)

// checkLayout gates relation declaration. Reinterpreting memory between two
// types is only sound when both are plain fixed-size data of the same size;
// for structs, any field the two declare under the same name must also sit
// at the same offset with the same size.
func checkLayout(base, sub reflect.Type) error {
	if kind, ok := firstIndirection(base); ok {
		return &LayoutError{Base: base, Sub: sub,
			Reason: fmt.Sprintf("base contains %s data", kind)}
	}
	if kind, ok := firstIndirection(sub); ok {
		return &LayoutError{Base: base, Sub: sub,
			Reason: fmt.Sprintf("subtype contains %s data", kind)}
	}
	if base.Size() != sub.Size() {
		return &LayoutError{Base: base, Sub: sub,
			Reason: fmt.Sprintf("size mismatch: %d != %d", sub.Size(), base.Size())}
	}
	if base.Kind() == reflect.Struct && sub.Kind() == reflect.Struct {
		if err := checkSharedFields(base, sub); err != nil {
			return err
		}
	}
	return nil
}

// firstIndirection reports the kind of the first non-value component found
// in t, walking nested structs and arrays.
func firstIndirection(t reflect.Type) (reflect.Kind, bool) {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return 0, false
	case reflect.Array:
		return firstIndirection(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if kind, ok := firstIndirection(t.Field(i).Type); ok {
				return kind, true
			}
		}
		return 0, false
	default:
		return t.Kind(), true
	}
}

// checkSharedFields requires offset and size agreement for every top-level
// field name the two struct types have in common.
func checkSharedFields(base, sub reflect.Type) error {
	for i := 0; i < sub.NumField(); i++ {
		sf := sub.Field(i)
		bf, ok := base.FieldByName(sf.Name)
		if !ok {
			continue
		}
		if bf.Offset != sf.Offset {
			return &LayoutError{Base: base, Sub: sub,
				Reason: fmt.Sprintf("field %s at offset %d in subtype, %d in base",
					sf.Name, sf.Offset, bf.Offset)}
		}
		if bf.Type.Size() != sf.Type.Size() {
			return &LayoutError{Base: base, Sub: sub,
				Reason: fmt.Sprintf("field %s is %d bytes in subtype, %d in base",
					sf.Name, sf.Type.Size(), bf.Type.Size())}
		}
	}
	return nil
}
