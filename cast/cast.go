package cast

import (
	"reflect"
	"unsafe"
)

// Predicate decides whether a base record may currently be treated as the
// relation's subtype. A nil result means valid; a non-nil result is the
// relation's rejection kind. Predicates must be deterministic over the
// record's bytes and must not mutate the record.
type Predicate[B any] func(*B) error

// Relation binds subtype S to base B under a validity predicate. The zero
// value is not usable; Declare and MustDeclare are the only constructors.
type Relation[B, S any] struct {
	check Predicate[B]
}

// Declare registers S as a checked refinement of B. It fails unless the two
// types are layout-compatible: identical size, no indirections in either
// layout, and identical offset and size for every field the two structs
// share by name.
func Declare[B, S any](check Predicate[B]) (Relation[B, S], error) {
	if check == nil {
		return Relation[B, S]{}, ErrNilPredicate
	}
	bt := reflect.TypeOf((*B)(nil)).Elem()
	st := reflect.TypeOf((*S)(nil)).Elem()
	if err := checkLayout(bt, st); err != nil {
		return Relation[B, S]{}, err
	}
	return Relation[B, S]{check: check}, nil
}

// MustDeclare is Declare that panics on a bad declaration. Intended for
// package-level relation variables.
func MustDeclare[B, S any](check Predicate[B]) Relation[B, S] {
	r, err := Declare[B, S](check)
	if err != nil {
		panic(err)
	}
	return r
}

// Never builds a predicate that rejects every record with err, for
// relations that are declared but can never hold. A nil err is replaced
// with ErrNoConversion.
func Never[B any](err error) Predicate[B] {
	if err == nil {
		err = ErrNoConversion
	}
	return func(*B) error { return err }
}

// Check runs the relation's predicate without converting anything.
func (r Relation[B, S]) Check(b *B) error {
	if r.check == nil {
		return ErrUndeclared
	}
	return r.check(b)
}

// Convert consumes a base record by value and returns it reborn as the
// subtype. On rejection the zero S and the predicate's verdict are
// returned; the caller's record is untouched, so nothing is lost on
// failure.
func (r Relation[B, S]) Convert(b B) (S, error) {
	var s S
	if err := r.Check(&b); err != nil {
		return s, err
	}
	s = *(*S)(unsafe.Pointer(&b))
	return s, nil
}

// View derives a shared subtype view over the same memory as b. The view is
// valid for as long as b is; many shared views of the same or different
// subtypes may coexist. Callers must treat the view as read-only: only the
// subtype's accessors, never its mutators, may be called through it. A
// single *S cannot carry a write-free method set, so the read-only rule is
// a caller contract rather than a compile-time one; Exclusive is the
// operation that licenses mutation.
func (r Relation[B, S]) View(b *B) (*S, error) {
	if err := r.Check(b); err != nil {
		return nil, err
	}
	return (*S)(unsafe.Pointer(b)), nil
}

// Exclusive derives an exclusive subtype view over the same memory as b.
// The caller must hold the only live reference to the record for the
// lifetime of the view; under that contract the discriminant cannot change
// underneath the view, so the subtype's mutators may be called through it.
func (r Relation[B, S]) Exclusive(b *B) (*S, error) {
	if err := r.Check(b); err != nil {
		return nil, err
	}
	return (*S)(unsafe.Pointer(b)), nil
}

// Upcast returns the base-typed value of an owned subtype. For a declared
// relation it never fails: every valid subtype instance is a valid base
// instance, and the bytes are carried over unchanged. Panics on the zero
// Relation, whose layout gate never ran.
func (r Relation[B, S]) Upcast(s S) B {
	if r.check == nil {
		panic(ErrUndeclared)
	}
	return *(*B)(unsafe.Pointer(&s))
}
