package cast

import (
	"errors"
	"testing"
)

// frame is an 8-byte tagged test record: 1 tag byte, 7 body bytes.
type frame struct {
	tag  uint8
	body [7]byte
}

// stampedFrame refines frame with the same layout.
type stampedFrame struct {
	tag  uint8
	body [7]byte
}

type errWrongTag struct{ got uint8 }

func (e *errWrongTag) Error() string { return "wrong tag" }

func tagIs(want uint8) Predicate[frame] {
	return func(f *frame) error {
		if f.tag != want {
			return &errWrongTag{got: f.tag}
		}
		return nil
	}
}

func TestDeclareNilPredicate(t *testing.T) {
	_, err := Declare[frame, stampedFrame](nil)
	if !errors.Is(err, ErrNilPredicate) {
		t.Fatalf("expected ErrNilPredicate, got %v", err)
	}
}

func TestDeclareSizeMismatch(t *testing.T) {
	type shortFrame struct {
		tag  uint8
		body [6]byte
	}
	_, err := Declare[frame, shortFrame](tagIs(1))
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}
}

func TestDeclareRejectsIndirections(t *testing.T) {
	type slicedFrame struct {
		tag  uint8
		body []byte
	}
	_, err := Declare[frame, slicedFrame](tagIs(1))
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}

	type pointed struct {
		p *frame
	}
	_, err = Declare[pointed, pointed](func(*pointed) error { return nil })
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError for pointer field, got %v", err)
	}
}

func TestDeclareSharedFieldOffsetMismatch(t *testing.T) {
	type swapped struct {
		body [7]byte
		tag  uint8
	}
	_, err := Declare[frame, swapped](tagIs(1))
	var layoutErr *LayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected LayoutError, got %v", err)
	}
}

func TestConvertSuccessAndUpcast(t *testing.T) {
	rel := MustDeclare[frame, stampedFrame](tagIs(1))

	f := frame{tag: 1, body: [7]byte{1, 2, 3, 4, 5, 6, 7}}
	s, err := rel.Convert(f)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if s.tag != 1 || s.body != f.body {
		t.Fatalf("converted bytes differ: %+v", s)
	}

	back := rel.Upcast(s)
	if back != f {
		t.Fatalf("round trip mismatch: %+v != %+v", back, f)
	}
}

func TestConvertRejectionLeavesValueIntact(t *testing.T) {
	rel := MustDeclare[frame, stampedFrame](tagIs(1))

	f := frame{tag: 9, body: [7]byte{1, 2, 3, 4, 5, 6, 7}}
	orig := f
	s, err := rel.Convert(f)
	var wrongTag *errWrongTag
	if !errors.As(err, &wrongTag) || wrongTag.got != 9 {
		t.Fatalf("expected errWrongTag{9}, got %v", err)
	}
	if s != (stampedFrame{}) {
		t.Fatalf("rejection returned non-zero subtype: %+v", s)
	}
	if f != orig {
		t.Fatalf("rejection altered the input: %+v", f)
	}
}

func TestViewSharesMemory(t *testing.T) {
	rel := MustDeclare[frame, stampedFrame](tagIs(1))

	f := frame{tag: 1, body: [7]byte{0xaa, 0, 0, 0, 0, 0, 0xcc}}
	before := f

	v, err := rel.View(&f)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if f != before {
		t.Fatalf("deriving a view altered the record")
	}
	if v.body[6] != 0xcc {
		t.Fatalf("view reads wrong memory: %#x", v.body[6])
	}

	// Same memory: a write to the base is visible through the view.
	f.body[6] = 0xdd
	if v.body[6] != 0xdd {
		t.Fatalf("view is a copy, not an alias")
	}

	w, err := rel.View(&f)
	if err != nil {
		t.Fatalf("second view: %v", err)
	}
	if w != v {
		t.Fatalf("coexisting views disagree: %p != %p", w, v)
	}
}

func TestExclusiveMutationIsVisibleInBase(t *testing.T) {
	rel := MustDeclare[frame, stampedFrame](tagIs(1))

	f := frame{tag: 1}
	m, err := rel.Exclusive(&f)
	if err != nil {
		t.Fatalf("exclusive: %v", err)
	}
	m.body[0] = 0x12
	if f.body[0] != 0x12 {
		t.Fatalf("exclusive view does not alias the base record")
	}
	if f.tag != 1 {
		t.Fatalf("mutation leaked into the tag: %#x", f.tag)
	}
}

func TestNeverRelation(t *testing.T) {
	sentinel := errors.New("no stamped view")
	rel := MustDeclare[frame, stampedFrame](Never[frame](sentinel))

	f := frame{tag: 1}
	if _, err := rel.Convert(f); !errors.Is(err, sentinel) {
		t.Fatalf("convert: expected sentinel, got %v", err)
	}
	if _, err := rel.View(&f); !errors.Is(err, sentinel) {
		t.Fatalf("view: expected sentinel, got %v", err)
	}
	if _, err := rel.Exclusive(&f); !errors.Is(err, sentinel) {
		t.Fatalf("exclusive: expected sentinel, got %v", err)
	}
}

func TestNeverDefaultsToNoConversion(t *testing.T) {
	rel := MustDeclare[frame, stampedFrame](Never[frame](nil))
	f := frame{tag: 1}
	if _, err := rel.View(&f); !errors.Is(err, ErrNoConversion) {
		t.Fatalf("expected ErrNoConversion, got %v", err)
	}
}

func TestZeroRelationIsUndeclared(t *testing.T) {
	var rel Relation[frame, stampedFrame]
	f := frame{tag: 1}
	if _, err := rel.View(&f); !errors.Is(err, ErrUndeclared) {
		t.Fatalf("expected ErrUndeclared, got %v", err)
	}
}

func TestZeroRelationUpcastPanics(t *testing.T) {
	var rel Relation[frame, stampedFrame]
	defer func() {
		if recover() == nil {
			t.Fatalf("expected upcast through a zero relation to panic")
		}
	}()
	rel.Upcast(stampedFrame{tag: 1})
}
