// Package cast owns checked same-size subtype conversions.
//
// Ownership boundary:
// - relation declaration and the layout compatibility gate
// - the three downcast operations (value, shared view, exclusive view)
// - value-level upcast back to the base record
//
// A relation binds a base record type to a layout-compatible subtype under
// a validity predicate. The raw memory reinterpretation is an internal
// detail; the checked operations are the only entry points.
package cast
