// Package packet owns the fixed-size tagged record family used over the
// node link: an 8-byte base record plus the ping, pong, and status
// refinements declared over it.
//
// Ownership boundary:
// - base record layout, wire encode/decode
// - subtype layouts, accessors, and their cast relations
// - the shared read surface (Raw) generic consumers program against
package packet
