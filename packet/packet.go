package packet

import (
	"errors"
	"fmt"
)

const (
	// Size is the fixed wire size of every record in the family.
	Size = 8
	// PayloadSize is the payload region following the kind byte.
	PayloadSize = 7
)

var ErrBadRecordLen = errors.New("packet: invalid record length")

// Kind is the discriminant identifying a record's current shape. It is the
// first byte of the wire layout for every subtype of the family.
type Kind uint8

const (
	KindPing   Kind = 0x00
	KindPong   Kind = 0x01
	KindStatus Kind = 0x02
)

func (k Kind) String() string {
	switch k {
	case KindPing:
		return "ping"
	case KindPong:
		return "pong"
	case KindStatus:
		return "status"
	default:
		return fmt.Sprintf("kind(0x%02x)", uint8(k))
	}
}

// WrongKindError rejects a downcast whose discriminant does not match the
// relation's kind.
type WrongKindError struct {
	Want Kind
	Got  Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("packet: wrong packet kind: want %s, got %s", e.Want, e.Got)
}

// Packet is the base record: one kind byte and an opaque 7-byte payload
// whose interpretation depends on the kind. The kind byte always reflects
// the record's true shape; only the checked downcast path may rely on a
// narrower interpretation of the payload.
type Packet struct {
	kind Kind
	data [PayloadSize]byte
}

// New builds a base record from a discriminant and raw payload bytes.
func New(kind Kind, payload [PayloadSize]byte) Packet {
	return Packet{kind: kind, data: payload}
}

// Kind returns the record's discriminant.
func (p *Packet) Kind() Kind { return p.kind }

// RawPayload returns a copy of the payload region.
func (p *Packet) RawPayload() []byte {
	out := make([]byte, PayloadSize)
	copy(out, p.data[:])
	return out
}

// SetRawPayload overwrites the entire payload region. Base-level mutator;
// no subtype view exposes it, since overwriting the payload under a
// narrower view would break that view's interpretation.
func (p *Packet) SetRawPayload(payload [PayloadSize]byte) {
	p.data = payload
}

// Encode serializes the record into its fixed wire layout.
func (p *Packet) Encode() []byte {
	buf := make([]byte, Size)
	buf[0] = byte(p.kind)
	copy(buf[1:], p.data[:])
	return buf
}

// AppendBinary appends the record's fixed wire layout to b. It implements
// encoding.BinaryAppender and never returns an error.
func (p *Packet) AppendBinary(b []byte) ([]byte, error) {
	b = append(b, byte(p.kind))
	return append(b, p.data[:]...), nil
}

// Decode parses one fixed-size record. The input must be exactly Size
// bytes; any discriminant value is accepted at this level.
func Decode(b []byte) (Packet, error) {
	if len(b) != Size {
		return Packet{}, ErrBadRecordLen
	}
	p := Packet{kind: Kind(b[0])}
	copy(p.data[:], b[1:])
	return p, nil
}

// Raw is the read surface shared by the base record and every subtype
// view. Generic consumers that only need the record's identity and bytes
// accept any member of the family through it.
type Raw interface {
	Kind() Kind
	RawPayload() []byte
}

var (
	_ Raw = (*Packet)(nil)
	_ Raw = (*StatusPacket)(nil)
	_ Raw = (*PingPacket)(nil)
	_ Raw = (*PongPacket)(nil)
)
