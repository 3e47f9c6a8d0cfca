package packet

import (
	"encoding/binary"

	"github.com/danmuck/packcast/cast"
)

const (
	nodeIDLen = 4
	// StatusCount is the number of status bytes in a status payload.
	StatusCount = PayloadSize - nodeIDLen
)

// StatusPacket reads the payload as a node status report: a 4-byte
// big-endian node id followed by three status bytes. Layout-identical to
// Packet; instances only exist behind the Status relation's checked
// operations.
type StatusPacket Packet

// Status relates the base record to its status refinement: valid exactly
// when the discriminant is KindStatus, rejected with *WrongKindError
// otherwise.
var Status = cast.MustDeclare[Packet, StatusPacket](kindIs(KindStatus))

// kindIs is the common discriminant predicate shape.
func kindIs(want Kind) cast.Predicate[Packet] {
	return func(p *Packet) error {
		if p.kind != want {
			return &WrongKindError{Want: want, Got: p.kind}
		}
		return nil
	}
}

// Kind returns the record's discriminant.
func (s *StatusPacket) Kind() Kind { return (*Packet)(s).Kind() }

// RawPayload returns a copy of the payload region.
func (s *StatusPacket) RawPayload() []byte { return (*Packet)(s).RawPayload() }

// NodeID returns the reporting node's id.
func (s *StatusPacket) NodeID() uint32 {
	return binary.BigEndian.Uint32(s.data[:nodeIDLen])
}

// Status returns status byte i. i must be in [0, StatusCount).
func (s *StatusPacket) Status(i int) byte {
	if i < 0 || i >= StatusCount {
		panic("packet: status index out of range")
	}
	return s.data[nodeIDLen+i]
}

// SetStatus overwrites status byte i and nothing else. Callers must hold
// the record's exclusive view.
func (s *StatusPacket) SetStatus(i int, v byte) {
	if i < 0 || i >= StatusCount {
		panic("packet: status index out of range")
	}
	s.data[nodeIDLen+i] = v
}
