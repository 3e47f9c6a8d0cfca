package packet

import (
	"errors"

	"github.com/danmuck/packcast/cast"
)

// ErrPongOpaque rejects every pong downcast: pong records are declared
// members of the family but carry no typed view of their own.
var ErrPongOpaque = errors.New("packet: pong records have no typed view")

// PingPacket reads the payload as the opaque echo bytes a peer must copy
// into its pong reply. Layout-identical to Packet.
type PingPacket Packet

// PongPacket is the declared pong refinement. Its relation never holds,
// which keeps "declared subtype" and "convertible subtype" distinct: code
// can name the pong shape without any record ever satisfying it.
type PongPacket Packet

var (
	// Ping relates the base record to its ping refinement.
	Ping = cast.MustDeclare[Packet, PingPacket](kindIs(KindPing))
	// Pong is declared but rejects every record with ErrPongOpaque.
	Pong = cast.MustDeclare[Packet, PongPacket](cast.Never[Packet](ErrPongOpaque))
)

// Kind returns the record's discriminant.
func (p *PingPacket) Kind() Kind { return (*Packet)(p).Kind() }

// RawPayload returns a copy of the payload region.
func (p *PingPacket) RawPayload() []byte { return (*Packet)(p).RawPayload() }

// Echo returns the bytes a pong reply must carry back.
func (p *PingPacket) Echo() [PayloadSize]byte { return p.data }

// Kind returns the record's discriminant.
func (p *PongPacket) Kind() Kind { return (*Packet)(p).Kind() }

// RawPayload returns a copy of the payload region.
func (p *PongPacket) RawPayload() []byte { return (*Packet)(p).RawPayload() }

// Echo returns the bytes copied back from the matching ping.
func (p *PongPacket) Echo() [PayloadSize]byte { return p.data }
