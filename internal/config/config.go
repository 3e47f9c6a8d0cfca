package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/packcast/packet"
)

var (
	ErrNoRecords      = errors.New("config: capture has no records")
	ErrPayloadTooLong = errors.New("config: payload longer than the fixed payload size")
)

// Capture is a decoded capture file: a batch of fixed-size records for the
// dump tool to classify.
type Capture struct {
	Name    string
	Packets []packet.Packet
}

type fileCapture struct {
	Name    string       `toml:"name"`
	Records []fileRecord `toml:"record"`
}

type fileRecord struct {
	Kind    string `toml:"kind"`
	Payload string `toml:"payload"`
}

// LoadCapture reads a TOML capture file. Kinds may be named ("ping",
// "pong", "status") or numeric ("2", "0x02"); payloads are hex strings of
// at most packet.PayloadSize bytes, zero-padded on the right.
func LoadCapture(path string) (Capture, error) {
	var raw fileCapture
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Capture{}, fmt.Errorf("load capture: %w", err)
	}

	capture := Capture{Name: "capture"}
	if meta.IsDefined("name") {
		if name := strings.TrimSpace(raw.Name); name != "" {
			capture.Name = name
		}
	}

	if len(raw.Records) == 0 {
		return Capture{}, ErrNoRecords
	}
	for i, rec := range raw.Records {
		p, err := buildPacket(rec)
		if err != nil {
			return Capture{}, fmt.Errorf("record %d: %w", i, err)
		}
		capture.Packets = append(capture.Packets, p)
	}
	return capture, nil
}

func buildPacket(rec fileRecord) (packet.Packet, error) {
	kind, err := parseKind(rec.Kind)
	if err != nil {
		return packet.Packet{}, err
	}
	payload, err := parsePayload(rec.Payload)
	if err != nil {
		return packet.Packet{}, err
	}
	return packet.New(kind, payload), nil
}

func parseKind(raw string) (packet.Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "ping":
		return packet.KindPing, nil
	case "pong":
		return packet.KindPong, nil
	case "status":
		return packet.KindStatus, nil
	}
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("config: bad kind %q: %w", raw, err)
	}
	return packet.Kind(v), nil
}

func parsePayload(raw string) ([packet.PayloadSize]byte, error) {
	var payload [packet.PayloadSize]byte
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return payload, fmt.Errorf("config: bad payload hex %q: %w", raw, err)
	}
	if len(b) > packet.PayloadSize {
		return payload, ErrPayloadTooLong
	}
	copy(payload[:], b)
	return payload, nil
}
