// Package wire implements the fixed-width control-protocol frame used
// between the engine and the companion CLI: one byte tag, four bytes
// of little-endian value.
package wire

import "encoding/binary"

// FrameSize is the number of bytes in one control frame.
const FrameSize = 5

// Tag identifies the kind of control request carried by a Sequence.
type Tag uint8

const (
	Workspace Tag = 0x00
	Kill      Tag = 0x01
	Close     Tag = 0x02

	PaddingTop    Tag = 0x03
	PaddingBottom Tag = 0x04
	PaddingLeft   Tag = 0x05
	PaddingRight  Tag = 0x06

	WindowGaps Tag = 0x07

	FocusedBorder Tag = 0x08
	NormalBorder  Tag = 0x09
	BorderWidth   Tag = 0x0A

	FocusUp     Tag = 0x0B
	FocusDown   Tag = 0x0C
	FocusMaster Tag = 0x0D

	FloatToggle Tag = 0x0E
	FloatLeft   Tag = 0x0F
	FloatRight  Tag = 0x10
	FloatUp     Tag = 0x11
	FloatDown   Tag = 0x12

	ResizeLeft  Tag = 0x13
	ResizeRight Tag = 0x14
	ResizeUp    Tag = 0x15
	ResizeDown  Tag = 0x16

	EnableMouse  Tag = 0x17
	DisableMouse Tag = 0x18

	WorkspacePerMonitor Tag = 0x19
	MonitorCirculate    Tag = 0x1A
	Quit                Tag = 0x1B

	// Unknown is the reserved tag for anything that doesn't decode to a
	// known request. It is never sent on the wire by yaxctl; it is what
	// an unrecognised byte 0 decodes to.
	Unknown Tag = 0xFE
)

// tagFromByte maps a raw tag byte to its Tag, falling back to Unknown
// for any value not in the table.
func tagFromByte(b byte) Tag {
	switch Tag(b) {
	case Workspace, Kill, Close,
		PaddingTop, PaddingBottom, PaddingLeft, PaddingRight,
		WindowGaps,
		FocusedBorder, NormalBorder, BorderWidth,
		FocusUp, FocusDown, FocusMaster,
		FloatToggle, FloatLeft, FloatRight, FloatUp, FloatDown,
		ResizeLeft, ResizeRight, ResizeUp, ResizeDown,
		EnableMouse, DisableMouse,
		WorkspacePerMonitor, MonitorCirculate, Quit:
		return Tag(b)
	default:
		return Unknown
	}
}

// Sequence is one decoded control request: a tag and its u32 payload.
type Sequence struct {
	Tag   Tag
	Value uint32
}

// Encode packs a Sequence into its 5-byte wire representation.
func Encode(s Sequence) []byte {
	buf := make([]byte, FrameSize)
	buf[0] = byte(s.Tag)
	binary.LittleEndian.PutUint32(buf[1:], s.Value)
	return buf
}

// Decode unpacks a 5-byte frame into a Sequence. The caller must only
// pass slices of exactly FrameSize bytes; frames of any other length
// are the caller's concern (see ChunkFrames), not Decode's — mirroring
// the original protocol's fixed-record assumption without panicking on
// it.
func Decode(frame []byte) Sequence {
	return Sequence{
		Tag:   tagFromByte(frame[0]),
		Value: binary.LittleEndian.Uint32(frame[1:5]),
	}
}

// ChunkFrames splits a raw byte buffer into zero or more decoded
// Sequences, 5 bytes at a time. Any trailing bytes shorter than
// FrameSize are silently discarded per the wire contract.
func ChunkFrames(data []byte) []Sequence {
	n := len(data) / FrameSize
	out := make([]Sequence, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Decode(data[i*FrameSize:(i+1)*FrameSize]))
	}
	return out
}
