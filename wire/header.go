// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wire

import "encoding/binary"

// ProtocolVersion is the only wire version this package understands.
// Defined once, here, per the distilled spec's note that the source
// declared it twice and the two copies must never diverge.
const ProtocolVersion uint16 = 0x0001

// HeaderSize is the fixed, packed size of Header on the wire.
const HeaderSize = 8

// Flags is a bitmask of protocol flags, opaque to this package.
type Flags uint8

// Recognized flag bits. wire does not interpret any of them; it only
// carries them across the wire unchanged.
const (
	FlagNone       Flags = 0x00
	FlagCompressed Flags = 0x01
	FlagEncrypted  Flags = 0x02
	FlagUrgent     Flags = 0x04
)

// Header is the 8-byte control block carried inside every frame.
type Header struct {
	Version    uint16
	MsgType    uint8
	Flags      Flags
	PayloadLen uint32
}

// encode writes h in wire order into buf, which must be at least
// HeaderSize bytes.
func (h Header) encode(buf []byte) {
	binary.BigEndian.PutUint16(buf[0:2], h.Version)
	buf[2] = h.MsgType
	buf[3] = byte(h.Flags)
	binary.BigEndian.PutUint32(buf[4:8], h.PayloadLen)
}

// decodeHeader reads a Header in host order from buf, which must be at
// least HeaderSize bytes.
func decodeHeader(buf []byte) Header {
	return Header{
		Version:    binary.BigEndian.Uint16(buf[0:2]),
		MsgType:    buf[2],
		Flags:      Flags(buf[3]),
		PayloadLen: binary.BigEndian.Uint32(buf[4:8]),
	}
}
