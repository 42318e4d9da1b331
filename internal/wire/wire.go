package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	format byte = 1
	hdrLen      = 4 + 1 + 2 + 4
)

var (
	ErrCorrupt = errors.New("codee: corrupt frame")
	magic4     = [...]byte{'C', 'D', 'E', 'E'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame: magic(4) | format(1) | version(u16 be) | plen(u32 be) | payload(plen)
func EncodeFrame(version uint16, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(format)

	var u2 [2]byte
	var u4 [4]byte

	binary.BigEndian.PutUint16(u2[:], version)
	buf.Write(u2[:])

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeFrame validates the header and returns the payload as a subslice of b.
// Trailing bytes after the payload are rejected.
func DecodeFrame(b []byte) (version uint16, payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != format {
		return 0, nil, ErrCorrupt
	}

	off := 5

	version = binary.BigEndian.Uint16(b[off : off+2])
	off += 2

	plen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if plen < 0 || plen != len(b)-off { // overflow-safe; exact length
		return 0, nil, ErrCorrupt
	}

	return version, b[off : off+plen], nil
}
