package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func mustDecodeFrame(t *testing.T, b []byte) (uint16, []byte) {
	t.Helper()
	ver, p, err := DecodeFrame(b)
	if err != nil {
		t.Fatalf("DecodeFrame error: %v", err)
	}
	return ver, p
}

func TestFrameRTEmptyAndNonEmpty(t *testing.T) {
	cases := []struct {
		version uint16
		payload []byte
	}{
		{0, nil},
		{42, []byte("hello")},
		{math.MaxUint16, []byte{0, 1, 2, 3, 4}},
	}
	for _, tc := range cases {
		enc := EncodeFrame(tc.version, tc.payload)
		if len(enc) != hdrLen+len(tc.payload) {
			t.Fatalf("frame len=%d want %d", len(enc), hdrLen+len(tc.payload))
		}
		ver, p := mustDecodeFrame(t, enc)
		if ver != tc.version {
			t.Fatalf("version mismatch: got %d want %d", ver, tc.version)
		}
		if !bytes.Equal(p, tc.payload) {
			t.Fatalf("payload mismatch: got %x want %x", p, tc.payload)
		}
	}
}

func TestFrameLayout(t *testing.T) {
	enc := EncodeFrame(0x0102, []byte("ab"))
	want := []byte{'C', 'D', 'E', 'E', format, 0x01, 0x02, 0, 0, 0, 2, 'a', 'b'}
	if !bytes.Equal(enc, want) {
		t.Fatalf("got %x want %x", enc, want)
	}
}

func TestFrameRejectsTrailingBytes(t *testing.T) {
	enc := EncodeFrame(7, []byte("x"))
	enc = append(enc, 0xDE, 0xAD) // add junk
	if _, _, err := DecodeFrame(enc); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt on trailing bytes, got %v", err)
	}
}

func TestFrameCorruptHeadersAndLengths(t *testing.T) {
	enc := EncodeFrame(1, []byte("abc"))

	// bad magic
	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeFrame(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	// unknown frame format
	badFormat := append([]byte(nil), enc...)
	badFormat[4] = format + 1
	if _, _, err := DecodeFrame(badFormat); err == nil {
		t.Fatalf("expected error on bad format")
	}

	// plen too large (announce more than available)
	tooLong := append([]byte(nil), enc...)
	// plen is at offset 7..10 (4 magic +1 format +2 version)
	binary.BigEndian.PutUint32(tooLong[7:11], uint32(len("abc")+1))
	if _, _, err := DecodeFrame(tooLong); err == nil {
		t.Fatalf("expected error on plen beyond buffer")
	}

	// truncated buffer, down to nothing
	for n := 0; n < len(enc); n++ {
		if _, _, err := DecodeFrame(enc[:n]); err == nil {
			t.Fatalf("expected error on %d-byte prefix", n)
		}
	}
}

func TestFrameZeroCopyPayload(t *testing.T) {
	enc := EncodeFrame(1, []byte("Z"))
	_, p := mustDecodeFrame(t, enc)
	if len(p) != 1 {
		t.Fatalf("unexpected payload len")
	}
	// mutate payload slice. should mutate underlying enc bytes (zero-copy)
	p[0] = 'Q'
	_, p2 := mustDecodeFrame(t, enc)
	if p2[0] != 'Q' {
		t.Fatalf("expected zero-copy slice into enc buffer")
	}
}
