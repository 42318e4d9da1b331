package codee_test

import (
	"encoding/base64"
	"errors"
	"sync"
	"testing"

	"github.com/unkn0wn-root/codee"
	"github.com/unkn0wn-root/codee/codec/jsoncodec"
	"github.com/unkn0wn-root/codee/codec/msgpackcodec"
	"github.com/unkn0wn-root/codee/codec/text"
	"github.com/unkn0wn-root/codee/internal/codectest"
)

type recHooks struct {
	mu       sync.Mutex
	encFail  []string
	decFail  []string
	rejected []int
}

func (h *recHooks) EncodeFailed(c string, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.encFail = append(h.encFail, c)
}

func (h *recHooks) DecodeFailed(c string, _ int, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.decFail = append(h.decFail, c)
}

func (h *recHooks) PayloadRejected(_ string, size, _ int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejected = append(h.rejected, size)
}

func (h *recHooks) VersionMismatch(string, uint16, uint16) {}

func TestBase64WrapsBinaryCodec(t *testing.T) {
	c := codee.Base64[record]{Inner: msgpackcodec.Msgpack[record]{}}
	codectest.Kind[record, string](t, c)

	s := codectest.RoundTrip[record, string](t, c, record{Field: 42})
	if _, err := base64.StdEncoding.DecodeString(s); err != nil {
		t.Fatalf("not std base64: %q", s)
	}

	de := codectest.Malformed[record, string](t, c, "!!not base64!!")
	if de.Codec != codee.Base64Name || !errors.Is(de, codee.ErrMalformed) {
		t.Fatalf("unexpected error %v", de)
	}

	// valid base64, invalid msgpack: inner error passes through untouched
	de = codectest.Malformed[record, string](t, c, base64.StdEncoding.EncodeToString([]byte{0xc1}))
	if de.Codec != msgpackcodec.Name {
		t.Fatalf("expected msgpack tag, got %q", de.Codec)
	}
}

func TestBase64CustomEncoding(t *testing.T) {
	c := codee.Base64[record]{Inner: msgpackcodec.Msgpack[record]{}, Encoding: base64.RawURLEncoding}
	s := codectest.RoundTrip[record, string](t, c, record{Field: 7})
	if _, err := base64.RawURLEncoding.DecodeString(s); err != nil {
		t.Fatalf("not raw url base64: %q", s)
	}
}

func TestOptionText(t *testing.T) {
	c := codee.Option[int32, string]{Inner: text.FromToString[int32]{}}
	codectest.Kind[*int32, string](t, c)

	n := int32(42)
	s := codectest.RoundTrip[*int32, string](t, c, &n)
	if s != "~<|Some|>~42" {
		t.Fatalf("some encoding=%q", s)
	}
	s = codectest.RoundTrip[*int32, string](t, c, nil)
	if s != "~<|None|>~" {
		t.Fatalf("none encoding=%q", s)
	}

	codectest.Malformed[*int32, string](t, c, "42")
	de := codectest.Malformed[*int32, string](t, c, "~<|Some|>~abc")
	if de.Codec != text.Name {
		t.Fatalf("inner failure should keep inner tag, got %q", de.Codec)
	}
}

func TestOptionTextEmptyStringIsDistinctFromNone(t *testing.T) {
	c := codee.Option[string, string]{Inner: text.FromToString[string]{}}
	empty := ""
	got := codectest.MustDecode[*string, string](t, c, codectest.MustEncode[*string, string](t, c, &empty))
	if got == nil || *got != "" {
		t.Fatalf("expected pointer to empty string, got %v", got)
	}
}

func TestOptionBinary(t *testing.T) {
	c := codee.Option[record, []byte]{Inner: msgpackcodec.Msgpack[record]{}}
	codectest.Kind[*record, []byte](t, c)

	b := codectest.RoundTrip[*record, []byte](t, c, &record{Field: 3})
	if b[0] != 1 {
		t.Fatalf("expected some tag, got %x", b[0])
	}
	b = codectest.RoundTrip[*record, []byte](t, c, nil)
	if len(b) != 1 || b[0] != 0 {
		t.Fatalf("expected none tag, got %x", b)
	}

	codectest.Malformed[*record, []byte](t, c, nil)
	codectest.Malformed[*record, []byte](t, c, []byte{2})
	codectest.Malformed[*record, []byte](t, c, []byte{0, 0})
}

func TestLimit(t *testing.T) {
	h := &recHooks{}
	c := codee.Limit[record, string]{
		Inner:     jsoncodec.JSON[record]{},
		MaxDecode: 16,
		MaxEncode: 14,
		Hooks:     h,
	}
	codectest.Kind[record, string](t, c)
	codectest.RoundTrip[record, string](t, c, record{Field: 1}) // {"field":1} = 11 bytes

	if _, err := c.Encode(record{Field: 123456}); !errors.Is(err, codee.ErrPayloadTooLarge) {
		t.Fatalf("expected encode limit error, got %v", err)
	}
	de := codectest.Malformed[record, string](t, c, `{"field":1}           `)
	if !errors.Is(de, codee.ErrPayloadTooLarge) || de.Codec != codee.LimitName {
		t.Fatalf("expected decode limit error, got %v", de)
	}
	if len(h.rejected) != 2 || h.rejected[0] != 16 || h.rejected[1] != 22 {
		t.Fatalf("hooks saw %v", h.rejected)
	}
}

func TestLimitDisabled(t *testing.T) {
	c := codee.Limit[record, string]{Inner: jsoncodec.JSON[record]{}}
	codectest.RoundTrip[record, string](t, c, record{Field: 1 << 40})
}

func TestObserveReportsFailures(t *testing.T) {
	h := &recHooks{}
	c := codee.Observe[int8, string]("level", text.FromToString[int8]{}, h)
	codectest.Kind[int8, string](t, c)
	codectest.RoundTrip[int8, string](t, c, -5)

	codectest.Malformed[int8, string](t, c, "300")
	if len(h.decFail) != 1 || h.decFail[0] != "level" {
		t.Fatalf("decode failures=%v", h.decFail)
	}

	u := codee.Observe[chan int, string]("chan", text.FromToString[chan int]{}, h)
	if _, err := u.Encode(make(chan int)); !errors.Is(err, codee.ErrUnsupported) {
		t.Fatalf("expected unsupported, got %v", err)
	}
	if len(h.encFail) != 1 || h.encFail[0] != "chan" {
		t.Fatalf("encode failures=%v", h.encFail)
	}
}

func TestObserveNilHooks(t *testing.T) {
	c := codee.Observe[int, string]("n", text.FromToString[int]{}, nil)
	codectest.Malformed[int, string](t, c, "x")
}
