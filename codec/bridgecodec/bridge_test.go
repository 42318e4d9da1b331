package bridgecodec

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/unkn0wn-root/codee"
	"github.com/unkn0wn-root/codee/internal/codectest"
)

type settings struct {
	Hello    string         `json:"hello"`
	Greeting string         `json:"greeting"`
	Count    int64          `json:"count"`
	Ratio    float64        `json:"ratio"`
	Extra    map[string]any `json:"extra,omitempty"`
}

func TestRoundTrip(t *testing.T) {
	c := Bridge[settings]{}
	codectest.Kind[settings, string](t, c)
	codectest.RoundTrip[settings, string](t, c, settings{
		Hello:    "world",
		Greeting: "Hi",
		Count:    1<<53 + 1, // not representable as float64
		Ratio:    0.25,
		Extra:    map[string]any{"n": int64(7), "f": 1.5, "s": "x"},
	})
}

func TestMigrateFillsMissingField(t *testing.T) {
	c := Bridge[settings]{Migrate: func(v any) (any, error) {
		if m, ok := v.(map[string]any); ok {
			if _, ok := m["greeting"]; !ok {
				m["greeting"] = "Hello"
			}
		}
		return v, nil
	}}
	got := codectest.MustDecode[settings, string](t, c, `{"hello":"world"}`)
	if got.Greeting != "Hello" || got.Hello != "world" {
		t.Fatalf("got %+v", got)
	}
}

func TestMigrateErrorIsDecodeError(t *testing.T) {
	boom := errors.New("unknown schema")
	c := Bridge[settings]{Migrate: func(any) (any, error) { return nil, boom }}
	de := codectest.Malformed[settings, string](t, c, `{}`)
	if !errors.Is(de, boom) {
		t.Fatalf("cause lost: %v", de)
	}
}

func TestMalformed(t *testing.T) {
	c := Bridge[settings]{}
	codectest.Malformed[settings, string](t, c, "{not json")
	codectest.Malformed[settings, string](t, c, `{"count":"many"}`)
	codectest.Malformed[settings, string](t, c, `{"count":1.5}`)
	for _, in := range []string{`{} {}`, `{"hello":"x"}}`, `{"hello":"x"} ]`, `{"hello":"x"},`} {
		de := codectest.Malformed[settings, string](t, c, in)
		if !errors.Is(de, codee.ErrMalformed) {
			t.Fatalf("Decode(%q): expected ErrMalformed, got %v", in, de)
		}
	}
	codectest.MustDecode[settings, string](t, c, "{\"hello\":\"x\"}\n\t ")
}

type stamped struct {
	At    time.Time  `json:"at"`
	Seen  *time.Time `json:"seen,omitempty"`
	Blob  []byte     `json:"blob"`
	Total *big.Int   `json:"total"`
}

func TestTextAndBytesFields(t *testing.T) {
	c := Bridge[stamped]{}
	seen := time.Date(2024, 1, 2, 3, 4, 5, 123456789, time.UTC)
	in := stamped{
		At:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Seen:  &seen,
		Blob:  []byte{1, 2, 0xff},
		Total: new(big.Int).Lsh(big.NewInt(1), 80),
	}
	got := codectest.MustDecode[stamped, string](t, c, codectest.MustEncode[stamped, string](t, c, in))
	if !got.At.Equal(in.At) || got.Seen == nil || !got.Seen.Equal(seen) {
		t.Fatalf("times: got %v / %v", got.At, got.Seen)
	}
	if !bytes.Equal(got.Blob, in.Blob) {
		t.Fatalf("blob: got %x", got.Blob)
	}
	if got.Total == nil || got.Total.Cmp(in.Total) != 0 {
		t.Fatalf("total: got %v", got.Total)
	}

	codectest.Malformed[stamped, string](t, c, `{"at":"yesterday"}`)
	codectest.Malformed[stamped, string](t, c, `{"blob":"%%%"}`)
}

func TestErrorUnused(t *testing.T) {
	c := Bridge[settings]{ErrorUnused: true}
	codectest.Malformed[settings, string](t, c, `{"hello":"x","nope":1}`)
}
