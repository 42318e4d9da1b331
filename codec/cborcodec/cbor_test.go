package cborcodec

import (
	"bytes"
	"testing"
	"time"

	"github.com/unkn0wn-root/codee/internal/codectest"
)

type event struct {
	Kind    string         `cbor:"kind"`
	Seq     uint64         `cbor:"seq"`
	At      time.Time      `cbor:"at"`
	Payload []byte         `cbor:"payload"`
	Meta    map[string]int `cbor:"meta"`
}

func sampleEvent() event {
	return event{
		Kind:    "created",
		Seq:     7,
		At:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Payload: []byte{0xde, 0xad},
		Meta:    map[string]int{"a": 1, "b": 2},
	}
}

func TestZeroValue(t *testing.T) {
	var c CBOR[event]
	codectest.Kind[event, []byte](t, c)
	codectest.RoundTrip[event, []byte](t, c, sampleEvent())
}

func TestNew(t *testing.T) {
	for _, det := range []bool{false, true} {
		c, err := New[event](Options{Deterministic: det})
		if err != nil {
			t.Fatalf("New(det=%v): %v", det, err)
		}
		codectest.RoundTrip[event, []byte](t, c, sampleEvent())
	}
}

func TestDeterministicSortsKeys(t *testing.T) {
	c := Must[map[string]int](Options{Deterministic: true})
	got := codectest.MustEncode[map[string]int, []byte](t, c, map[string]int{"b": 1, "a": 2})
	want := []byte{0xa2, 0x61, 'a', 0x02, 0x61, 'b', 0x01}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %x want %x", got, want)
	}
}

func TestMustPanicsOnInvalidOptions(t *testing.T) {
	if _, err := New[event](Options{MaxNestedLevels: 1}); err == nil {
		t.Fatalf("expected error for MaxNestedLevels=1")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Must[event](Options{MaxNestedLevels: 1})
}

func TestMalformed(t *testing.T) {
	c := Must[event](Options{})
	codectest.Malformed[event, []byte](t, c, []byte{0xff})
	codectest.Malformed[event, []byte](t, c, []byte{0x01}) // int into struct
	codectest.Truncated[event](t, c, sampleEvent())
	codectest.Truncated[event](t, CBOR[event]{}, sampleEvent())
}

func TestConcurrentUse(t *testing.T) {
	codectest.Concurrent[event, []byte](t, Must[event](Options{Deterministic: true}), func(i int) event {
		e := sampleEvent()
		e.Seq = uint64(i)
		return e
	})
}
