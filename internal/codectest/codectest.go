// Package codectest holds property checks shared by the codec packages' tests.
package codectest

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unkn0wn-root/codee"
)

// MustEncode encodes v or fails the test.
func MustEncode[T any, R codee.Repr](t *testing.T, c codee.Encoder[T, R], v T) R {
	t.Helper()
	r, err := c.Encode(v)
	if err != nil {
		t.Fatalf("Encode(%v) error: %v", v, err)
	}
	return r
}

// MustDecode decodes r or fails the test.
func MustDecode[T any, R codee.Repr](t *testing.T, c codee.Decoder[T, R], r R) T {
	t.Helper()
	v, err := c.Decode(r)
	if err != nil {
		t.Fatalf("Decode(%q) error: %v", r, err)
	}
	return v
}

// RoundTrip checks decode(encode(v)) == v and returns the encoded form.
func RoundTrip[T any, R codee.Repr](t *testing.T, c codee.Codec[T, R], v T, opts ...cmp.Option) R {
	t.Helper()
	r := MustEncode(t, c, v)
	got := MustDecode(t, c, r)
	if d := cmp.Diff(v, got, opts...); d != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", d)
	}
	return r
}

// Kind checks that both binary flags match R and stay constant.
func Kind[T any, R codee.Repr](t *testing.T, c codee.Codec[T, R]) {
	t.Helper()
	want := codee.IsBinary[R]()
	for i := 0; i < 3; i++ {
		if got := c.IsBinaryEncoder(); got != want {
			t.Fatalf("IsBinaryEncoder=%v want %v", got, want)
		}
		if got := c.IsBinaryDecoder(); got != want {
			t.Fatalf("IsBinaryDecoder=%v want %v", got, want)
		}
	}
}

// Malformed checks that r fails to decode with a *codee.DecodeError and a zero value.
func Malformed[T any, R codee.Repr](t *testing.T, c codee.Decoder[T, R], r R, opts ...cmp.Option) *codee.DecodeError {
	t.Helper()
	v, err := c.Decode(r)
	if err == nil {
		t.Fatalf("Decode(%q): expected error, got %v", r, v)
	}
	var de *codee.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Decode(%q): error %T is not *codee.DecodeError: %v", r, err, err)
	}
	if de.Unwrap() == nil {
		t.Fatalf("Decode(%q): DecodeError without cause", r)
	}
	var zero T
	if d := cmp.Diff(zero, v, opts...); d != "" {
		t.Fatalf("Decode(%q): expected zero value on error (-want +got):\n%s", r, d)
	}
	return de
}

// Truncated checks that every strict prefix of a valid encoding fails to decode.
func Truncated[T any](t *testing.T, c codee.Codec[T, []byte], v T, opts ...cmp.Option) {
	t.Helper()
	b := MustEncode(t, c, v)
	if len(b) == 0 {
		t.Fatalf("expected non-empty encoding")
	}
	for n := 0; n < len(b); n++ {
		Malformed(t, c, b[:n:n], opts...)
	}
}

// Concurrent round-trips gen(i) for many i from parallel goroutines.
func Concurrent[T any, R codee.Repr](t *testing.T, c codee.Codec[T, R], gen func(i int) T, opts ...cmp.Option) {
	t.Helper()
	const workers, per = 8, 64

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < per; i++ {
				want := gen(w*per + i)
				r, err := c.Encode(want)
				if err != nil {
					errs <- err
					return
				}
				got, err := c.Decode(r)
				if err != nil {
					errs <- err
					return
				}
				if d := cmp.Diff(want, got, opts...); d != "" {
					errs <- fmt.Errorf("worker %d item %d (-want +got):\n%s", w, i, d)
					return
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}
