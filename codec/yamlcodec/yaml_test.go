package yamlcodec

import (
	"testing"

	"github.com/unkn0wn-root/codee/internal/codectest"
)

type service struct {
	Name    string            `json:"name"`
	Port    int               `json:"port"`
	Labels  map[string]string `json:"labels,omitempty"`
	Enabled bool              `json:"enabled"`
}

func TestRoundTrip(t *testing.T) {
	c := YAML[service]{}
	codectest.Kind[service, string](t, c)

	s := codectest.RoundTrip[service, string](t, c, service{Name: "api", Port: 8080, Enabled: true})
	if want := "enabled: true\nname: api\nport: 8080\n"; s != want {
		t.Fatalf("encode=%q want %q", s, want)
	}
	codectest.RoundTrip[service, string](t, YAML[service]{Strict: true}, service{
		Name:   "worker",
		Labels: map[string]string{"tier": "batch"},
	})
}

func TestStrict(t *testing.T) {
	in := "name: api\nport: 1\nextra: yes\n"

	got := codectest.MustDecode[service, string](t, YAML[service]{}, in)
	if got.Name != "api" || got.Port != 1 {
		t.Fatalf("got %+v", got)
	}
	codectest.Malformed[service, string](t, YAML[service]{Strict: true}, in)
	codectest.Malformed[service, string](t, YAML[service]{Strict: true}, "name: a\nname: b\n")
}

func TestMalformed(t *testing.T) {
	c := YAML[service]{}
	codectest.Malformed[service, string](t, c, "name: [unclosed")
	codectest.Malformed[service, string](t, c, "port: eighty")
	codectest.Malformed[service, string](t, c, "- just\n- a list\n")
}

func TestEncodeUnsupported(t *testing.T) {
	if _, err := (YAML[chan int]{}).Encode(make(chan int)); err == nil {
		t.Fatalf("expected encode error")
	}
}
