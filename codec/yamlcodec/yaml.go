// Package yamlcodec provides a YAML string codec. Values are converted through
// their JSON form, so `json` struct tags apply.
package yamlcodec

import (
	"sigs.k8s.io/yaml"

	"github.com/unkn0wn-root/codee"
)

const Name = "yaml"

// YAML encodes T as YAML text using sigs.k8s.io/yaml. The zero value is ready to use.
// With Strict set, Decode rejects duplicate and unknown fields.
type YAML[T any] struct {
	Strict bool
}

var _ codee.StringCodec[struct{}] = YAML[struct{}]{}

func (YAML[T]) Encode(v T) (string, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", codee.EncodeErr(Name, err)
	}
	return string(b), nil
}

func (c YAML[T]) Decode(s string) (T, error) {
	var v T
	var err error
	if c.Strict {
		err = yaml.UnmarshalStrict([]byte(s), &v)
	} else {
		err = yaml.Unmarshal([]byte(s), &v)
	}
	if err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (YAML[T]) IsBinaryEncoder() bool { return false }
func (YAML[T]) IsBinaryDecoder() bool { return false }
