package codee

// Observed reports every failure of Inner to Hooks. Results and errors pass
// through unchanged. A nil Hooks reports nowhere.
type Observed[T any, R Repr] struct {
	Inner Codec[T, R]
	Name  string
	Hooks Hooks
}

// Observe wraps c so its failures reach h under name.
func Observe[T any, R Repr](name string, c Codec[T, R], h Hooks) Observed[T, R] {
	return Observed[T, R]{Inner: c, Name: name, Hooks: h}
}

func (o Observed[T, R]) hooks() Hooks { return Coalesce[Hooks](o.Hooks, NopHooks{}) }

func (o Observed[T, R]) Encode(v T) (R, error) {
	r, err := o.Inner.Encode(v)
	if err != nil {
		o.hooks().EncodeFailed(o.Name, err)
	}
	return r, err
}

func (o Observed[T, R]) Decode(r R) (T, error) {
	v, err := o.Inner.Decode(r)
	if err != nil {
		o.hooks().DecodeFailed(o.Name, len(r), err)
	}
	return v, err
}

func (o Observed[T, R]) IsBinaryEncoder() bool { return o.Inner.IsBinaryEncoder() }
func (o Observed[T, R]) IsBinaryDecoder() bool { return o.Inner.IsBinaryDecoder() }
