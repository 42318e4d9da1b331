package codee

// Hooks are lightweight callbacks for codec failures.
// Implementations MUST be cheap and non-blocking; they run inline with
// Encode/Decode. Wrap slow sinks with hooks/async.
type Hooks interface {
	// An encoder returned an error.
	EncodeFailed(codec string, err error)

	// A decoder returned an error. size is the length of the rejected input.
	DecodeFailed(codec string, size int, err error)

	// A Limit refused a payload before (decode) or after (encode) the inner codec ran.
	PayloadRejected(codec string, size, limit int)

	// A versioned frame carried a version other than the current one.
	// Reported whether or not an upgrade succeeds.
	VersionMismatch(codec string, got, want uint16)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EncodeFailed(string, error)             {}
func (NopHooks) DecodeFailed(string, int, error)        {}
func (NopHooks) PayloadRejected(string, int, int)       {}
func (NopHooks) VersionMismatch(string, uint16, uint16) {}
