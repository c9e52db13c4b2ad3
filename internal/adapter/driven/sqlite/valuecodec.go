package sqlite

// ValueCodec transforms secret values on their way into and out of the
// secrets table. The vault currently stores cleartext; an authenticated
// encryption codec is the intended replacement and must round-trip
// Encode then Decode to the original value.
type ValueCodec interface {
	Encode(plaintext string) (string, error)
	Decode(stored string) (string, error)
}

// PlaintextCodec stores values exactly as given.
type PlaintextCodec struct{}

func (PlaintextCodec) Encode(v string) (string, error) { return v, nil }

func (PlaintextCodec) Decode(v string) (string, error) { return v, nil }
