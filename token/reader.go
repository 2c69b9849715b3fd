package token

// Reader is a forward cursor over an argument vector with a one-step rewind.
// The cursor starts at index 1: token 0 is the program or command name and is
// never handed to the engine. A Reader is owned by exactly one parse call and
// must not be shared across concurrent parses.
type Reader struct {
	argv []string
	pos  int
}

// NewReader wraps an argument vector. The vector is not copied; callers must
// not mutate it while the Reader is in use.
func NewReader(argv []string) *Reader {
	return &Reader{argv: argv, pos: 1}
}

// Next returns the token at the cursor and advances. The second return value
// is false once the input is exhausted; reading past the end has no further
// effect.
func (r *Reader) Next() (string, bool) {
	if r.pos >= len(r.argv) {
		return "", false
	}
	tok := r.argv[r.pos]
	r.pos++
	return tok, true
}

// Rewind moves the cursor back exactly one position, un-consuming the token
// returned by the previous Next. Calls must be balanced: rewinding twice
// without an intervening Next, or rewinding past the program name, is a
// caller bug and panics.
func (r *Reader) Rewind() {
	if r.pos <= 1 {
		panic("token: unbalanced Rewind")
	}
	r.pos--
}
