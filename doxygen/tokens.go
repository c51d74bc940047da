package doxygen

// tokens is a forward-only cursor over the runes of a comment body.
type tokens struct {
	src []rune
	pos int
}

func newTokens(s string) *tokens {
	return &tokens{src: []rune(s)}
}

// next consumes one rune. ok is false at end of input.
func (t *tokens) next() (r rune, ok bool) {
	if t.pos >= len(t.src) {
		return 0, false
	}
	r = t.src[t.pos]
	t.pos++
	return r, true
}

func (t *tokens) takeWhile(keep func(rune) bool) string {
	start := t.pos
	t.skipWhile(keep)
	return string(t.src[start:t.pos])
}

func (t *tokens) skipWhile(keep func(rune) bool) {
	for t.pos < len(t.src) && keep(t.src[t.pos]) {
		t.pos++
	}
}

// takeWord reads up to the next whitespace or '['.
func (t *tokens) takeWord() string {
	return t.takeWhile(isWordRune)
}

func (t *tokens) skipWhitespace() {
	t.skipWhile(isASCIISpace)
}

func isWordRune(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '[':
		return false
	}
	return true
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
