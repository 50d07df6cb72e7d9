package model

// Token is a single decoded unit extracted from a transaction: either a
// UTF-8 string or a raw byte span, plus the output index it came from.
// Output is -1 for tokens recovered from the whole-body fallback.
type Token struct {
	Text   string
	Raw    []byte
	Output int
}

// IsText reports whether the token decoded as printable UTF-8 text.
func (t Token) IsText() bool {
	return t.Raw == nil
}

// Bytes returns the token payload as bytes regardless of representation.
func (t Token) Bytes() []byte {
	if t.Raw != nil {
		return t.Raw
	}
	return []byte(t.Text)
}
