package decoder

import (
	"encoding/base64"
	"encoding/hex"
	"unicode/utf8"

	"github.com/btcsuite/btcd/txscript"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// hexDecodeMinLen keeps short hex-looking words such as "cafe" literal;
// only longer even-length pure-hex pushes are decoded to bytes.
const hexDecodeMinLen = 16

// ExtractTokens walks the data-carrier outputs of a transaction and
// returns the pushed data as an ordered token sequence. An unparsable
// output contributes zero tokens and extraction continues. When no
// output yields tokens and a body is present, the decoded body becomes
// a single raw token with output index -1 for whole-body media scans.
func ExtractTokens(tx model.RawTransaction) []model.Token {
	var tokens []model.Token
	for i, script := range tx.Outputs {
		if !IsDataCarrier(script) {
			continue
		}
		pushes, err := txscript.PushedData(script)
		if err != nil {
			continue
		}
		for _, push := range pushes {
			if len(push) == 0 {
				continue
			}
			tokens = append(tokens, newToken(decodeHexPush(push), i))
		}
	}
	if len(tokens) == 0 && tx.Body != "" {
		if body := DecodeBody(tx.Body); len(body) > 0 {
			tokens = append(tokens, model.Token{Raw: body, Output: -1})
		}
	}
	return tokens
}

// IsDataCarrier reports whether a script carries application data:
// leading OP_RETURN, OP_FALSE OP_RETURN, or a push-only script.
func IsDataCarrier(script []byte) bool {
	if len(script) == 0 {
		return false
	}
	if script[0] == txscript.OP_RETURN {
		return true
	}
	if len(script) >= 2 && script[0] == txscript.OP_FALSE && script[1] == txscript.OP_RETURN {
		return true
	}
	return txscript.IsPushOnlyScript(script)
}

func newToken(data []byte, output int) model.Token {
	if utf8.Valid(data) && !IsBinary(data) {
		return model.Token{Text: string(data), Output: output}
	}
	return model.Token{Raw: data, Output: output}
}

// decodeHexPush unwraps payloads that were pushed as hex text.
func decodeHexPush(push []byte) []byte {
	if len(push) < hexDecodeMinLen || len(push)%2 != 0 || !isHex(push) {
		return push
	}
	decoded, err := hex.DecodeString(string(push))
	if err != nil {
		return push
	}
	return decoded
}

// DecodeBody decodes a transaction body given as hex or base64.
// Even-length pure hex wins; anything else is tried as standard then
// unpadded base64. An undecodable body yields nil.
func DecodeBody(body string) []byte {
	if body == "" {
		return nil
	}
	if len(body)%2 == 0 && isHex([]byte(body)) {
		if b, err := hex.DecodeString(body); err == nil {
			return b
		}
	}
	if b, err := base64.StdEncoding.DecodeString(body); err == nil {
		return b
	}
	if b, err := base64.RawStdEncoding.DecodeString(body); err == nil {
		return b
	}
	return nil
}

func isHex(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
