package pak

import "fmt"

// Alphabet is the base58 symbol set used for short and long tokens. It
// drops 0, O, I and l, so keys survive manual transcription and
// double-click selection, and contains nothing that needs URL escaping.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// randomToken draws length symbols uniformly from Alphabet. Each draw
// masks one random byte down to six bits and rejects values beyond the
// alphabet size, so no symbol is favored.
func randomToken(src RandomSource, length int) (string, error) {
	token := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(token) < length {
		if err := src.Fill(buf); err != nil {
			return "", fmt.Errorf("%w: %w", ErrRandomSource, err)
		}
		for _, b := range buf {
			idx := int(b & 0x3f)
			if idx >= len(Alphabet) {
				continue
			}
			token = append(token, Alphabet[idx])
			if len(token) == length {
				break
			}
		}
	}
	return string(token), nil
}
