package crypto

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"
)

const (
	armorHeader = "-----BEGIN MEGOLM SESSION DATA-----"
	armorFooter = "-----END MEGOLM SESSION DATA-----"

	// armorLineLength is the standard width for wrapping base64 in PEM-style
	// armor: 76 characters per line except the last.
	armorLineLength = 76
)

// WrapArmor base64-encodes binary and wraps it in the header/footer literals,
// splitting the encoded body into 76-character lines. The result ends in a
// trailing newline after the footer.
func WrapArmor(binary []byte) []byte {
	encoded := base64.StdEncoding.EncodeToString(binary)

	var b strings.Builder
	b.WriteString(armorHeader)
	b.WriteByte('\n')
	for i := 0; i < len(encoded); i += armorLineLength {
		end := i + armorLineLength
		if end > len(encoded) {
			end = len(encoded)
		}
		b.WriteString(encoded[i:end])
		b.WriteByte('\n')
	}
	b.WriteString(armorFooter)
	b.WriteByte('\n')
	return []byte(b.String())
}

// UnwrapArmor reverses WrapArmor: it trims whitespace from every line, drops
// empty lines, requires the first surviving line to be the header and the
// last to be the footer, and base64-decodes everything in between.
func UnwrapArmor(text []byte) ([]byte, error) {
	if !utf8.Valid(text) {
		return nil, ErrMalformedArmor
	}

	var lines []string
	for _, raw := range strings.Split(string(text), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) < 3 || lines[0] != armorHeader || lines[len(lines)-1] != armorFooter {
		return nil, ErrMalformedArmor
	}

	var body strings.Builder
	for _, line := range lines[1 : len(lines)-1] {
		body.WriteString(line)
	}

	decoded, err := base64.StdEncoding.DecodeString(body.String())
	if err != nil {
		return nil, ErrMalformedArmor
	}
	return decoded, nil
}
