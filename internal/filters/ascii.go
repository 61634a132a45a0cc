package filters

import (
	"bytes"
	"fmt"
)

// ASCIIHexDecode decodes hex pairs up to the '>' marker. Whitespace is
// skipped and an odd final digit is padded with 0.
func ASCIIHexDecode(data []byte) ([]byte, error) {
	out := make([]byte, 0, len(data)/2)
	var hi byte
	half := false

	for _, c := range data {
		if c == '>' {
			break
		}
		if isWhitespace(c) {
			continue
		}
		v, ok := hexNibble(c)
		if !ok {
			return nil, fmt.Errorf("invalid hex digit %q", c)
		}
		if half {
			out = append(out, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		out = append(out, hi<<4)
	}
	return out, nil
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ASCII85Decode decodes base-85 data up to the "~>" marker. The 'z'
// shorthand expands to four zero bytes.
func ASCII85Decode(data []byte) ([]byte, error) {
	data = bytes.TrimPrefix(bytes.TrimSpace(data), []byte("<~"))
	out := make([]byte, 0, len(data)*4/5)

	var group [5]byte
	n := 0
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case isWhitespace(c):
			continue
		case c == '~':
			if i+1 < len(data) && data[i+1] != '>' {
				return nil, fmt.Errorf("invalid end marker at offset %d", i)
			}
			return flush85(out, group, n)
		case c == 'z' && n == 0:
			out = append(out, 0, 0, 0, 0)
			continue
		case c < '!' || c > 'u':
			return nil, fmt.Errorf("invalid ASCII85 character %q", c)
		}
		group[n] = c - '!'
		n++
		if n == 5 {
			out = appendGroup(out, group, 4)
			n = 0
		}
	}
	return flush85(out, group, n)
}

// flush85 decodes a trailing partial group of n characters
func flush85(out []byte, group [5]byte, n int) ([]byte, error) {
	switch n {
	case 0:
		return out, nil
	case 1:
		return nil, fmt.Errorf("truncated ASCII85 group")
	}
	for i := n; i < 5; i++ {
		group[i] = 'u' - '!'
	}
	return appendGroup(out, group, n-1), nil
}

func appendGroup(out []byte, group [5]byte, keep int) []byte {
	var v uint32
	for _, d := range group {
		v = v*85 + uint32(d)
	}
	b := [4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	return append(out, b[:keep]...)
}
