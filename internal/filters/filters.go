package filters

import (
	"fmt"
	"strings"
)

// Decode applies the named filters to data in order
func Decode(data []byte, names []string) ([]byte, error) {
	var err error
	for _, name := range names {
		switch strings.TrimPrefix(strings.TrimSpace(name), "/") {
		case "FlateDecode", "Fl":
			data, err = FlateDecode(data)
		case "ASCIIHexDecode", "AHx":
			data, err = ASCIIHexDecode(data)
		case "ASCII85Decode", "A85":
			data, err = ASCII85Decode(data)
		default:
			return nil, fmt.Errorf("unsupported filter %q", name)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return data, nil
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}
