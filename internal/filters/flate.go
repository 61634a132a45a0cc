package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
)

// FlateDecode inflates zlib-wrapped deflate data. Output recovered before a
// truncated or corrupt tail is returned together with the error.
func FlateDecode(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib header: %w", err)
	}
	defer zr.Close()

	var out bytes.Buffer
	if _, err := io.Copy(&out, zr); err != nil {
		return out.Bytes(), fmt.Errorf("inflate: %w", err)
	}
	return out.Bytes(), nil
}
