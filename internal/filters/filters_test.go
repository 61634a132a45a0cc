package filters

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func deflate(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	w.Close()
	return buf.Bytes()
}

func TestFlateDecode(t *testing.T) {
	want := []byte("0 0 m 10 0 l S")
	got, err := FlateDecode(deflate(t, want))
	if err != nil {
		t.Fatalf("FlateDecode error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("FlateDecode = %q, want %q", got, want)
	}

	if _, err := FlateDecode([]byte("not zlib")); err == nil {
		t.Error("expected error for invalid data")
	}
}

func TestASCIIHexDecode(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"48656C6C6F>", []byte("Hello")},
		{"48 65\n6c 6c 6f", []byte("Hello")},
		{"414>", []byte{0x41, 0x40}},
		{">", []byte{}},
	}
	for _, tt := range tests {
		got, err := ASCIIHexDecode([]byte(tt.in))
		if err != nil {
			t.Errorf("ASCIIHexDecode(%q) error: %v", tt.in, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ASCIIHexDecode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ASCIIHexDecode([]byte("4G")); err == nil {
		t.Error("expected error for invalid digit")
	}
}

func TestASCII85Decode(t *testing.T) {
	tests := []struct {
		in   string
		want []byte
	}{
		{"87cURD]i,\"Ebo80~>", []byte("Hello World!")},
		{"<~87cURDZ~>", []byte("Hello")},
		{"z~>", []byte{0, 0, 0, 0}},
		{"87cU RD]i\n,\"Ebo80", []byte("Hello World!")},
	}
	for _, tt := range tests {
		got, err := ASCII85Decode([]byte(tt.in))
		if err != nil {
			t.Errorf("ASCII85Decode(%q) error: %v", tt.in, err)
			continue
		}
		if !bytes.Equal(got, tt.want) {
			t.Errorf("ASCII85Decode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"87cUR{", "8~>", "87~x"} {
		if _, err := ASCII85Decode([]byte(bad)); err == nil {
			t.Errorf("ASCII85Decode(%q) should fail", bad)
		}
	}
}

func TestDecodeChain(t *testing.T) {
	want := []byte("q 1 0 0 1 5 5 cm Q")
	hex := []byte{}
	for _, b := range deflate(t, want) {
		hex = append(hex, "0123456789ABCDEF"[b>>4], "0123456789ABCDEF"[b&0xf])
	}
	hex = append(hex, '>')

	got, err := Decode(hex, []string{"/AHx", "FlateDecode"})
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Decode = %q, want %q", got, want)
	}

	same, err := Decode(want, nil)
	if err != nil || !bytes.Equal(same, want) {
		t.Error("no filters should return the input")
	}

	if _, err := Decode(want, []string{"LZWDecode"}); err == nil {
		t.Error("expected error for unsupported filter")
	}
}
