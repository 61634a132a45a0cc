package pdf2dxf

import (
	"github.com/rs/zerolog"

	"github.com/tsawler/pdf2dxf/reader"
)

// Open returns a Converter for the page bundle at filename. The bundle is
// read when a terminal operation such as Convert runs.
//
// Example:
//
//	res, warnings, err := pdf2dxf.Open("drawing.yaml").Convert(ctx)
func Open(filename string) *Converter {
	return &Converter{
		input:   &bundle{filename: filename},
		options: DefaultOptions(),
		logger:  zerolog.Nop(),
	}
}

// FromReader creates a Converter from an already-loaded bundle.
//
// Example:
//
//	r, err := reader.Open("drawing.yaml")
//	if err != nil {
//	    // handle error
//	}
//	res, warnings, err := pdf2dxf.FromReader(r).Convert(ctx)
func FromReader(r *reader.Reader) *Converter {
	return &Converter{
		input:   &bundle{reader: r},
		options: DefaultOptions(),
		logger:  zerolog.Nop(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := pdf2dxf.Must(pdf2dxf.Open("drawing.yaml").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustConvert is a helper that wraps a call to Convert and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	res := pdf2dxf.MustConvert(pdf2dxf.Open("drawing.yaml").Convert(ctx))
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
