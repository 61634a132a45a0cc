package dxf

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdf2dxf/model"
)

const (
	// DefaultVersion is the AutoCAD 2000 version tag
	DefaultVersion = "AC1015"

	// MaxLayerName is the longest layer name written; longer names are truncated
	MaxLayerName = 64

	// maxTextLen is the longest content written as a single-line TEXT
	maxTextLen = 80

	fallbackHeight = 10.0
)

// Options configures the writer
type Options struct {
	// DefaultLayer is used for geometry without a layer
	DefaultLayer string

	// TextAsMText forces every text fragment to be written as MTEXT
	TextAsMText bool

	// Version is the $ACADVER value
	Version string
}

// DefaultOptions returns layer "0", TEXT entities where possible and AC1015
func DefaultOptions() Options {
	return Options{
		DefaultLayer: model.DefaultLayer,
		Version:      DefaultVersion,
	}
}

// Writer serializes geometry
type Writer struct {
	opts Options
}

// NewWriter creates a writer. Empty option fields take their defaults.
func NewWriter(opts Options) *Writer {
	if opts.DefaultLayer == "" {
		opts.DefaultLayer = model.DefaultLayer
	}
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	return &Writer{opts: opts}
}

// Marshal is a convenience wrapper returning the document bytes
func Marshal(g model.Geometry, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewWriter(opts).Write(&buf, g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the document to filename
func (w *Writer) WriteFile(filename string, g model.Geometry) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating dxf file: %w", err)
	}

	if err := w.Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

// Write serializes g to out
func (w *Writer) Write(out io.Writer, g model.Geometry) error {
	e := &encoder{bw: bufio.NewWriter(out)}

	e.section("HEADER")
	e.pair(9, "$ACADVER")
	e.pair(1, w.opts.Version)
	e.pair(0, "ENDSEC")

	layers := w.layers(g)
	e.section("TABLES")
	e.pair(0, "TABLE")
	e.pair(2, "LAYER")
	e.pair(70, strconv.Itoa(len(layers)))
	for _, name := range layers {
		e.pair(0, "LAYER")
		e.pair(2, name)
		e.pair(70, "0")
		e.pair(62, "7")
		e.pair(6, "CONTINUOUS")
	}
	e.pair(0, "ENDTAB")
	e.pair(0, "ENDSEC")

	e.section("ENTITIES")
	for _, pl := range g.Polylines {
		e.polyline(pl, w.layer(pl.Layer))
	}
	for _, s := range g.Lines {
		e.line(s, w.layer(s.Layer))
	}
	for _, c := range g.Circles {
		e.circle(c, w.layer(c.Layer))
	}
	for _, a := range g.Arcs {
		e.arc(a, w.layer(a.Layer))
	}
	for _, t := range g.Texts {
		e.text(t, textLayer(t.Layer), w.opts.TextAsMText)
	}
	e.pair(0, "ENDSEC")
	e.pair(0, "EOF")

	return e.flush()
}

func (w *Writer) layer(name string) string {
	if name == "" {
		name = w.opts.DefaultLayer
	}
	return ShortLayerName(name)
}

func textLayer(name string) string {
	if name == "" {
		name = model.TextLayer
	}
	return ShortLayerName(name)
}

// layers collects the distinct layer names in first-use order, starting
// with the default and TEXT layers.
func (w *Writer) layers(g model.Geometry) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}

	add(ShortLayerName(w.opts.DefaultLayer))
	add(model.TextLayer)
	for _, pl := range g.Polylines {
		add(w.layer(pl.Layer))
	}
	for _, s := range g.Lines {
		add(w.layer(s.Layer))
	}
	for _, c := range g.Circles {
		add(w.layer(c.Layer))
	}
	for _, a := range g.Arcs {
		add(w.layer(a.Layer))
	}
	for _, t := range g.Texts {
		add(textLayer(t.Layer))
	}
	return out
}

// ShortLayerName truncates a layer name to MaxLayerName characters
func ShortLayerName(name string) string {
	if utf8.RuneCountInString(name) <= MaxLayerName {
		return name
	}
	return string([]rune(name)[:MaxLayerName])
}

// SanitizeText trims s and escapes the characters MTEXT treats as markup
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)
	return r.Replace(s)
}

// Num formats a coordinate with three decimals. NaN and infinities become 0.
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
