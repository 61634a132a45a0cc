package dxf

import (
	"bufio"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdf2dxf/model"
)

// encoder writes group code / value pairs, remembering the first error
type encoder struct {
	bw  *bufio.Writer
	err error
}

func (e *encoder) pair(code int, value string) {
	if e.err != nil {
		return
	}
	if _, err := e.bw.WriteString(strconv.Itoa(code)); err != nil {
		e.err = err
		return
	}
	e.bw.WriteByte('\n')
	e.bw.WriteString(value)
	e.err = e.bw.WriteByte('\n')
}

func (e *encoder) num(code int, v float64) {
	e.pair(code, Num(v))
}

func (e *encoder) section(name string) {
	e.pair(0, "SECTION")
	e.pair(2, name)
}

func (e *encoder) flush() error {
	if e.err != nil {
		return e.err
	}
	return e.bw.Flush()
}

func (e *encoder) polyline(pl model.Polyline, layer string) {
	e.pair(0, "LWPOLYLINE")
	e.pair(8, layer)
	e.pair(90, strconv.Itoa(len(pl.Points)))
	e.pair(70, "0")
	for _, p := range pl.Points {
		e.num(10, p.X)
		e.num(20, p.Y)
	}
}

func (e *encoder) line(s model.Segment, layer string) {
	e.pair(0, "LINE")
	e.pair(8, layer)
	e.num(10, s.X1)
	e.num(20, s.Y1)
	e.num(11, s.X2)
	e.num(21, s.Y2)
}

func (e *encoder) circle(c model.Circle, layer string) {
	e.pair(0, "CIRCLE")
	e.pair(8, layer)
	e.num(10, c.CX)
	e.num(20, c.CY)
	e.num(40, c.R)
}

// arc writes start/end swapped for clockwise arcs, since DXF arcs always
// run counter-clockwise.
func (e *encoder) arc(a model.Arc, layer string) {
	start, end := a.StartDeg, a.EndDeg
	if !a.CCW {
		start, end = end, start
	}
	e.pair(0, "ARC")
	e.pair(8, layer)
	e.num(10, a.CX)
	e.num(20, a.CY)
	e.num(40, a.R)
	e.num(50, start)
	e.num(51, end)
}

// text writes TEXT or MTEXT. Fragments that are empty after trimming are skipped.
func (e *encoder) text(t model.TextFragment, layer string, forceMText bool) {
	content := SanitizeText(t.Text)
	if content == "" {
		return
	}

	kind := "TEXT"
	if NeedsMText(content, forceMText) {
		kind = "MTEXT"
		content = strings.NewReplacer("\r\n", `\P`, "\r", `\P`, "\n", `\P`).Replace(content)
	}

	height := t.FontSize
	if height == 0 || math.IsNaN(height) {
		height = fallbackHeight
	}
	rot := t.AngleDeg
	if math.IsNaN(rot) {
		rot = 0
	}

	e.pair(0, kind)
	e.pair(8, layer)
	e.num(10, t.X)
	e.num(20, t.Y)
	e.num(40, math.Max(1, height))
	e.pair(1, content)
	e.num(50, rot)
	e.pair(7, "STANDARD")
}

// NeedsMText reports whether sanitized content must be written as MTEXT
func NeedsMText(content string, force bool) bool {
	return force ||
		strings.Contains(content, `\P`) ||
		strings.ContainsAny(content, "\r\n") ||
		utf8.RuneCountInString(content) > maxTextLen
}
