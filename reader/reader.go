package reader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pdf2dxf/internal/filters"
	"github.com/tsawler/pdf2dxf/model"
	"github.com/tsawler/pdf2dxf/pages"
	"github.com/tsawler/pdf2dxf/source"
)

// ErrNoPages is returned when a bundle lists no pages
var ErrNoPages = errors.New("bundle has no pages")

// Reader represents a loaded page bundle
type Reader struct {
	path  string
	dir   string
	pages []*pages.Page
}

// Open reads and materializes the bundle at filename
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle: %w", err)
	}

	r, err := Parse(data, filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	r.path = filename
	return r, nil
}

// Parse materializes a bundle from its bytes. Content files are resolved
// relative to dir.
func Parse(data []byte, dir string) (*Reader, error) {
	var bf bundleFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse bundle: %w", err)
	}
	if len(bf.Pages) == 0 {
		return nil, ErrNoPages
	}

	r := &Reader{dir: dir}
	seen := make(map[int]bool, len(bf.Pages))
	for i, entry := range bf.Pages {
		if entry.Index == 0 {
			entry.Index = i + 1
		}
		if entry.Index < 0 {
			return nil, fmt.Errorf("page entry %d: invalid index %d", i+1, entry.Index)
		}
		if seen[entry.Index] {
			return nil, fmt.Errorf("page %d: duplicate index", entry.Index)
		}
		seen[entry.Index] = true

		page, err := r.materialize(entry)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", entry.Index, err)
		}
		r.pages = append(r.pages, page)
	}

	sort.SliceStable(r.pages, func(i, j int) bool {
		return r.pages[i].Index < r.pages[j].Index
	})
	return r, nil
}

// New creates a Reader over already-materialized pages. Pages are ordered by
// ascending index.
func New(list []*pages.Page) *Reader {
	r := &Reader{pages: append([]*pages.Page(nil), list...)}
	sort.SliceStable(r.pages, func(i, j int) bool {
		return r.pages[i].Index < r.pages[j].Index
	})
	return r
}

// Path returns the bundle file path, empty for parsed bundles
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages
func (r *Reader) PageCount() int {
	return len(r.pages)
}

// GetPage returns a page by position (0-based, ascending page index)
func (r *Reader) GetPage(i int) (*pages.Page, error) {
	if i < 0 || i >= len(r.pages) {
		return nil, fmt.Errorf("page %d out of range [0, %d)", i, len(r.pages))
	}
	return r.pages[i], nil
}

// Pages returns all pages in ascending index order
func (r *Reader) Pages() []*pages.Page {
	return r.pages
}

// materialize builds a page from its bundle entry. I/O and format problems
// are returned; content streams that fail to tokenize are recorded on the page.
func (r *Reader) materialize(e pageEntry) (*pages.Page, error) {
	page := pages.NewPage(e.Index)
	page.Rotation = e.Rotate

	var err error
	if page.Declared, err = pages.ParseKind(e.Kind); err != nil {
		return nil, err
	}
	if page.Box, err = mediaBox(e.MediaBox); err != nil {
		return nil, err
	}
	if len(e.Viewport) > 0 {
		m, err := matrix("viewport", e.Viewport)
		if err != nil {
			return nil, err
		}
		page.Transform = &m
	}

	content, err := r.content(e)
	if err != nil {
		return nil, err
	}
	if len(content) > 0 {
		cmds, runs, err := source.LowerBytes(content)
		if err != nil {
			page.Err = err
		} else {
			page.Commands = cmds
			page.Text = runs
		}
	}

	for i, c := range e.Commands {
		cmd, err := c.command()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		page.Commands = append(page.Commands, cmd)
	}

	for i, t := range e.Text {
		m, err := matrix("transform", t.Transform)
		if err != nil {
			return nil, fmt.Errorf("text run %d: %w", i+1, err)
		}
		page.Text = append(page.Text, model.TextRun{Text: t.Text, Transform: m})
	}

	return page, nil
}

// content returns the decoded content stream: the inline stream followed by
// the content file, each passed through the page filters
func (r *Reader) content(e pageEntry) ([]byte, error) {
	var out []byte
	if e.Content != "" {
		data, err := filters.Decode([]byte(e.Content), e.Filters)
		if err != nil {
			return nil, fmt.Errorf("content: %w", err)
		}
		out = append(out, data...)
	}

	if e.ContentFile != "" {
		name := e.ContentFile
		if !filepath.IsAbs(name) {
			name = filepath.Join(r.dir, name)
		}
		raw, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read content file: %w", err)
		}
		data, err := filters.Decode(raw, e.Filters)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, data...)
	}
	return out, nil
}
