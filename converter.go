package pdf2dxf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/pdf2dxf/dxf"
	"github.com/tsawler/pdf2dxf/graphicsstate"
	"github.com/tsawler/pdf2dxf/model"
	"github.com/tsawler/pdf2dxf/pages"
	"github.com/tsawler/pdf2dxf/reader"
)

// ErrNoInput is returned when a Converter has neither a file nor a reader
var ErrNoInput = errors.New("no input bundle specified")

// Converter provides a fluent interface for converting page bundles to DXF.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining. The bundle is read
// once and shared by every Converter derived from the same Open call.
type Converter struct {
	// Source, shared by every Converter derived from the same Open call
	input *bundle

	// Configuration
	pages    []int
	options  Options
	logger   zerolog.Logger
	progress func(done, total int)

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter with its own page selection
func (c *Converter) clone() *Converter {
	newConv := *c
	newConv.pages = append([]int(nil), c.pages...)
	return &newConv
}

// bundle loads the input file at most once
type bundle struct {
	filename string
	once     sync.Once
	reader   *reader.Reader
	err      error
}

func (b *bundle) load() (*reader.Reader, error) {
	b.once.Do(func() {
		if b.reader != nil {
			return
		}
		if b.filename == "" {
			b.err = ErrNoInput
			return
		}
		r, err := reader.Open(b.filename)
		if err != nil {
			b.err = fmt.Errorf("failed to open bundle: %w", err)
			return
		}
		b.reader = r
	})
	return b.reader, b.err
}

// loadReader returns the bundle reader, loading the file on first use
func (c *Converter) loadReader() (*reader.Reader, error) {
	if c.input == nil {
		return nil, ErrNoInput
	}
	return c.input.load()
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages restricts conversion to the given page indices (1-based).
// Multiple calls are cumulative.
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	newConv.pages = append(newConv.pages, pages...)
	return newConv
}

// PageRange restricts conversion to pages start through end (inclusive)
func (c *Converter) PageRange(start, end int) *Converter {
	newConv := c.clone()
	if start > end {
		newConv.err = fmt.Errorf("invalid page range %d-%d", start, end)
		return newConv
	}
	for p := start; p <= end; p++ {
		newConv.pages = append(newConv.pages, p)
	}
	return newConv
}

// WithOptions replaces the whole configuration
func (c *Converter) WithOptions(opts Options) *Converter {
	newConv := c.clone()
	newConv.options = opts
	return newConv
}

// LayerPolicy selects how path layers are keyed
func (c *Converter) LayerPolicy(policy graphicsstate.LayerPolicy) *Converter {
	newConv := c.clone()
	newConv.options.LayerPolicy = policy
	return newConv
}

// TextAsMText writes every text fragment as MTEXT
func (c *Converter) TextAsMText() *Converter {
	newConv := c.clone()
	newConv.options.Output.TextAsMText = true
	return newConv
}

// KeepRawPaths also emits the unmerged subpaths
func (c *Converter) KeepRawPaths() *Converter {
	newConv := c.clone()
	newConv.options.KeepRawPaths = true
	return newConv
}

// Workers bounds the number of pages processed in parallel
func (c *Converter) Workers(n int) *Converter {
	newConv := c.clone()
	newConv.options.Workers = n
	return newConv
}

// Logger sets the logger used for per-page diagnostics
func (c *Converter) Logger(l zerolog.Logger) *Converter {
	newConv := c.clone()
	newConv.logger = l
	return newConv
}

// OnProgress registers a callback invoked after each page completes. It is
// called from worker goroutines, one call at a time.
func (c *Converter) OnProgress(fn func(done, total int)) *Converter {
	newConv := c.clone()
	newConv.progress = fn
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the bundle
func (c *Converter) PageCount() (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	r, err := c.loadReader()
	if err != nil {
		return 0, err
	}
	return r.PageCount(), nil
}

// Inspect classifies the selected pages without reconstructing them
func (c *Converter) Inspect() ([]PageMeta, error) {
	selected, err := c.resolvePages()
	if err != nil {
		return nil, err
	}
	metas := make([]PageMeta, len(selected))
	for i, p := range selected {
		metas[i] = pageMeta(p)
	}
	return metas, nil
}

// Geometry runs the reconstruction pipeline and returns the accumulated
// geometry without serializing it.
func (c *Converter) Geometry(ctx context.Context) (model.Geometry, Meta, []Warning, error) {
	selected, err := c.resolvePages()
	if err != nil {
		return model.Geometry{}, Meta{}, nil, err
	}
	opts := c.options.normalized()

	results := make([]pageResult, len(selected))
	var (
		mu        sync.Mutex
		completed int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, page := range selected {
		if gctx.Err() != nil {
			break
		}
		i, page := i, page
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			results[i] = c.runPage(page, opts)
			if c.progress != nil {
				mu.Lock()
				completed++
				c.progress(completed, len(selected))
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return model.Geometry{}, Meta{}, nil, err
	}
	if err := ctx.Err(); err != nil {
		return model.Geometry{}, Meta{}, nil, fmt.Errorf("conversion cancelled: %w", err)
	}

	var (
		geom     model.Geometry
		meta     Meta
		warnings []Warning
	)
	for _, r := range results {
		geom.Append(r.geometry)
		meta.Pages = append(meta.Pages, r.meta)
		warnings = append(warnings, r.warnings...)
	}
	meta.Counts = CountGeometry(geom)

	c.logger.Info().
		Int("pages", len(selected)).
		Int("polylines", meta.Counts.Polylines).
		Int("circles", meta.Counts.Circles).
		Int("arcs", meta.Counts.Arcs).
		Int("texts", meta.Counts.Texts).
		Int("warnings", len(warnings)).
		Msg("conversion finished")

	return geom, meta, warnings, nil
}

// Convert runs the pipeline over the selected pages and serializes the
// result. Page-level problems are returned as warnings; only I/O failures
// and cancellation are errors.
func (c *Converter) Convert(ctx context.Context) (*Result, []Warning, error) {
	geom, meta, warnings, err := c.Geometry(ctx)
	if err != nil {
		return nil, warnings, err
	}

	data, err := dxf.Marshal(geom, c.options.Output)
	if err != nil {
		return nil, warnings, fmt.Errorf("failed to write dxf: %w", err)
	}
	return &Result{DXF: data, Geometry: geom, Meta: meta}, warnings, nil
}

// WriteFile converts and writes the DXF document to path
func (c *Converter) WriteFile(ctx context.Context, path string) (*Result, []Warning, error) {
	res, warnings, err := c.Convert(ctx)
	if err != nil {
		return nil, warnings, err
	}
	if err := os.WriteFile(path, res.DXF, 0o644); err != nil {
		return nil, warnings, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return res, warnings, nil
}

// resolvePages returns the selected pages in ascending index order
func (c *Converter) resolvePages() ([]*pages.Page, error) {
	if c.err != nil {
		return nil, c.err
	}
	r, err := c.loadReader()
	if err != nil {
		return nil, err
	}

	all := r.Pages()
	if len(c.pages) == 0 {
		return all, nil
	}

	byIndex := make(map[int]*pages.Page, len(all))
	for _, p := range all {
		byIndex[p.Index] = p
	}

	seen := make(map[int]bool)
	var selected []*pages.Page
	for _, idx := range c.pages {
		p, ok := byIndex[idx]
		if !ok {
			return nil, fmt.Errorf("page %d not found in bundle", idx)
		}
		if !seen[idx] {
			seen[idx] = true
			selected = append(selected, p)
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Index < selected[j].Index
	})
	return selected, nil
}
