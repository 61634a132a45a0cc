package commands

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tsawler/pdf2dxf"
)

// parsePageSpec parses a 1-based page list such as "1,3-5"
func parsePageSpec(spec string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lo, hi, isRange := strings.Cut(part, "-")
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil || start < 1 {
			return nil, fmt.Errorf("invalid page %q", part)
		}
		end := start
		if isRange {
			end, err = strconv.Atoi(strings.TrimSpace(hi))
			if err != nil || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
		}
		for p := start; p <= end; p++ {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages in %q", spec)
	}
	return pages, nil
}

// outputPath replaces the extension of input with ext
func outputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// converter opens the bundle with the loaded configuration and the page
// selection applied
func (a *app) converter(bundle, pageSpec string) (*pdf2dxf.Converter, error) {
	conv := pdf2dxf.Open(bundle).WithOptions(a.cfg.Options()).Logger(a.logger)
	if pageSpec != "" {
		list, err := parsePageSpec(pageSpec)
		if err != nil {
			return nil, err
		}
		conv = conv.Pages(list...)
	}
	return conv, nil
}
