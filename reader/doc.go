// Package reader loads page bundles: documents whose pages have already been
// extracted from a PDF into a YAML (or JSON) file.
//
// # Opening Bundles
//
// Use [Open] to read a bundle file:
//
//	r, err := reader.Open("drawing.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, page := range r.Pages() {
//	    fmt.Println(page.Index, page.Kind())
//	}
//
// Or use [Parse] with bundle bytes and a base directory for content files.
//
// # Bundle Format
//
// Each page entry may carry a raw content stream (inline via content, or in
// a file via content_file, resolved relative to the bundle), structured
// commands, and text runs:
//
//	pages:
//	  - index: 1
//	    kind: vector
//	    media_box: [0, 0, 595, 842]
//	    rotate: 0
//	    content_file: page1.bin
//	    filters: [FlateDecode]
//	    commands:
//	      - {op: moveTo, args: [0, 0]}
//	      - {op: lineTo, args: [10, 0]}
//	      - {op: paint, paint: stroke}
//	    text:
//	      - {text: "Hello", transform: [10, 0, 0, 10, 72, 720]}
//
// Commands lowered from the content stream come first, then structured
// commands. Content streams that cannot be tokenized do not fail the bundle;
// the problem is recorded on the page (see pages.Page.Err).
package reader
