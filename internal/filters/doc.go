// Package filters decodes PDF stream filters for raw content streams.
//
// Page bundles may carry a content stream exactly as it was stored in the
// PDF. The filter names listed for it are applied in order:
//
//	data, err := filters.Decode(raw, []string{"ASCII85Decode", "FlateDecode"})
//
// Supported filters are FlateDecode (Fl), ASCIIHexDecode (AHx) and
// ASCII85Decode (A85). Predictors are not supported; they only occur on
// image and cross-reference streams.
package filters
