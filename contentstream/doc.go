// Package contentstream tokenizes decompressed PDF page content streams.
//
// A content stream is a postfix program: operands are pushed until an
// operator consumes them.
//
//	ops, err := contentstream.NewParser(data).Parse()
//	for _, op := range ops {
//	    fmt.Println(op.Operator, op.Operands)
//	}
//
// Comments are skipped. Inline images (BI ... ID ... EI) are reported as a
// single BI operation carrying the image parameters; the sample data is
// discarded. The keywords true, false and null become operands.
//
// The parser only tokenizes. Interpreting operators is the job of the
// source package.
package contentstream
