// Package page builds the single HTML page.
//
// A build converts each configured Markdown document in order, keeps the
// fragments of the conversions that succeeded, and writes
//
//	header + fragment(doc1) + ... + fragment(docN) + footer
//
// to the output path. A document whose conversion fails is logged and left
// out; the rest of the page is still written. Template reads, the output
// write and a missing converter are fatal.
//
// Conversions run strictly one after another, so fragment order always
// follows the document list. Templates are read on every build and never
// cached.
package page
