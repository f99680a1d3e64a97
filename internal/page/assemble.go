package page

import "bytes"

// Assemble concatenates header, fragments (in the given order) and footer
// verbatim. No separators are inserted.
func Assemble(header []byte, fragments [][]byte, footer []byte) []byte {
	n := len(header) + len(footer)
	for _, f := range fragments {
		n += len(f)
	}
	var buf bytes.Buffer
	buf.Grow(n)
	buf.Write(header)
	for _, f := range fragments {
		buf.Write(f)
	}
	buf.Write(footer)
	return buf.Bytes()
}
