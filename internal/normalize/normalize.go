// Package normalize prepares raw document bytes for chunk matching.
//
// Normalized text is lowercase ASCII with every run of whitespace collapsed
// to one space and no leading or trailing whitespace:
//
//	normalize.Bytes([]byte("  Hello,\n\tWORLD  ")) // "hello, world"
//
// Bytes outside A-Z and the whitespace set pass through unchanged.
package normalize

// IsSpace reports whether c is one of ' ', '\t', '\n', '\v', '\f', '\r'.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Bytes returns the normalized form of src in a new buffer.
func Bytes(src []byte) []byte {
	return AppendBytes(make([]byte, 0, len(src)), src)
}

// AppendBytes appends the normalized form of src to dst.
func AppendBytes(dst, src []byte) []byte {
	start := len(dst)
	pendingSpace := false
	for _, c := range src {
		if IsSpace(c) {
			pendingSpace = true
			continue
		}
		if pendingSpace && len(dst) > start {
			dst = append(dst, ' ')
		}
		pendingSpace = false
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}
