package strcomp

// FoldEqual reports whether a and b name the same header field. The
// comparison is ASCII case-insensitive, and '-', '_' and ' ' count as the
// same separator byte, so "Content-Length", "content_length" and
// "CONTENT LENGTH" all match.
func FoldEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if fold(a[i]) != fold(b[i]) {
			return false
		}
	}

	return true
}

func fold(c byte) byte {
	switch c {
	case '-', '_', ' ':
		return '-'
	}

	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}
