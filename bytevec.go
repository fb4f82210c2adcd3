package feistel

// xor computes the byte wise XOR of a and b, storing the result in dst. The
// shorter of the two inputs determines how many bytes are written; any bytes
// beyond that length are dropped rather than treated as an error. The number
// of bytes written is returned.
func xor(dst, a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dst[i] = a[i] ^ b[i]
	}
	return n
}

// complement writes the bitwise NOT of every byte of src into dst.
func complement(dst, src []byte) {
	for i, b := range src {
		dst[i] = ^b
	}
}

// shiftLeft writes every byte of src logically shifted left by one bit into
// dst. The bit shifted out the top of each byte is discarded and the vacated
// low bit is zero filled, so the operation loses information.
func shiftLeft(dst, src []byte) {
	for i, b := range src {
		dst[i] = b << 1
	}
}
