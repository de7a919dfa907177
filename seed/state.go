package seed

// AppendLE appends the little-endian bytes of each word to b.
func AppendLE[W Word](b []byte, words ...W) []byte {
	n := Bits[W]() / 8
	for _, w := range words {
		for i := uint(0); i < n; i++ {
			b = append(b, byte(w>>(8*i)))
		}
	}
	return b
}

// DecodeLE fills dst from the little-endian bytes in b. It returns
// ErrStateLength unless b holds exactly len(dst) words.
func DecodeLE[W Word](b []byte, dst []W) error {
	n := int(Bits[W]() / 8)
	if len(b) != n*len(dst) {
		return ErrStateLength
	}
	for i := range dst {
		var w W
		for j := 0; j < n; j++ {
			w |= W(b[i*n+j]) << (8 * uint(j))
		}
		dst[i] = w
	}
	return nil
}
