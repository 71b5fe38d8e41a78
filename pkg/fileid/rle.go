package fileid

// RLEDecode expands zero runs. A zero byte is always followed by a count of
// zero bytes to emit, every other byte is literal:
//
//	02 00 03 c3 00 03 98  ->  02 00 00 00 c3 00 00 00 98
//
// A zero byte at the very end of the input has no count and is kept as a
// single literal zero.
func RLEDecode(b []byte) []byte {
	r := make([]byte, 0, len(b)*2)
	for i := 0; i < len(b); i++ {
		if b[i] != 0 || i == len(b)-1 {
			r = append(r, b[i])
			continue
		}
		i++
		for n := b[i]; n > 0; n-- {
			r = append(r, 0)
		}
	}
	return r
}

// RLEEncode compresses zero runs in the format read by RLEDecode. Runs longer
// than 255 bytes are split into several (0x00, 0xff) pairs.
func RLEEncode(b []byte) []byte {
	r := make([]byte, 0, len(b))
	var count int
	flush := func() {
		for count > 0 {
			n := min(count, 0xff)
			r = append(r, 0, byte(n))
			count -= n
		}
	}
	for _, cur := range b {
		if cur == 0 {
			count++
			continue
		}
		flush()
		r = append(r, cur)
	}
	flush()
	return r
}
