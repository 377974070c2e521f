package ankr

// Reading bytes from the table's binary representation

// binarySegm is the raw table data. All reads are bounds-checked and report
// the offending offset.
type binarySegm []byte

func (b binarySegm) u16(section string, i int) (uint16, error) {
	if i < 0 || i+2 > len(b) {
		return 0, errDecode(section, i, "cannot read 2 bytes, table size is %d", len(b))
	}
	return uint16(b[i])<<8 | uint16(b[i+1]), nil
}

func (b binarySegm) i16(section string, i int) (int16, error) {
	n, err := b.u16(section, i)
	return int16(n), err
}

func (b binarySegm) u32(section string, i int) (uint32, error) {
	if i < 0 || i+4 > len(b) {
		return 0, errDecode(section, i, "cannot read 4 bytes, table size is %d", len(b))
	}
	return uint32(b[i])<<24 | uint32(b[i+1])<<16 | uint32(b[i+2])<<8 | uint32(b[i+3]), nil
}

// has reports whether n bytes are available at offset i.
func (b binarySegm) has(i, n int) bool {
	return i >= 0 && n >= 0 && i+n <= len(b)
}
