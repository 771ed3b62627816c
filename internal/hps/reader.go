package hps

// nibbleReader is a cursor over an immutable byte buffer that yields 4-bit
// units, low nibble first. Scanner firmware packs facet opcodes this way.
type nibbleReader struct {
	data []byte
	pos  int // nibble offset; byte = pos>>1, high half when pos&1 == 1
}

func newNibbleReader(data []byte) *nibbleReader {
	return &nibbleReader{data: data}
}

// nextNibble returns the next 4-bit value and advances the cursor.
func (r *nibbleReader) nextNibble() (byte, error) {
	if r.pos >= len(r.data)*2 {
		return 0, ErrStreamTruncated
	}
	b := r.data[r.pos>>1]
	if r.pos&1 == 1 {
		b >>= 4
	} else {
		b &= 0x0F
	}
	r.pos++
	return b, nil
}

// nextByte aligns the cursor to the next byte boundary and returns one
// literal byte. Escaped literals in the facet stream are byte-aligned.
func (r *nibbleReader) nextByte() (byte, error) {
	if r.pos&1 == 1 {
		r.pos++
	}
	if r.pos>>1 >= len(r.data) {
		return 0, ErrStreamTruncated
	}
	b := r.data[r.pos>>1]
	r.pos += 2
	return b, nil
}

// nextUint16 reads a byte-aligned little-endian 16-bit literal.
func (r *nibbleReader) nextUint16() (uint16, error) {
	lo, err := r.nextByte()
	if err != nil {
		return 0, err
	}
	hi, err := r.nextByte()
	if err != nil {
		return 0, err
	}
	return uint16(lo) | uint16(hi)<<8, nil
}

func (r *nibbleReader) atEnd() bool {
	return r.pos >= len(r.data)*2
}

func (r *nibbleReader) posNibbles() int {
	return r.pos
}
