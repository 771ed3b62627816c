package hps

// Facet opcodes. Values 0x0-0xB address the rolling vertex window; the rest
// are control instructions.
const (
	opContinuationMax = 0xB
	opLiteral         = 0xC
	opRestart         = 0xD
	opEscape          = 0xE
	opEnd             = 0xF
)

const (
	// windowSize is fixed by the opcode space: one continuation value per slot.
	windowSize = 12
	// historySize bounds the escape opcode's one-byte back-reference.
	historySize = 256
)

// facetDecoder interprets the 4-bit facet instruction stream. All state is
// per-call; decoding is a pure function of the input buffer.
type facetDecoder struct {
	r           *nibbleReader
	vertexCount uint32

	// Active edge: the two most recently used vertices of the current strip.
	// Valid only after a restart has seeded it.
	edge    [2]uint32
	hasEdge bool

	// Rolling window of recently used vertices, addressed by continuation
	// opcodes. Fixed-capacity ring; no allocation in the decode loop.
	window    [windowSize]uint32
	windowLen int
	windowPos int

	// Ring of the last 256 emitted vertices, addressed by escape opcodes.
	// Survives restarts; only the window is cleared there.
	history    [historySize]uint32
	historyLen int
	historyPos int

	// Next never-before-used vertex index.
	cursor uint32
}

// decodeFacets reconstructs facetCount triangles from the packed instruction
// stream in buf. Trailing nibbles after the final triangle are ignored.
func decodeFacets(buf []byte, vertexCount, facetCount uint32) ([]Triangle, error) {
	d := &facetDecoder{r: newNibbleReader(buf), vertexCount: vertexCount}

	tris := make([]Triangle, 0, facetCount)
	for uint32(len(tris)) < facetCount {
		op, err := d.r.nextNibble()
		if err != nil {
			return nil, err
		}

		switch {
		case op <= opContinuationMax:
			v, err := d.windowAt(int(op))
			if err != nil {
				return nil, err
			}
			tri, err := d.advance(v)
			if err != nil {
				return nil, err
			}
			tris = append(tris, tri)

		case op == opLiteral:
			v, err := d.takeLiteral()
			if err != nil {
				return nil, err
			}
			tri, err := d.advance(v)
			if err != nil {
				return nil, err
			}
			tris = append(tris, tri)

		case op == opRestart:
			if err := d.restart(); err != nil {
				return nil, err
			}

		case op == opEscape:
			off, err := d.r.nextByte()
			if err != nil {
				return nil, err
			}
			v, err := d.historyAt(int(off))
			if err != nil {
				return nil, err
			}
			tri, err := d.advance(v)
			if err != nil {
				return nil, err
			}
			tris = append(tris, tri)

		default: // opEnd
			return nil, &FacetCountMismatchError{Expected: int(facetCount), Produced: len(tris)}
		}
	}
	return tris, nil
}

// advance forms a triangle from the active edge and v, then slides the edge
// forward by replacing its older endpoint. Winding order is preserved.
func (d *facetDecoder) advance(v uint32) (Triangle, error) {
	if !d.hasEdge {
		return Triangle{}, ErrMalformedStream
	}
	if v >= d.vertexCount {
		return Triangle{}, &InvalidVertexReferenceError{Index: v, Bound: d.vertexCount}
	}
	tri := Triangle{d.edge[0], d.edge[1], v}
	d.edge[0] = d.edge[1]
	d.edge[1] = v
	d.pushUsed(v)
	return tri, nil
}

// restart clears the window and seeds a fresh active edge from the next two
// literal-cursor vertices. The format guarantees restarts seed from indices
// that have not yet appeared in any triangle.
func (d *facetDecoder) restart() error {
	d.windowLen = 0
	d.windowPos = 0

	a, err := d.takeLiteral()
	if err != nil {
		return err
	}
	b, err := d.takeLiteral()
	if err != nil {
		return err
	}

	d.pushUsed(a)
	d.pushUsed(b)
	d.edge = [2]uint32{a, b}
	d.hasEdge = true
	return nil
}

// takeLiteral advances the literal cursor and returns the next unused
// vertex index.
func (d *facetDecoder) takeLiteral() (uint32, error) {
	if d.cursor >= d.vertexCount {
		return 0, &InvalidVertexReferenceError{Index: d.cursor, Bound: d.vertexCount}
	}
	v := d.cursor
	d.cursor++
	return v, nil
}

// windowAt returns the k-th most recently pushed window entry.
func (d *facetDecoder) windowAt(k int) (uint32, error) {
	if k >= d.windowLen {
		return 0, ErrMalformedStream
	}
	idx := (d.windowPos - 1 - k + 2*windowSize) % windowSize
	return d.window[idx], nil
}

// historyAt returns the off-th most recently emitted vertex. Emissions
// repeat vertices, so the ring can hold more entries than the vertex table;
// the offset is bounded by the vertex count first, then by the fill level.
func (d *facetDecoder) historyAt(off int) (uint32, error) {
	if uint32(off) >= d.vertexCount {
		return 0, &InvalidVertexReferenceError{Index: uint32(off), Bound: d.vertexCount}
	}
	if off >= d.historyLen {
		return 0, &InvalidVertexReferenceError{Index: uint32(off), Bound: uint32(d.historyLen)}
	}
	idx := (d.historyPos - 1 - off + 2*historySize) % historySize
	return d.history[idx], nil
}

// pushUsed records v in both the continuation window and the escape history.
func (d *facetDecoder) pushUsed(v uint32) {
	d.window[d.windowPos] = v
	d.windowPos = (d.windowPos + 1) % windowSize
	if d.windowLen < windowSize {
		d.windowLen++
	}

	d.history[d.historyPos] = v
	d.historyPos = (d.historyPos + 1) % historySize
	if d.historyLen < historySize {
		d.historyLen++
	}
}
